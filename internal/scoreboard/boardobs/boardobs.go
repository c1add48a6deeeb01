package boardobs

import (
	"context"
	"time"

	"scoreboard-bot/internal/interfaces"
	"scoreboard-bot/internal/logger"
	"scoreboard-bot/internal/trace"
	"scoreboard-bot/internal/types"
)

type observableBuilder struct {
	builder interfaces.Builder
}

var _ interfaces.Builder = (*observableBuilder)(nil)

func Wrap(b interfaces.Builder) interfaces.Builder {
	return &observableBuilder{
		builder: b,
	}
}

func (ob *observableBuilder) Build(ctx context.Context, src interfaces.ContentSource) (*types.Scoreboard, error) {
	ctx, span := trace.StartSpan(ctx, "scoreboard.Build")
	defer span.End()

	start := time.Now()

	logger.InfoSkip(ctx, 1, "Starting scoreboard build")

	board, err := ob.builder.Build(ctx, src)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Scoreboard build failed", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Scoreboard build completed",
		"thread", board.Thread.Permalink,
		"ranked", len(board.Ranked),
		"radar", len(board.Radar),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return board, nil
}
