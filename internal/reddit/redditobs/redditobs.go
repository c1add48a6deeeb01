package redditobs

import (
	"context"
	"time"

	"scoreboard-bot/internal/interfaces"
	"scoreboard-bot/internal/logger"
	"scoreboard-bot/internal/trace"
	"scoreboard-bot/internal/types"
)

type observableSource struct {
	source interfaces.ContentSource
}

var _ interfaces.ContentSource = (*observableSource)(nil)

func Wrap(src interfaces.ContentSource) interfaces.ContentSource {
	return &observableSource{
		source: src,
	}
}

func (os *observableSource) FindTargetThread(ctx context.Context, titlePrefix string, lookback time.Duration) (types.ThreadRef, error) {
	ctx, span := trace.StartSpan(ctx, "source.FindTargetThread")
	defer span.End()

	start := time.Now()
	thread, err := os.source.FindTargetThread(ctx, titlePrefix, lookback)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Thread lookup failed", err,
			"title_prefix", titlePrefix,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return types.ThreadRef{}, err
	}

	logger.InfoSkip(ctx, 1, "Thread lookup completed",
		"thread", thread.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return thread, nil
}

func (os *observableSource) ListTopLevelComments(ctx context.Context, thread types.ThreadRef) ([]types.RawItem, error) {
	ctx, span := trace.StartSpan(ctx, "source.ListTopLevelComments")
	defer span.End()

	start := time.Now()
	items, err := os.source.ListTopLevelComments(ctx, thread)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Comment listing failed", err,
			"thread", thread.ID,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Comment listing completed",
		"thread", thread.ID,
		"items", len(items),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return items, nil
}

func (os *observableSource) ListRecentPosts(ctx context.Context, subreddit, mode string, limit int, lookback time.Duration) ([]types.RawItem, error) {
	ctx, span := trace.StartSpan(ctx, "source.ListRecentPosts")
	defer span.End()

	start := time.Now()
	items, err := os.source.ListRecentPosts(ctx, subreddit, mode, limit, lookback)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Post listing failed", err,
			"subreddit", subreddit,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Post listing completed",
		"subreddit", subreddit,
		"items", len(items),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return items, nil
}
