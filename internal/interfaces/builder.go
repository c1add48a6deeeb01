package interfaces

import (
	"context"

	"scoreboard-bot/internal/types"
)

// Builder runs one extraction-and-ranking pass over a content source and
// returns the finished scoreboard.
type Builder interface {
	Build(ctx context.Context, src ContentSource) (*types.Scoreboard, error)
}
