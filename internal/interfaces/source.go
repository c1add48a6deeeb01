package interfaces

import (
	"context"
	"time"

	"scoreboard-bot/internal/types"
)

// ContentSource supplies thread, comment and post records. Actual HTTP and
// auth live behind this boundary; the core only consumes RawItems.
type ContentSource interface {
	// FindTargetThread returns the newest submission whose title starts with
	// titlePrefix and that was created within the lookback window, or
	// types.ErrThreadNotFound.
	FindTargetThread(ctx context.Context, titlePrefix string, lookback time.Duration) (types.ThreadRef, error)

	// ListTopLevelComments returns the direct replies to the thread
	// submission, in observation order. SourceWeight is 1.0 on every item.
	ListTopLevelComments(ctx context.Context, thread types.ThreadRef) ([]types.RawItem, error)

	// ListRecentPosts returns recent posts of a community with title and
	// selftext concatenated into Text. Comments are never traversed.
	ListRecentPosts(ctx context.Context, subreddit, mode string, limit int, lookback time.Duration) ([]types.RawItem, error)
}
