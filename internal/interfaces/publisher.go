package interfaces

import (
	"context"

	"scoreboard-bot/internal/types"
)

// Publisher accepts the final formatted scoreboard body. In dry-run mode the
// call is a no-op that surfaces the body instead of posting it.
type Publisher interface {
	Publish(ctx context.Context, thread types.ThreadRef, body string) error
}
