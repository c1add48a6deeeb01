package reddit

import (
	"context"
	"fmt"
	"net/url"

	"scoreboard-bot/internal/interfaces"
	"scoreboard-bot/internal/logger"
	"scoreboard-bot/internal/types"
)

// Publisher posts the scoreboard as a top-level comment in the target
// thread. In dry-run mode Publish is a no-op so the caller can surface the
// body for inspection instead.
type Publisher struct {
	client *Client
	dryRun bool
}

var _ interfaces.Publisher = (*Publisher)(nil)

func NewPublisher(client *Client, dryRun bool) *Publisher {
	return &Publisher{client: client, dryRun: dryRun}
}

func (p *Publisher) Publish(ctx context.Context, thread types.ThreadRef, body string) error {
	if p.dryRun {
		logger.Info(ctx, "Dry run enabled, not posting", "thread", thread.Permalink, "body_bytes", len(body))
		return nil
	}

	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("thing_id", "t3_"+thread.ID)
	form.Set("text", body)

	var resp struct {
		JSON struct {
			Errors [][]any `json:"errors"`
		} `json:"json"`
	}
	if err := p.client.postForm(ctx, "/api/comment", form, &resp); err != nil {
		return fmt.Errorf("%w: %v", types.ErrPublishFailure, err)
	}
	if len(resp.JSON.Errors) > 0 {
		return fmt.Errorf("%w: %v", types.ErrPublishFailure, resp.JSON.Errors[0])
	}

	logger.Info(ctx, "Scoreboard comment posted", "thread", thread.Permalink)
	return nil
}
