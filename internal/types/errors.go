package types

import "errors"

// Error taxonomy for a run. The core never invents other failure modes:
// unparseable text degrades to zero mentions, and an empty ranking still
// renders a valid body.
var (
	// ErrThreadNotFound means no thread matching the title prefix exists
	// within the lookback window. The run aborts cleanly, nothing is posted.
	ErrThreadNotFound = errors.New("target thread not found within lookback window")

	// ErrSourceUnavailable means the content source failed to return data.
	ErrSourceUnavailable = errors.New("content source unavailable")

	// ErrPublishFailure means the publisher rejected the scoreboard. Retry
	// policy, if any, belongs to the external scheduler.
	ErrPublishFailure = errors.New("publisher rejected the scoreboard")
)
