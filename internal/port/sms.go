package port

import "context"

// SendResult reports the outcome of a single SMS send attempt.
type SendResult struct {
	OK         bool
	StatusCode int
	Error      string
}

// SmsSender defines the contract for sending a ticket notification SMS.
// Implementations must not panic; delivery failures are returned in the
// SendResult so callers can record them without aborting the import.
type SmsSender interface {
	Send(ctx context.Context, toE164, text string) SendResult
}
