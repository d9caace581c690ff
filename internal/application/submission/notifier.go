package submission

import "context"

// Notification is a fully formed message ready for delivery: subject line,
// structured body, and the submitter's address for replies.
type Notification struct {
	Subject  string
	HTMLBody string
	TextBody string
	ReplyTo  string
}

// Notifier is the outbound delivery port. Implementations make a single
// best-effort attempt; no retries, no queuing. Failures are classified via
// the shared error taxonomy (configuration, delivery).
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}
