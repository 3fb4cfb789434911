package service

import "context"

// Mailer defines the interface for outbound transactional mail.
// Delivery is best-effort: callers log failures and never roll back state on them.
type Mailer interface {
	// Send hands one plain-text message to the mail transport.
	Send(ctx context.Context, to, subject, body string) error
}
