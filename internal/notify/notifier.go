package notify

import "context"

// Notifier sends transactional email. Implementations must not be relied on
// for request success; callers log failures and move on.
type Notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Noop is a Notifier that discards everything. Used when mail is unconfigured
// and in tests.
type Noop struct{}

func (Noop) Send(ctx context.Context, to, subject, htmlBody string) error {
	return nil
}
