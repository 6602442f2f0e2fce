package mail

import "context"

// Mailer hands an email envelope to an outbound transport. A nil error
// means the transport accepted the envelope, not that the email reached
// an inbox.
type Mailer interface {
	Send(ctx context.Context, to string, subject string, html string) error
}
