package service

import "context"

// Mailer is the outbound notification capability the workflows depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". Production wiring
// passes *mail.Mailer; tests pass a recording fake.
//
// Delivery is at-most-once: no retry happens anywhere in this package, and a
// send failure surfaces to the caller as a request-level fault.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
