// Package mailer sends outbound email through a remote SMTP relay.
//
// The Mailer interface keeps the transport substitutable in tests; the SMTP
// implementation performs exactly one delivery attempt per call and reports
// failures as typed *SendError values so callers never have to parse
// provider diagnostics.
package mailer

import "context"

// Message is a fully composed outbound email. Exactly one of TextBody or
// HTMLBody should be set.
type Message struct {
	From     string
	FromName string
	To       string
	ReplyTo  string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer dispatches one composed message per call.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
