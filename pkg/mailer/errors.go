package mailer

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"
)

// Kind is a closed set of delivery failure categories, assigned where the
// failure is observed rather than recovered later from diagnostic text.
type Kind int

const (
	// KindOther is any failure that is not one of the specific kinds below.
	KindOther Kind = iota
	// KindAuth means the relay rejected our credentials.
	KindAuth
	// KindConnection means the relay could not be reached.
	KindConnection
	// KindTimeout means the dial or the conversation timed out.
	KindTimeout
)

// SendError is the error type returned by every failed delivery attempt.
type SendError struct {
	Kind Kind
	Err  error
}

func (e *SendError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "mailer: send failed"
}

func (e *SendError) Unwrap() error { return e.Err }

// classify wraps err in a SendError, inferring the kind from the error
// chain. Legacy provider markers (EAUTH, ECONNECTION, ETIMEDOUT) in the
// diagnostic text are honored for relays that only expose a string.
func classify(err error) *SendError {
	var se *SendError
	if errors.As(err, &se) {
		return se
	}

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &SendError{Kind: KindTimeout, Err: err}
	case errors.As(err, &netErr) && netErr.Timeout():
		return &SendError{Kind: KindTimeout, Err: err}
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.EHOSTUNREACH),
		errors.Is(err, syscall.ENETUNREACH):
		return &SendError{Kind: KindConnection, Err: err}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "EAUTH"):
		return &SendError{Kind: KindAuth, Err: err}
	case strings.Contains(msg, "ECONNECTION"):
		return &SendError{Kind: KindConnection, Err: err}
	case strings.Contains(msg, "ETIMEDOUT"):
		return &SendError{Kind: KindTimeout, Err: err}
	}

	return &SendError{Kind: KindOther, Err: err}
}
