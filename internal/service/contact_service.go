package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ContactService composes and dispatches the two emails triggered by a
// contact form submission. Inputs are assumed validated; sanitization
// happens inside, immediately before composition.
type ContactService interface {
	// SendNotification emails the site owner a plain-text copy of the
	// submission, with reply-to pointing at the submitter.
	SendNotification(ctx context.Context, sub model.Submission) error

	// SendAutoReply emails the submitter a styled HTML confirmation and
	// returns the receipt carrying the generated reference number.
	SendAutoReply(ctx context.Context, sub model.Submission) (model.Receipt, error)
}

// Identity is the fixed sender/owner identity injected at construction.
// FromEmail is the authenticated relay account; OwnerEmail receives
// notifications and centralizes replies to auto-replies.
type Identity struct {
	FromEmail  string
	OwnerEmail string
	OwnerName  string
	OwnerTitle string
	Phone      string
}
