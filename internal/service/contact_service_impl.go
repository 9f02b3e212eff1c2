package service

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/sanitize"
	"github.com/portfolio/backend/pkg/mailer"
)

// previewLimit is the maximum number of characters of the sanitized message
// reproduced in the auto-reply before truncation with an ellipsis.
const previewLimit = 200

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	mailer mailer.Mailer
	id     Identity
}

// NewContactService creates a ContactService that dispatches through the
// given mailer under the given identity.
func NewContactService(m mailer.Mailer, id Identity) ContactService {
	return &contactServiceImpl{mailer: m, id: id}
}

// SendNotification sanitizes all three fields, composes the plain-text
// owner notification and dispatches it. The subject carries the sanitized
// name; reply-to is the submitter so the owner can answer directly.
func (s *contactServiceImpl) SendNotification(ctx context.Context, sub model.Submission) error {
	name := sanitize.Attribute(sub.FullName)
	email := sanitize.Attribute(sub.Email)
	message := sanitize.Attribute(sub.Message)

	msg := mailer.Message{
		From:     s.id.FromEmail,
		FromName: "Portfolio Contact",
		To:       s.id.OwnerEmail,
		ReplyTo:  email,
		Subject:  fmt.Sprintf("Important! New message from %s", name),
		TextBody: fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", name, email, message),
	}
	return s.mailer.Send(ctx, msg)
}

// SendAutoReply sanitizes the submission, generates a reference number and
// dispatches the HTML confirmation to the submitter. Reply-to is the owner
// address so any reply lands in the same mailbox as notifications.
func (s *contactServiceImpl) SendAutoReply(ctx context.Context, sub model.Submission) (model.Receipt, error) {
	name := sanitize.Attribute(sub.FullName)
	safeMessage := sanitize.Text(sub.Message)

	ref := newReferenceNumber()
	date := time.Now().Format("Monday, January 2, 2006")

	html, err := renderAutoReply(autoReplyData{
		Name:            template.HTML(name),
		MessagePreview:  template.HTML(previewOf(safeMessage)),
		ReferenceNumber: ref,
		Date:            date,
		OwnerName:       s.id.OwnerName,
		OwnerTitle:      s.id.OwnerTitle,
		ContactEmail:    s.id.OwnerEmail,
		Phone:           s.id.Phone,
	})
	if err != nil {
		return model.Receipt{}, fmt.Errorf("render auto-reply: %w", err)
	}

	msg := mailer.Message{
		From:     s.id.FromEmail,
		FromName: s.id.OwnerName + " Portfolio",
		To:       sub.Email,
		ReplyTo:  s.id.OwnerEmail,
		Subject:  fmt.Sprintf("Message Received - Reference #%s | %s", ref, s.id.OwnerName),
		HTMLBody: html,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return model.Receipt{}, err
	}
	return model.Receipt{ReferenceNumber: ref}, nil
}

// previewOf truncates an already-sanitized message to previewLimit
// characters with an ellipsis suffix. Shorter messages pass through
// unchanged, with no marker.
func previewOf(s string) string {
	r := []rune(s)
	if len(r) <= previewLimit {
		return s
	}
	return string(r[:previewLimit]) + "..."
}
