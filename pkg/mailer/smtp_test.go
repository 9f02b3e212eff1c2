package mailer

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// renderMessage
// ---------------------------------------------------------------------------

func TestRenderMessage_PlainText(t *testing.T) {
	raw := string(renderMessage(Message{
		From:     "service@example.com",
		FromName: "Portfolio Contact",
		To:       "owner@example.com",
		ReplyTo:  "jane@example.com",
		Subject:  "New message",
		TextBody: "Name: Jane\nEmail: jane@example.com",
	}))

	for _, want := range []string{
		"From: \"Portfolio Contact\" <service@example.com>\r\n",
		"To: <owner@example.com>\r\n",
		"Reply-To: <jane@example.com>\r\n",
		"Subject: New message\r\n",
		"MIME-Version: 1.0\r\n",
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n",
	} {
		if !strings.Contains(raw, want) {
			t.Errorf("missing header %q in rendered message", want)
		}
	}
	if !strings.Contains(raw, "\r\n\r\nName: Jane\nEmail: jane@example.com\r\n") {
		t.Error("body not separated from headers by a blank line")
	}
}

func TestRenderMessage_HTMLContentType(t *testing.T) {
	raw := string(renderMessage(Message{
		From:     "service@example.com",
		To:       "jane@example.com",
		Subject:  "Message Received",
		HTMLBody: "<html><body>hi</body></html>",
	}))

	if !strings.Contains(raw, "Content-Type: text/html; charset=\"UTF-8\"\r\n") {
		t.Error("expected HTML content type")
	}
	if !strings.Contains(raw, "<html><body>hi</body></html>") {
		t.Error("expected HTML body in rendered message")
	}
}

func TestRenderMessage_OmitsEmptyReplyTo(t *testing.T) {
	raw := string(renderMessage(Message{
		From:     "service@example.com",
		To:       "owner@example.com",
		Subject:  "s",
		TextBody: "b",
	}))
	if strings.Contains(raw, "Reply-To:") {
		t.Error("unexpected Reply-To header")
	}
}

// Subjects with non-ASCII must be MIME-encoded.
func TestRenderMessage_EncodesUTF8Subject(t *testing.T) {
	raw := string(renderMessage(Message{
		From:     "service@example.com",
		To:       "owner@example.com",
		Subject:  "Grüße",
		TextBody: "b",
	}))
	if strings.Contains(raw, "Subject: Grüße\r\n") {
		t.Error("expected MIME-encoded subject for non-ASCII input")
	}
	if !strings.Contains(raw, "Subject: =?utf-8?") {
		t.Error("expected encoded-word subject header")
	}
}

// ---------------------------------------------------------------------------
// Send
// ---------------------------------------------------------------------------

// TestSend_ConnectionRefused dials a port nothing is listening on and
// expects a connection-kind SendError.
func TestSend_ConnectionRefused(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	l.Close()

	m := NewSMTP(Config{Host: "127.0.0.1", Port: port, Username: "u", Password: "p"})
	err = m.Send(context.Background(), Message{
		From: "a@example.com", To: "b@example.com", Subject: "s", TextBody: "b",
	})

	var se *SendError
	if !errors.As(err, &se) {
		t.Fatalf("expected SendError, got %v", err)
	}
	if se.Kind != KindConnection {
		t.Errorf("expected KindConnection, got %v", se.Kind)
	}
}

// TestSend_ExpiredContext expects a timeout-kind SendError when the context
// deadline has already passed.
func TestSend_ExpiredContext(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	m := NewSMTP(Config{Host: "smtp.invalid", Port: 587, Username: "u", Password: "p"})
	err := m.Send(ctx, Message{
		From: "a@example.com", To: "b@example.com", Subject: "s", TextBody: "b",
	})

	var se *SendError
	if !errors.As(err, &se) {
		t.Fatalf("expected SendError, got %v", err)
	}
	if se.Kind != KindTimeout {
		t.Errorf("expected KindTimeout, got %v", se.Kind)
	}
}
