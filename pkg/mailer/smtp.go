package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"time"
)

// Config holds the fixed connection settings for one SMTP account.
// Port 587 implies an explicit STARTTLS upgrade after the plaintext
// handshake, not implicit TLS.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTP delivers messages through a remote relay with PLAIN authentication
// over STARTTLS. One connection per Send, at most one delivery attempt.
type SMTP struct {
	cfg Config
}

// NewSMTP creates an SMTP mailer with the given connection settings.
func NewSMTP(cfg Config) *SMTP {
	return &SMTP{cfg: cfg}
}

// Send opens a connection to the relay, upgrades to TLS, authenticates and
// transmits msg. Any failure is returned as a *SendError; no retry is made.
func (m *SMTP) Send(ctx context.Context, msg Message) error {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		if se := classify(err); se.Kind != KindOther {
			return se
		}
		return &SendError{Kind: KindConnection, Err: err}
	}

	c, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return classify(err)
	}
	defer c.Close()

	if err := c.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
		return classify(fmt.Errorf("starttls: %w", err))
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := c.Auth(auth); err != nil {
		return &SendError{Kind: KindAuth, Err: fmt.Errorf("auth: %w", err)}
	}

	if err := c.Mail(m.cfg.Username); err != nil {
		return classify(fmt.Errorf("mail from: %w", err))
	}
	if err := c.Rcpt(msg.To); err != nil {
		return classify(fmt.Errorf("rcpt to: %w", err))
	}

	w, err := c.Data()
	if err != nil {
		return classify(err)
	}
	if _, err := w.Write(renderMessage(msg)); err != nil {
		return classify(err)
	}
	if err := w.Close(); err != nil {
		return classify(err)
	}

	if err := c.Quit(); err != nil {
		return classify(err)
	}
	return nil
}

// renderMessage serializes msg as an RFC 5322 message with CRLF line
// endings and UTF-8 MIME headers.
func renderMessage(msg Message) []byte {
	from := mail.Address{Name: msg.FromName, Address: msg.From}
	to := mail.Address{Address: msg.To}

	contentType := "text/plain; charset=\"UTF-8\""
	body := msg.TextBody
	if msg.HTMLBody != "" {
		contentType = "text/html; charset=\"UTF-8\""
		body = msg.HTMLBody
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from.String())
	fmt.Fprintf(&buf, "To: %s\r\n", to.String())
	if msg.ReplyTo != "" {
		fmt.Fprintf(&buf, "Reply-To: %s\r\n", (&mail.Address{Address: msg.ReplyTo}).String())
	}
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: %s\r\n", contentType)
	buf.WriteString("\r\n")
	buf.WriteString(body)
	buf.WriteString("\r\n")
	return buf.Bytes()
}
