package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.SMTPHost != "smtp.gmail.com" {
		t.Errorf("expected default SMTP host, got %q", cfg.SMTPHost)
	}
	if cfg.SMTPPort != 587 {
		t.Errorf("expected default SMTP port 587, got %d", cfg.SMTPPort)
	}
}

func TestLoad_OwnerEmailFallsBackToAccount(t *testing.T) {
	t.Setenv("EMAIL_USER", "account@example.com")
	t.Setenv("OWNER_EMAIL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OwnerEmail != "account@example.com" {
		t.Errorf("expected owner email to fall back to account, got %q", cfg.OwnerEmail)
	}
}

func TestLoad_ExplicitOwnerEmail(t *testing.T) {
	t.Setenv("EMAIL_USER", "account@example.com")
	t.Setenv("OWNER_EMAIL", "me@example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OwnerEmail != "me@example.com" {
		t.Errorf("expected explicit owner email, got %q", cfg.OwnerEmail)
	}
}

// Missing credentials must not fail startup; they surface at send time.
func TestLoad_MissingCredentialsAllowed(t *testing.T) {
	t.Setenv("EMAIL_USER", "")
	t.Setenv("EMAIL_PASS", "")

	if _, err := Load(); err != nil {
		t.Fatalf("expected load to succeed without credentials, got %v", err)
	}
}
