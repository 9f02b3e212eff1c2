package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, parsed from environment variables.
// EmailUser/EmailPass are intentionally not required: missing credentials
// surface as an authentication failure at send time, not as a startup
// check, so the service can boot in environments without a relay account.
type Config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	SMTPHost string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`

	EmailUser string `env:"EMAIL_USER"`
	EmailPass string `env:"EMAIL_PASS"`

	// OwnerEmail receives notifications and centralizes auto-reply
	// responses. Defaults to the authenticated account.
	OwnerEmail string `env:"OWNER_EMAIL"`
	OwnerName  string `env:"OWNER_NAME" envDefault:"Portfolio Owner"`
	OwnerTitle string `env:"OWNER_TITLE" envDefault:"Full-Stack Developer"`
	OwnerPhone string `env:"OWNER_PHONE"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.OwnerEmail == "" {
		cfg.OwnerEmail = cfg.EmailUser
	}
	return cfg, nil
}
