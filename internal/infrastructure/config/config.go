package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// Config is built once at process start and injected into every component
// that needs it; business logic never reads the environment directly.
//
// JWT_SECRET is required in every environment. There is deliberately no
// fallback secret: a process without an explicit signing key must not start.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string `env:"JWT_SECRET, required"`

	// Bootstrap admin credentials. When both are set the server seeds an
	// ADMIN user at startup if none exists for that email.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	Database DatabaseConfig
	SMTP     SMTPConfig
	Sheets   SheetsConfig
}

type DatabaseConfig struct {
	Path string `env:"DATABASE_PATH, default=coaching.db"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_SERVER_HOST"`
	Port     int    `env:"SMTP_SERVER_PORT, default=587"`
	Username string `env:"SMTP_SERVER_USERNAME"`
	Password string `env:"SMTP_SERVER_PASSWORD"`
	// Receiver is the site owner's inbox for contact notifications.
	Receiver string `env:"SITE_MAIL_RECEIVER"`
}

type SheetsConfig struct {
	ClientEmail   string `env:"GOOGLE_SHEETS_CLIENT_EMAIL"`
	PrivateKey    string `env:"GOOGLE_SHEETS_PRIVATE_KEY"`
	SpreadsheetID string `env:"GOOGLE_SHEETS_SHEET_ID"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction reports whether the process runs in production mode. It
// controls the Secure attribute on session cookies and log formatting.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
