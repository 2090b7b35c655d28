package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Supported delivery transports. Exactly one is active per deployment.
const (
	TransportResend = "resend"
	TransportSMTP   = "smtp"
)

// DefaultResendFrom is the sender used by the resend transport when EMAIL_FROM is unset.
const DefaultResendFrom = "MD Terceirização <onboarding@resend.dev>"

type Config struct {
	Port    string `env:"PORT" envDefault:"10000"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	// Notification addressing. An unset EMAIL_FROM falls back per transport,
	// see LoadConfig.
	EmailTo   string `env:"EMAIL_TO"`
	EmailFrom string `env:"EMAIL_FROM"`

	// Transport selection: "resend" or "smtp"
	EmailTransport string `env:"EMAIL_TRANSPORT" envDefault:"resend"`

	// Resend (transactional API)
	ResendAPIKey string `env:"RESEND_API_KEY"`

	// SMTP relay
	SMTPHost     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	// Implicit TLS instead of STARTTLS; always on for port 465
	SMTPSSL bool `env:"SMTP_SSL" envDefault:"false"`

	// Upload staging
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`

	// Escape <, >, & and quotes in submitted text before it is placed in the email body.
	EscapeHTML bool `env:"ESCAPE_HTML" envDefault:"false"`

	// Per-IP rate limit on form submissions; 0 disables it
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"0"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
}

func LoadConfig() (*Config, error) {
	// .env is optional; production injects the environment directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.EmailTransport = strings.ToLower(strings.TrimSpace(cfg.EmailTransport))

	// Relays only accept the authenticated account as envelope sender.
	if cfg.EmailFrom == "" {
		if cfg.EmailTransport == TransportSMTP && cfg.SMTPUsername != "" {
			cfg.EmailFrom = cfg.SMTPUsername
		} else {
			cfg.EmailFrom = DefaultResendFrom
		}
	}

	if cfg.EmailTo == "" {
		log.Println("WARNING: EMAIL_TO is missing. Notifications have no recipient.")
	}

	return cfg, nil
}

// Validate reports configuration that would make the selected transport unusable.
func (c *Config) Validate() error {
	var errs []error

	if c.EmailTo == "" {
		errs = append(errs, errors.New("EMAIL_TO is required"))
	}

	switch c.EmailTransport {
	case TransportResend:
		if c.ResendAPIKey == "" {
			errs = append(errs, errors.New("RESEND_API_KEY is required for the resend transport"))
		}
	case TransportSMTP:
		if c.SMTPHost == "" {
			errs = append(errs, errors.New("SMTP_HOST is required for the smtp transport"))
		}
		if c.SMTPUsername == "" || c.SMTPPassword == "" {
			errs = append(errs, errors.New("SMTP_USERNAME and SMTP_PASSWORD are required for the smtp transport"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown EMAIL_TRANSPORT %q (expected %q or %q)", c.EmailTransport, TransportResend, TransportSMTP))
	}

	return errors.Join(errs...)
}
