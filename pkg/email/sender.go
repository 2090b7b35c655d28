package email

import (
	"fmt"

	"md-terceirizacao-api/config"

	"github.com/resend/resend-go/v2"
)

// NewSender builds the transport selected by configuration.
func NewSender(cfg *config.Config) (Sender, error) {
	switch cfg.EmailTransport {
	case config.TransportResend:
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("resend: api key is required")
		}
		return NewResendSender(resend.NewClient(cfg.ResendAPIKey)), nil
	case config.TransportSMTP:
		return NewSMTPSender(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			SSL:      cfg.SMTPSSL,
		})
	default:
		return nil, fmt.Errorf("unknown email transport %q", cfg.EmailTransport)
	}
}

// TransportLabel is the human-readable transport name shown on the status route.
func TransportLabel(transport string) string {
	switch transport {
	case config.TransportResend:
		return "Resend"
	case config.TransportSMTP:
		return "SMTP"
	default:
		return transport
	}
}
