package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"time"

	"github.com/wneessen/go-mail"
)

const (
	// SMTPSPort is the implicit-TLS submission port.
	SMTPSPort = 465

	defaultSMTPPort    = 587
	defaultSMTPTimeout = 30 * time.Second
)

// SMTPConfig holds the relay account used by SMTPSender.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// SSL forces implicit TLS. It is implied by port 465.
	SSL bool
	// Timeout bounds the whole relay session. Zero means 30s.
	Timeout time.Duration
}

// SMTPSender delivers messages through an authenticated SMTP relay.
type SMTPSender struct {
	host string
	ssl  bool
	opts []mail.Option
}

func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp: host is required")
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("smtp: username and password are required")
	}

	port := cfg.Port
	if port == 0 {
		port = defaultSMTPPort
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}
	ssl := cfg.SSL || port == SMTPSPort

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(timeout),
		mail.WithDialContextFunc(sessionDialer(cfg.Host, ssl)),
	}
	if ssl {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	return &SMTPSender{host: cfg.Host, ssl: ssl, opts: opts}, nil
}

// sessionDialer opens the relay connection and pins the dial deadline on it,
// so a relay that never greets or stalls mid-session fails instead of
// blocking the request.
func sessionDialer(host string, ssl bool) mail.DialContextFunc {
	return func(ctx context.Context, network, address string) (net.Conn, error) {
		netDialer := &net.Dialer{}
		var (
			conn net.Conn
			err  error
		)
		if ssl {
			tlsDialer := &tls.Dialer{
				NetDialer: netDialer,
				Config:    &tls.Config{ServerName: host, MinVersion: tls.VersionTLS12},
			}
			conn, err = tlsDialer.DialContext(ctx, network, address)
		} else {
			conn, err = netDialer.DialContext(ctx, network, address)
		}
		if err != nil {
			return nil, err
		}

		if deadline, ok := ctx.Deadline(); ok {
			if err := conn.SetDeadline(deadline); err != nil {
				_ = conn.Close()
				return nil, err
			}
		}
		return conn, nil
	}
}

// Send dials the relay and submits the message. A client is built per call so
// concurrent requests never share a connection.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	m, err := buildMsg(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.host, s.opts...)
	if err != nil {
		return fmt.Errorf("smtp: failed to create client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp: failed to send email: %w", err)
	}

	return nil
}

func buildMsg(msg *Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("smtp: invalid sender %q: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("smtp: invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)

	if a := msg.Attachment; a != nil {
		// Staged files are attached by path; in-memory content is the fallback.
		if a.Path != "" {
			m.AttachFile(a.Path, mail.WithFileName(a.Filename))
		} else if err := m.AttachReader(a.Filename, bytes.NewReader(a.Content)); err != nil {
			return nil, fmt.Errorf("smtp: failed to attach %q: %w", a.Filename, err)
		}
	}

	return m, nil
}
