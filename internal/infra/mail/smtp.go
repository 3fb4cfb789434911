// Package mail implements the outbound mail transport over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"mylot/config"
	"mylot/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpMailer sends plain-text mail through a configured SMTP relay.
type smtpMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	logger   *slog.Logger
	// send is swappable so tests can avoid a real SMTP dial.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp transport must be configured")
	}

	return &smtpMailer{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		from:     cfg.SMTP.From,
		logger:   logger,
		send:     smtp.SendMail,
	}, nil
}

// Send hands one plain-text message to the SMTP relay.
func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "mail send canceled")
	default:
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if err := m.send(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		m.logger.Warn("SMTP send failed", slog.String("to", to), slog.Any("error", err))

		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}
