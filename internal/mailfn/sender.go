package mailfn

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/grodno-ai/club-backend/internal/logger"
	"github.com/grodno-ai/club-backend/internal/mail"
)

// ErrIncompleteSMTP is returned before any network activity when host, user
// or password are missing.
var ErrIncompleteSMTP = errors.New("Incomplete SMTP configuration")

// Sender performs (or simulates) one SMTP submission.
type Sender interface {
	Send(ctx context.Context, msg mail.Message, smtp mail.SMTPSettings) error
}

// SimulatedSender mimics a delivery round trip without touching the network.
// Used in demo deployments where no SMTP account exists.
type SimulatedSender struct {
	Delay time.Duration
}

func (s *SimulatedSender) Send(ctx context.Context, msg mail.Message, smtp mail.SMTPSettings) error {
	if !smtp.Complete() {
		return ErrIncompleteSMTP
	}

	delay := s.Delay
	if delay == 0 {
		delay = 1500 * time.Millisecond
	}

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return ctx.Err()
	}

	logger.WithFields(map[string]interface{}{
		"to":        msg.Recipient,
		"subject":   msg.Subject,
		"smtp_host": smtp.Host,
	}).Info("simulated email delivery")

	return nil
}

// SMTPSender submits mail through a real SMTP server.
type SMTPSender struct{}

func (s *SMTPSender) Send(ctx context.Context, msg mail.Message, smtp mail.SMTPSettings) error {
	if !smtp.Complete() {
		return ErrIncompleteSMTP
	}

	port := smtp.Port
	if port == 0 {
		port = 587
	}

	dialer := gomail.NewDialer(smtp.Host, port, smtp.User, smtp.Pass)
	dialer.SSL = smtp.Secure
	dialer.TLSConfig = &tls.Config{
		ServerName: smtp.Host,
		MinVersion: tls.VersionTLS12,
	}

	m := gomail.NewMessage(gomail.SetCharset("UTF-8"))
	m.SetHeader("From", smtp.User)
	m.SetHeader("To", msg.Recipient)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
