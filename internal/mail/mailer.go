// Package mail sends transactional email over SMTP.
// The dialer is constructed once per process and shared by all requests;
// each Send dials a fresh SMTP session, which is fine at this volume.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer delivers HTML email through a single configured SMTP account.
type Mailer struct {
	dialer   *gomail.Dialer
	fromName string
	fromAddr string
}

// Config carries the SMTP settings the Mailer needs.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
	FromAddr string
}

// New constructs a Mailer from the given SMTP configuration.
func New(cfg Config) *Mailer {
	return &Mailer{
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		fromName: cfg.FromName,
		fromAddr: cfg.FromAddr,
	}
}

// Send delivers one HTML message to a single recipient.
// There is no retry: a delivery fault is returned to the caller as-is.
// The context is only consulted before dialing — gomail has no cancellation
// support, so an in-flight delivery cannot be interrupted.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("mail.Mailer.Send: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.fromAddr, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail.Mailer.Send: %w", err)
	}
	return nil
}
