// Package email sends transactional mail over SMTP.
package email

import (
	"gopkg.in/gomail.v2"
)

// Sender delivers a single plain-text message.
type Sender interface {
	Send(to, subject, body string) error
}

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends mail through an SMTP relay.
type Mailer struct {
	cfg    Config
	dialer *gomail.Dialer
}

var _ Sender = (*Mailer)(nil)

// NewMailer creates an SMTP mailer with the given settings.
func NewMailer(cfg Config) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Send delivers one plain-text message. Each call dials a fresh SMTP
// connection; volume here is a handful of reset-password mails, not a queue.
func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
