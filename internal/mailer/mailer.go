// Package mailer wraps SMTP delivery behind a small Sender interface so the
// digest job can be tested without a mail server. Delivery is
// fire-and-forget: no confirmation is consumed.
package mailer

import (
	mail "github.com/go-mail/mail/v2"
)

// Sender sends a plain-text email.
type Sender interface {
	Send(to, subject, body string) error
}

type Mailer struct {
	dialer *mail.Dialer
	sender string
}

var _ Sender = (*Mailer)(nil)

func New(host string, port int, username, password, sender string) *Mailer {
	dialer := mail.NewDialer(host, port, username, password)
	return &Mailer{
		dialer: dialer,
		sender: sender,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := mail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
