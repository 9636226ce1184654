package mail

import (
	"context"
	"fmt"

	gomail "gopkg.in/mail.v2"

	"github.com/infinitechange/coaching-site/internal/core/ports"
)

// Mailer delivers messages over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New builds a Mailer that authenticates against the given SMTP server.
func New(host string, port int, username, password string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   username,
	}
}

var _ ports.Mailer = (*Mailer)(nil)

// Send delivers a message with a plain-text body and an HTML alternative.
func (m *Mailer) Send(ctx context.Context, to, subject, text, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	if html != "" {
		msg.AddAlternative("text/html", html)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
