package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends email through an SMTP relay.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer returns nil when no host is configured; a nil Mailer reports itself disabled.
func NewMailer(host string, port int, username, password, from string) *Mailer {
	if host == "" {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *Mailer) Enabled() bool {
	return m != nil
}

func (m *Mailer) Send(ctx context.Context, to string, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", to)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Text)
	gm.AddAlternative("text/html", msg.HTML)

	if err := m.dialer.DialAndSend(gm); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}
