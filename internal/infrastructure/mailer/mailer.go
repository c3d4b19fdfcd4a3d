// Package mailer provides the transactional mail implementations behind
// ports.Mailer: a MailerSend-backed sender for production and a log-only
// sender for development.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mailersend/mailersend-go"
)

const sendTimeout = 10 * time.Second

// MailerSend sends mail through the MailerSend API. Disabled (and failing
// fast) when the API key or sender address is missing.
type MailerSend struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	enabled bool
}

func NewMailerSend(apiKey, fromName, fromEmail string) *MailerSend {
	m := &MailerSend{
		enabled: apiKey != "" && fromEmail != "",
		from:    mailersend.From{Name: fromName, Email: fromEmail},
	}
	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}
	return m
}

func (m *MailerSend) SendPasswordReset(ctx context.Context, toEmail, resetLink string) error {
	if !m.enabled {
		return errors.New("mailer disabled (missing MAILERSEND_API_KEY or MAILER_FROM_EMAIL)")
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Email: toEmail}})
	msg.SetSubject("Reset your Mukhtar password")
	msg.SetText(fmt.Sprintf("Follow this link to reset your password: %s", resetLink))

	res, err := m.client.Email.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("mailersend: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("mailersend: unexpected status %d", res.StatusCode)
	}
	return nil
}
