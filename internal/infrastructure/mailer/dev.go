package mailer

import (
	"context"

	"github.com/rs/zerolog"
)

// Dev logs mail instead of sending it. Used whenever no MailerSend
// credentials are configured.
type Dev struct {
	log zerolog.Logger
}

func NewDev(log zerolog.Logger) *Dev {
	return &Dev{log: log}
}

func (d *Dev) SendPasswordReset(_ context.Context, toEmail, resetLink string) error {
	d.log.Info().
		Str("to", toEmail).
		Str("link", resetLink).
		Msg("password reset mail (dev mode, not sent)")
	return nil
}
