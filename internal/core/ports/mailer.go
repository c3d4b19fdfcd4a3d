package ports

import "context"

// Mailer sends transactional mail. Implementations must not block beyond a
// bounded timeout.
type Mailer interface {
	SendPasswordReset(ctx context.Context, toEmail, resetLink string) error
}

// ResetService handles the forgot-password flow. Request never reveals
// whether an account exists for the address.
type ResetService interface {
	Request(ctx context.Context, email string) error
	// Confirm consumes a previously mailed token. A token is single-use.
	Confirm(ctx context.Context, token string) error
}
