package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

// ResetService implements the forgot-password flow. Tokens are held in
// memory; the response never reveals whether an account exists.
type ResetService struct {
	mailer  ports.Mailer
	baseURL string
	log     zerolog.Logger

	mu      sync.Mutex
	tokens  map[string]string // token → email
	byEmail map[string]string // email → current token, for replacement
}

func NewResetService(mailer ports.Mailer, baseURL string, log zerolog.Logger) *ResetService {
	return &ResetService{
		mailer:  mailer,
		baseURL: baseURL,
		log:     log,
		tokens:  make(map[string]string),
		byEmail: make(map[string]string),
	}
}

// Request issues a fresh reset token for email and mails the reset link.
// A repeated request replaces the previous token.
func (s *ResetService) Request(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrInvalidInput
	}

	token := uuid.NewString()
	s.mu.Lock()
	if old, ok := s.byEmail[email]; ok {
		delete(s.tokens, old)
	}
	s.tokens[token] = email
	s.byEmail[email] = token
	s.mu.Unlock()

	link := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, token)
	if err := s.mailer.SendPasswordReset(ctx, email, link); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("reset mail not delivered")
		return err
	}

	s.log.Info().Str("email", email).Msg("password reset requested")
	return nil
}

// Confirm consumes the token from a mailed reset link. Unknown and
// already-used tokens are rejected. With no stored credentials there is
// nothing to rewrite; confirming simply proves control of the mailbox.
func (s *ResetService) Confirm(_ context.Context, token string) error {
	if token == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email, ok := s.tokens[token]
	if !ok {
		return domain.ErrInvalidInput
	}
	delete(s.tokens, token)
	delete(s.byEmail, email)

	s.log.Info().Str("email", email).Msg("password reset confirmed")
	return nil
}
