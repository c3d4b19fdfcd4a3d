package handler

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
)

// TokenIssuer mints the bearer tokens handed out at login and signup.
type TokenIssuer struct {
	secret   string
	tokenTTL time.Duration
}

func NewTokenIssuer(secret string, tokenTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, tokenTTL: tokenTTL}
}

func (ti *TokenIssuer) Issue(id *domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":   id.ID,
		"name":  id.Name,
		"email": id.Email,
		"role":  string(id.Role),
		"exp":   time.Now().Add(ti.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(ti.secret))
}
