package ports

import (
	"context"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
)

// RestoreOutcome describes what Restore found in durable storage.
type RestoreOutcome string

const (
	RestoreEmpty    RestoreOutcome = "empty"
	RestoreCurrent  RestoreOutcome = "current"
	RestoreMigrated RestoreOutcome = "migrated"
	RestoreCorrupt  RestoreOutcome = "corrupt"
)

// SignupInput carries the full set of fields a new account is created with.
type SignupInput struct {
	Name     string
	Email    string
	Phone    string
	Role     domain.Role
	Password string
}

// SessionSnapshot is an immutable view of the session at one instant.
type SessionSnapshot struct {
	Identity *domain.Identity
	Loading  bool
}

// SessionService is the single source of truth for "who is signed in".
// At most one Login or Signup resolution is in flight at a time; a second
// call while loading fails with domain.ErrSessionBusy.
type SessionService interface {
	// Restore adopts a previously persisted identity, migrating from the
	// legacy storage key when only that is present.
	Restore(ctx context.Context) (RestoreOutcome, error)
	// Login establishes a session for email. When roleOverride is empty the
	// role is inferred from the email content.
	Login(ctx context.Context, email, password string, roleOverride domain.Role) (*domain.Identity, error)
	Signup(ctx context.Context, in SignupInput) (*domain.Identity, error)
	Logout(ctx context.Context) error
	// UpdateIdentity merges the patch into the current identity. With no
	// session it is a no-op and returns (nil, nil).
	UpdateIdentity(ctx context.Context, patch domain.IdentityPatch) (*domain.Identity, error)
	Snapshot() SessionSnapshot
	// Subscribe registers fn to be called after every session state change.
	Subscribe(fn func(SessionSnapshot))
}
