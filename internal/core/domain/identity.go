package domain

import "errors"

// Role distinguishes the two mutually exclusive kinds of platform users.
type Role string

const (
	RoleTourist   Role = "tourist"
	RoleOrganizer Role = "organizer"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleTourist || r == RoleOrganizer
}

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidRole  = errors.New("invalid role")
	ErrNoSession    = errors.New("no active session")
	ErrSessionBusy  = errors.New("session operation already in flight")
	ErrForbidden    = errors.New("access forbidden")
)

// Identity is the signed-in principal. The role is fixed at creation time;
// there is no role-change operation. The JSON field names form the persisted
// session payload and must stay stable across releases.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   Role   `json:"userType"`
	Avatar string `json:"avatar,omitempty"`
}

// IdentityPatch carries optional replacement values for a profile update.
// Nil fields are left untouched. Role cannot be patched.
type IdentityPatch struct {
	Name   *string
	Email  *string
	Phone  *string
	Avatar *string
}

// Apply returns a copy of id with the non-nil patch fields merged in.
func (p IdentityPatch) Apply(id Identity) Identity {
	if p.Name != nil {
		id.Name = *p.Name
	}
	if p.Email != nil {
		id.Email = *p.Email
	}
	if p.Phone != nil {
		id.Phone = *p.Phone
	}
	if p.Avatar != nil {
		id.Avatar = *p.Avatar
	}
	return id
}
