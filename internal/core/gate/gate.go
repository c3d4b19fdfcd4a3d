// Package gate decides, per requested view, whether to render it, show a
// transitional loading state, or redirect elsewhere. The decision is a pure
// function of the session snapshot and the view's declared requirements and
// must be re-evaluated whenever session state changes.
package gate

import "github.com/mukhtar-travel/trip-platform/internal/core/domain"

// Default navigation targets.
const (
	DefaultSignInPath = "/signin"
	TouristHome       = "/trips"
	OrganizerHome     = "/dashboard"
)

// DecisionKind enumerates the three possible gate outcomes.
type DecisionKind int

const (
	Render DecisionKind = iota
	Redirect
	Loading
)

func (k DecisionKind) String() string {
	switch k {
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	default:
		return "loading"
	}
}

// Decision is the gate's verdict for one evaluation. Target is set only for
// Redirect, and the redirect replaces the current navigation entry.
type Decision struct {
	Kind   DecisionKind
	Target string
}

// Requirements declares what a view demands of the session. The zero value
// requires an authenticated session of any role; authentication must be
// opted out of with Public.
type Requirements struct {
	Public       bool
	RequiredRole domain.Role // empty means any authenticated role
	SignInPath   string      // defaults to DefaultSignInPath
}

// Public requires nothing of the session.
func Public() Requirements {
	return Requirements{Public: true}
}

// Protected requires an authenticated session of any role.
func Protected() Requirements {
	return Requirements{}
}

// ForRole requires an authenticated session holding the given role.
func ForRole(role domain.Role) Requirements {
	return Requirements{RequiredRole: role}
}

// Evaluate applies the gate policy in order: loading wins over everything,
// then the authentication requirement, then the role requirement. A role
// mismatch redirects to the defaulted home of the role the principal actually
// holds, not to sign-in.
func Evaluate(loading bool, identity *domain.Identity, req Requirements) Decision {
	if loading {
		return Decision{Kind: Loading}
	}

	if !req.Public && identity == nil {
		signIn := req.SignInPath
		if signIn == "" {
			signIn = DefaultSignInPath
		}
		return Decision{Kind: Redirect, Target: signIn}
	}

	if req.RequiredRole != "" && (identity == nil || identity.Role != req.RequiredRole) {
		if identity != nil && identity.Role == domain.RoleOrganizer {
			return Decision{Kind: Redirect, Target: OrganizerHome}
		}
		return Decision{Kind: Redirect, Target: TouristHome}
	}

	return Decision{Kind: Render}
}
