package gate

import (
	"testing"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
)

func tourist() *domain.Identity {
	return &domain.Identity{ID: "1", Role: domain.RoleTourist}
}

func organizer() *domain.Identity {
	return &domain.Identity{ID: "2", Role: domain.RoleOrganizer}
}

func TestEvaluate_Scenarios(t *testing.T) {
	cases := []struct {
		name     string
		loading  bool
		identity *domain.Identity
		req      Requirements
		want     Decision
	}{
		{
			name:     "loading wins regardless of other inputs",
			loading:  true,
			identity: organizer(),
			req:      ForRole(domain.RoleTourist),
			want:     Decision{Kind: Loading},
		},
		{
			name: "unauthenticated gated view redirects to sign-in",
			req:  Protected(),
			want: Decision{Kind: Redirect, Target: DefaultSignInPath},
		},
		{
			name:     "tourist on organizer-only view redirects to tourist home",
			identity: tourist(),
			req:      ForRole(domain.RoleOrganizer),
			want:     Decision{Kind: Redirect, Target: TouristHome},
		},
		{
			name:     "organizer on tourist-only view redirects to organizer home",
			identity: organizer(),
			req:      ForRole(domain.RoleTourist),
			want:     Decision{Kind: Redirect, Target: OrganizerHome},
		},
		{
			name:     "matching role renders",
			identity: tourist(),
			req:      ForRole(domain.RoleTourist),
			want:     Decision{Kind: Render},
		},
		{
			name: "unauthenticated public view renders",
			req:  Public(),
			want: Decision{Kind: Render},
		},
		{
			name:     "authenticated with no role restriction renders",
			identity: organizer(),
			req:      Protected(),
			want:     Decision{Kind: Render},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.loading, tc.identity, tc.req)
			if got != tc.want {
				t.Fatalf("Evaluate() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	req := ForRole(domain.RoleOrganizer)
	id := tourist()

	first := Evaluate(false, id, req)
	second := Evaluate(false, id, req)
	if first != second {
		t.Fatalf("same inputs produced different decisions: %+v vs %+v", first, second)
	}
}

func TestEvaluate_CustomSignInPath(t *testing.T) {
	req := Requirements{SignInPath: "/welcome"}

	got := Evaluate(false, nil, req)
	if got.Kind != Redirect || got.Target != "/welcome" {
		t.Fatalf("expected redirect to /welcome, got %+v", got)
	}
}

func TestEvaluate_ZeroValueRequiresAuth(t *testing.T) {
	got := Evaluate(false, nil, Requirements{})
	if got.Kind != Redirect || got.Target != DefaultSignInPath {
		t.Fatalf("zero-value requirements must demand a session, got %+v", got)
	}

	// A bare role requirement must send an anonymous caller to sign-in,
	// not to a role home.
	got = Evaluate(false, nil, Requirements{RequiredRole: domain.RoleOrganizer})
	if got.Kind != Redirect || got.Target != DefaultSignInPath {
		t.Fatalf("expected redirect to %s, got %+v", DefaultSignInPath, got)
	}
}
