package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

// Storage keys forming the durable session contract. The legacy key predates
// the platform rename and is migrated once at startup.
const (
	SessionKey       = "mukhtar_user"
	LegacySessionKey = "dalilak_user"
)

const avatarBase = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// Placeholder identity fields used by the mock sign-in. Real credential
// verification is out of scope; Login succeeds for any well-formed input.
const (
	placeholderID    = "1"
	placeholderName  = "مختار"
	placeholderPhone = "+962 7 9999 9999"
)

// SessionService owns the process-wide session: the current identity plus a
// loading flag raised while a simulated remote call is in flight. All
// mutation goes through the five operations; consumers read via Snapshot.
type SessionService struct {
	store ports.KVStore
	delay time.Duration
	log   zerolog.Logger
	now   func() time.Time

	mu       sync.Mutex
	identity *domain.Identity
	loading  bool
	subs     []func(ports.SessionSnapshot)
}

// NewSessionService builds a session service over the given store. The delay
// models remote-call latency on Login and Signup; pass 0 in tests. The
// session reports loading until Restore resolves.
func NewSessionService(store ports.KVStore, delay time.Duration, log zerolog.Logger) *SessionService {
	return &SessionService{
		store:   store,
		delay:   delay,
		log:     log,
		now:     time.Now,
		loading: true,
	}
}

// Restore adopts a previously persisted identity. Order: current key, then
// legacy key with a one-time migration. A payload that fails to parse is
// treated as no session and the offending key is cleared. Loading is false
// once Restore returns, on every path.
func (s *SessionService) Restore(ctx context.Context) (ports.RestoreOutcome, error) {
	key := SessionKey
	outcome := ports.RestoreCurrent

	raw, ok, err := s.store.Get(ctx, SessionKey)
	if err != nil {
		s.commit(nil, false)
		return ports.RestoreEmpty, err
	}
	if !ok {
		raw, ok, err = s.store.Get(ctx, LegacySessionKey)
		if err != nil {
			s.commit(nil, false)
			return ports.RestoreEmpty, err
		}
		key = LegacySessionKey
		outcome = ports.RestoreMigrated
	}
	if !ok {
		s.commit(nil, false)
		return ports.RestoreEmpty, nil
	}

	var id domain.Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("corrupted session payload, clearing")
		_ = s.store.Delete(ctx, key)
		s.commit(nil, false)
		return ports.RestoreCorrupt, nil
	}

	if outcome == ports.RestoreMigrated {
		if err := s.store.Set(ctx, SessionKey, raw); err != nil {
			s.commit(nil, false)
			return outcome, err
		}
		_ = s.store.Delete(ctx, LegacySessionKey)
		s.log.Info().Msg("session migrated from legacy storage key")
	}

	s.commit(&id, false)
	return outcome, nil
}

// Login establishes a session for email after the simulated latency. The
// role is the override when given, otherwise inferred from the email content.
// Credentials are never verified here; failure arises only from invalid
// input, a concurrent operation, cancellation, or storage errors, and the
// previous identity stays intact on every failure path.
func (s *SessionService) Login(ctx context.Context, email, password string, roleOverride domain.Role) (*domain.Identity, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	if roleOverride != "" && !roleOverride.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if err := s.begin(); err != nil {
		return nil, err
	}

	if err := s.wait(ctx); err != nil {
		s.settle()
		return nil, err
	}

	role := roleOverride
	if role == "" {
		role = domain.RoleTourist
		if strings.Contains(email, "organizer") {
			role = domain.RoleOrganizer
		}
	}

	id := &domain.Identity{
		ID:     placeholderID,
		Name:   placeholderName,
		Email:  email,
		Phone:  placeholderPhone,
		Role:   role,
		Avatar: avatarBase + email,
	}

	if err := s.persist(ctx, id); err != nil {
		s.settle()
		return nil, err
	}

	s.commit(id, false)
	s.log.Info().Str("email", email).Str("role", string(role)).Msg("session established")
	return id, nil
}

// Signup creates a fresh identity from the supplied fields. The identifier
// is derived from the current clock, which distinguishes accounts created in
// sequence on a single device.
func (s *SessionService) Signup(ctx context.Context, in ports.SignupInput) (*domain.Identity, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if err := s.begin(); err != nil {
		return nil, err
	}

	if err := s.wait(ctx); err != nil {
		s.settle()
		return nil, err
	}

	id := &domain.Identity{
		ID:     strconv.FormatInt(s.now().UnixMilli(), 10),
		Name:   in.Name,
		Email:  in.Email,
		Phone:  in.Phone,
		Role:   in.Role,
		Avatar: avatarBase + in.Email,
	}

	if err := s.persist(ctx, id); err != nil {
		s.settle()
		return nil, err
	}

	s.commit(id, false)
	s.log.Info().Str("email", in.Email).Str("role", string(in.Role)).Msg("account created")
	return id, nil
}

// Logout clears the current identity and removes the persisted copy.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, SessionKey); err != nil {
		return err
	}
	s.commit(nil, false)
	s.log.Info().Msg("session cleared")
	return nil
}

// UpdateIdentity shallow-merges the patch into the current identity and
// persists the result. Without a current identity it is a no-op.
func (s *SessionService) UpdateIdentity(ctx context.Context, patch domain.IdentityPatch) (*domain.Identity, error) {
	s.mu.Lock()
	cur := s.identity
	s.mu.Unlock()
	if cur == nil {
		return nil, nil
	}

	updated := patch.Apply(*cur)
	if err := s.persist(ctx, &updated); err != nil {
		return nil, err
	}

	s.commit(&updated, false)
	return &updated, nil
}

// Snapshot returns an immutable view of the session.
func (s *SessionService) Snapshot() ports.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to observe every session state change. Callbacks run
// synchronously on the mutating goroutine, outside the internal lock.
func (s *SessionService) Subscribe(fn func(ports.SessionSnapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// begin raises the loading flag, failing if an operation is already in
// flight. A single logical session exists per instance.
func (s *SessionService) begin() error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return domain.ErrSessionBusy
	}
	s.loading = true
	snap, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, snap)
	return nil
}

// settle lowers the loading flag leaving the previous identity authoritative.
func (s *SessionService) settle() {
	s.mu.Lock()
	s.loading = false
	snap, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

// commit adopts the identity and loading state, then notifies subscribers.
func (s *SessionService) commit(id *domain.Identity, loading bool) {
	s.mu.Lock()
	s.identity = id
	s.loading = loading
	snap, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

// wait sleeps for the configured latency, honouring cancellation.
func (s *SessionService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *SessionService) persist(ctx context.Context, id *domain.Identity) error {
	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, SessionKey, string(raw))
}

func (s *SessionService) snapshotLocked() ports.SessionSnapshot {
	snap := ports.SessionSnapshot{Loading: s.loading}
	if s.identity != nil {
		id := *s.identity
		snap.Identity = &id
	}
	return snap
}

func (s *SessionService) subscribersLocked() []func(ports.SessionSnapshot) {
	subs := make([]func(ports.SessionSnapshot), len(s.subs))
	copy(subs, s.subs)
	return subs
}

func notify(subs []func(ports.SessionSnapshot), snap ports.SessionSnapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
