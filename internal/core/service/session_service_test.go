package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

type memStore struct {
	mu     sync.Mutex
	data   map[string]string
	setErr error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func (m *memStore) raw(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key]
}

// newReadySession returns a restored, signed-out session with no delay.
func newReadySession(t *testing.T, store ports.KVStore) *SessionService {
	t.Helper()
	svc := NewSessionService(store, 0, zerolog.Nop())
	if _, err := svc.Restore(context.Background()); err != nil {
		t.Fatalf("restore: %v", err)
	}
	return svc
}

func TestSessionService_Login_RoleInference(t *testing.T) {
	svc := newReadySession(t, newMemStore())

	id, err := svc.Login(context.Background(), "organizer@petra.jo", "pass", "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if id.Role != domain.RoleOrganizer {
		t.Fatalf("expected organizer role, got %s", id.Role)
	}

	id, err = svc.Login(context.Background(), "sara@example.com", "pass", "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if id.Role != domain.RoleTourist {
		t.Fatalf("expected tourist role, got %s", id.Role)
	}

	id, err = svc.Login(context.Background(), "organizer@petra.jo", "pass", domain.RoleTourist)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if id.Role != domain.RoleTourist {
		t.Fatalf("override ignored, got %s", id.Role)
	}
}

func TestSessionService_Login_Validation(t *testing.T) {
	svc := newReadySession(t, newMemStore())

	if _, err := svc.Login(context.Background(), "", "pass", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@b.c", "", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@b.c", "pass", domain.Role("admin")); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestSessionService_Login_PersistsAndAdopts(t *testing.T) {
	store := newMemStore()
	svc := newReadySession(t, store)

	id, err := svc.Login(context.Background(), "sara@example.com", "pass", "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if id.Avatar != avatarBase+"sara@example.com" {
		t.Fatalf("unexpected avatar: %s", id.Avatar)
	}

	snap := svc.Snapshot()
	if snap.Loading {
		t.Fatalf("loading should be false after login")
	}
	if snap.Identity == nil || snap.Identity.Email != "sara@example.com" {
		t.Fatalf("identity not adopted: %+v", snap.Identity)
	}

	var persisted domain.Identity
	if err := json.Unmarshal([]byte(store.raw(SessionKey)), &persisted); err != nil {
		t.Fatalf("persisted payload unreadable: %v", err)
	}
	if persisted != *id {
		t.Fatalf("persisted identity differs: %+v vs %+v", persisted, *id)
	}
}

func TestSessionService_Signup_SurvivesRestart(t *testing.T) {
	store := newMemStore()
	svc := newReadySession(t, store)

	created, err := svc.Signup(context.Background(), ports.SignupInput{
		Name:     "Rania",
		Email:    "rania@example.com",
		Phone:    "+962 7 1234 5678",
		Role:     domain.RoleOrganizer,
		Password: "pass",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	// Simulate a reload: a fresh service over the same store.
	restored := newReadySession(t, store)
	snap := restored.Snapshot()
	if snap.Identity == nil || *snap.Identity != *created {
		t.Fatalf("restored identity differs: %+v vs %+v", snap.Identity, created)
	}
}

func TestSessionService_UpdateIdentity_MergesAndPersists(t *testing.T) {
	store := newMemStore()
	svc := newReadySession(t, store)

	created, err := svc.Signup(context.Background(), ports.SignupInput{
		Name: "Rania", Email: "rania@example.com", Phone: "+962 7 1234 5678",
		Role: domain.RoleTourist, Password: "pass",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	phone := "+962 7 0000 0000"
	updated, err := svc.UpdateIdentity(context.Background(), domain.IdentityPatch{Phone: &phone})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Phone != phone {
		t.Fatalf("phone not updated: %s", updated.Phone)
	}
	if updated.Name != created.Name || updated.Email != created.Email || updated.Role != created.Role || updated.ID != created.ID {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}

	restored := newReadySession(t, store)
	if got := restored.Snapshot().Identity; got == nil || got.Phone != phone {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestSessionService_UpdateIdentity_NoSessionIsNoop(t *testing.T) {
	store := newMemStore()
	svc := newReadySession(t, store)

	name := "someone"
	id, err := svc.UpdateIdentity(context.Background(), domain.IdentityPatch{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if id != nil {
		t.Fatalf("expected no-op, got %+v", id)
	}
	if store.has(SessionKey) {
		t.Fatalf("no-op update must not persist anything")
	}
	if snap := svc.Snapshot(); snap.Identity != nil || snap.Loading {
		t.Fatalf("session changed by no-op update: %+v", snap)
	}
}

func TestSessionService_Logout_ClearsEverything(t *testing.T) {
	store := newMemStore()
	svc := newReadySession(t, store)

	if _, err := svc.Login(context.Background(), "sara@example.com", "pass", ""); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if svc.Snapshot().Identity != nil {
		t.Fatalf("identity not cleared")
	}
	if store.has(SessionKey) {
		t.Fatalf("persisted session not removed")
	}

	restored := newReadySession(t, store)
	if restored.Snapshot().Identity != nil {
		t.Fatalf("restore after logout yielded an identity")
	}
}

func TestSessionService_Restore_MigratesLegacyKey(t *testing.T) {
	store := newMemStore()
	legacy := `{"id":"9","name":"Omar","email":"omar@example.com","phone":"+962 7 5555 5555","userType":"tourist"}`
	store.data[LegacySessionKey] = legacy

	svc := NewSessionService(store, 0, zerolog.Nop())
	outcome, err := svc.Restore(context.Background())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if outcome != ports.RestoreMigrated {
		t.Fatalf("expected migrated outcome, got %s", outcome)
	}
	if store.raw(SessionKey) != legacy {
		t.Fatalf("current key does not hold the migrated value")
	}
	if store.has(LegacySessionKey) {
		t.Fatalf("legacy key not removed")
	}
	if id := svc.Snapshot().Identity; id == nil || id.Name != "Omar" {
		t.Fatalf("migrated identity not adopted: %+v", id)
	}

	// Running restore again with the legacy key absent is safe.
	again := NewSessionService(store, 0, zerolog.Nop())
	if outcome, err = again.Restore(context.Background()); err != nil || outcome != ports.RestoreCurrent {
		t.Fatalf("second restore: outcome=%s err=%v", outcome, err)
	}
}

func TestSessionService_Restore_CorruptPayload(t *testing.T) {
	store := newMemStore()
	store.data[SessionKey] = "{not json"

	svc := NewSessionService(store, 0, zerolog.Nop())
	outcome, err := svc.Restore(context.Background())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if outcome != ports.RestoreCorrupt {
		t.Fatalf("expected corrupt outcome, got %s", outcome)
	}
	if snap := svc.Snapshot(); snap.Identity != nil || snap.Loading {
		t.Fatalf("corrupt payload must resolve to a signed-out session: %+v", snap)
	}
	if store.has(SessionKey) {
		t.Fatalf("offending key not cleared")
	}
}

func TestSessionService_Login_SingleFlight(t *testing.T) {
	store := newMemStore()
	svc := NewSessionService(store, time.Hour, zerolog.Nop())
	if _, err := svc.Restore(context.Background()); err != nil {
		t.Fatalf("restore: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := svc.Login(ctx, "sara@example.com", "pass", "")
		done <- err
	}()

	// Wait for the first login to raise the loading flag.
	deadline := time.Now().Add(2 * time.Second)
	for !svc.Snapshot().Loading {
		if time.Now().After(deadline) {
			t.Fatalf("first login never started loading")
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := svc.Login(context.Background(), "other@example.com", "pass", ""); !errors.Is(err, domain.ErrSessionBusy) {
		t.Fatalf("expected ErrSessionBusy, got %v", err)
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	snap := svc.Snapshot()
	if snap.Loading {
		t.Fatalf("loading flag stuck after cancelled login")
	}
	if snap.Identity != nil {
		t.Fatalf("cancelled login must not adopt an identity")
	}
	if store.has(SessionKey) {
		t.Fatalf("cancelled login must not persist anything")
	}
}

func TestSessionService_SubscribersObserveChanges(t *testing.T) {
	svc := newReadySession(t, newMemStore())

	var snaps []ports.SessionSnapshot
	svc.Subscribe(func(snap ports.SessionSnapshot) {
		snaps = append(snaps, snap)
	})

	if _, err := svc.Login(context.Background(), "sara@example.com", "pass", ""); err != nil {
		t.Fatalf("login: %v", err)
	}

	if len(snaps) < 2 {
		t.Fatalf("expected loading + adopted notifications, got %d", len(snaps))
	}
	if !snaps[0].Loading {
		t.Fatalf("first notification should carry loading=true")
	}
	last := snaps[len(snaps)-1]
	if last.Loading || last.Identity == nil {
		t.Fatalf("final notification should carry the adopted identity: %+v", last)
	}
}

func TestSessionService_Login_StorageFailureKeepsPreviousIdentity(t *testing.T) {
	store := newMemStore()
	svc := newReadySession(t, store)

	first, err := svc.Login(context.Background(), "sara@example.com", "pass", "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	store.setErr = errors.New("disk full")
	if _, err := svc.Login(context.Background(), "other@example.com", "pass", ""); err == nil {
		t.Fatalf("expected storage error")
	}

	snap := svc.Snapshot()
	if snap.Loading {
		t.Fatalf("loading flag stuck after failed login")
	}
	if snap.Identity == nil || snap.Identity.Email != first.Email {
		t.Fatalf("previous identity lost on failure: %+v", snap.Identity)
	}
}
