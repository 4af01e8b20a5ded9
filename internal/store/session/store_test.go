package session

import (
	"testing"

	"lobitos-storefront/internal/domain"
)

// memKV is a lightweight in-memory blob store for tests.
type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *memKV) Put(key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func TestLogin_AdminEmailGetsAdminRole(t *testing.T) {
	store := New(newMemKV(), nil, nil)

	user, err := store.Login(AdminEmail)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Role != domain.RoleAdmin || user.ID != "admin-1" || user.Name != "Admin User" {
		t.Fatalf("unexpected admin user %+v", user)
	}
	if !store.IsAdmin() {
		t.Fatalf("expected IsAdmin after admin login")
	}
}

func TestLogin_OtherEmailsGetFreshCustomers(t *testing.T) {
	store := New(newMemKV(), nil, nil)

	first, err := store.Login("x@y.com")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	second, err := store.Login("x@y.com")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if first.Role != domain.RoleCustomer || second.Role != domain.RoleCustomer {
		t.Fatalf("expected customer role, got %s / %s", first.Role, second.Role)
	}
	if first.ID == second.ID {
		t.Fatalf("expected fresh id per login, both were %s", first.ID)
	}
	if store.IsAdmin() {
		t.Fatalf("customer session must not be admin")
	}
}

func TestLogin_EmptyEmailRejected(t *testing.T) {
	store := New(newMemKV(), nil, nil)
	if _, err := store.Login("  "); err == nil {
		t.Fatalf("expected error for blank email")
	}
}

func TestSession_PersistsAcrossStores(t *testing.T) {
	kv := newMemKV()

	if _, err := New(kv, nil, nil).Login("shopper@example.com"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// A new store over the same storage hydrates the session.
	restored := New(kv, nil, nil)
	current := restored.Current()
	if current == nil || current.Email != "shopper@example.com" {
		t.Fatalf("expected hydrated session, got %+v", current)
	}
}

func TestLogout_ClearsSessionAndRecord(t *testing.T) {
	kv := newMemKV()
	store := New(kv, nil, nil)

	if _, err := store.Login("shopper@example.com"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := store.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if store.Current() != nil {
		t.Fatalf("expected no current user after logout")
	}
	if _, ok := kv.data[storageKey]; ok {
		t.Fatalf("expected persisted session removed")
	}

	// Logout with no session is a no-op.
	if err := store.Logout(); err != nil {
		t.Fatalf("Logout again: %v", err)
	}
}

func TestHydrate_IgnoresMalformedRecord(t *testing.T) {
	kv := newMemKV()
	kv.data[storageKey] = []byte(`{"id":"u-1","email":"a@b.com","role":"superuser"}`)

	store := New(kv, nil, nil)
	if store.Current() != nil {
		t.Fatalf("expected malformed session treated as absent")
	}
}
