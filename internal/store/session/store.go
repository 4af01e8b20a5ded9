package session

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"
	"sync"

	"lobitos-storefront/internal/domain"
	"lobitos-storefront/internal/storage"
)

const storageKey = "Lobitos Ponchos_user_session"

// Store holds the single current session, persisted on login and removed on
// logout.
type Store struct {
	kv     storage.KV
	auth   Authenticator
	logger *log.Logger

	mu      sync.Mutex
	current *domain.User
}

// New builds a Store. A nil authenticator falls back to the storefront's
// mock policy.
func New(kv storage.KV, auth Authenticator, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if auth == nil {
		auth = NewMockAuthenticator()
	}
	s := &Store{kv: kv, auth: auth, logger: logger}
	s.hydrate()
	return s
}

// Login resolves the email to a user, makes it current and persists it.
func (s *Store) Login(email string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.New("email required")
	}

	user, err := s.auth.Authenticate(email)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	if err := s.kv.Put(storageKey, raw); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	s.logger.Printf("session: login id=%s role=%s", user.ID, user.Role)
	clone := *user
	return &clone, nil
}

// Logout clears the current session and its persisted record.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.kv.Delete(storageKey); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	s.logger.Printf("session: logout")
	return nil
}

// Current returns the signed-in user, or nil.
func (s *Store) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	clone := *s.current
	return &clone
}

// IsAdmin reports whether the current session holds the admin role.
func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil && s.current.Role == domain.RoleAdmin
}

// hydrate restores the persisted session. Malformed records are treated as
// absent rather than trusted.
func (s *Store) hydrate() {
	raw, err := s.kv.Get(storageKey)
	if errors.Is(err, domain.ErrNotFound) {
		return
	}
	if err != nil {
		s.logger.Printf("session: hydrate read failed: %v", err)
		return
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil || !user.Valid() {
		s.logger.Printf("session: ignoring malformed persisted session")
		return
	}
	s.current = &user
}
