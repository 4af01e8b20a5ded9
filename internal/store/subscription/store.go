package subscription

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"lobitos-storefront/internal/domain"
	"lobitos-storefront/internal/storage"
)

const storageKey = "Lobitos Ponchos_subscriptions"

// Store is the persisted newsletter subscription book. Emails are unique;
// adding a duplicate is a hard failure surfaced to the caller.
type Store struct {
	kv     storage.KV
	logger *log.Logger

	mu    sync.Mutex
	newID func() string
	now   func() time.Time
}

func New(kv storage.KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{kv: kv, logger: logger, newID: uuid.NewString, now: time.Now}
}

// List returns all subscriptions.
func (s *Store) List() ([]domain.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add records a new subscriber. Returns domain.ErrAlreadyExists when the
// email is already subscribed.
func (s *Store) Add(email string) (*domain.Subscription, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.New("email required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subs, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, sub := range subs {
		if sub.Email == email {
			return nil, domain.ErrAlreadyExists
		}
	}

	created := domain.Subscription{
		ID:        s.newID(),
		Email:     email,
		CreatedAt: s.now().UTC(),
	}
	subs = append(subs, created)

	raw, err := json.Marshal(subs)
	if err != nil {
		return nil, err
	}
	if err := s.kv.Put(storageKey, raw); err != nil {
		return nil, err
	}

	s.logger.Printf("subscription: added id=%s total=%d", created.ID, len(subs))
	return &created, nil
}

func (s *Store) load() ([]domain.Subscription, error) {
	raw, err := s.kv.Get(storageKey)
	if errors.Is(err, domain.ErrNotFound) {
		return []domain.Subscription{}, nil
	}
	if err != nil {
		return nil, err
	}

	var subs []domain.Subscription
	if err := json.Unmarshal(raw, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
