package cart

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"sync"

	"lobitos-storefront/internal/domain"
	"lobitos-storefront/internal/storage"
)

const storageKey = "Lobitos Ponchos_cart"

// Store holds the current session's cart. State lives in memory and is
// rewritten to storage as a whole on every mutation.
type Store struct {
	kv     storage.KV
	logger *log.Logger

	mu    sync.Mutex
	items []domain.CartItem
}

func New(kv storage.KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Store{kv: kv, logger: logger, items: []domain.CartItem{}}
	s.hydrate()
	return s
}

// Items returns the cart contents in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Add merges the product into the cart: an existing line gains quantity 1,
// otherwise a new line with quantity 1 is appended.
func (s *Store) Add(p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			return s.persist()
		}
	}
	s.items = append(s.items, domain.CartItem{Product: p, Quantity: 1})
	return s.persist()
}

// Remove deletes the line with the given product id; absent ids are a no-op.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
	return s.persist()
}

// UpdateQuantity sets the line's quantity. Anything below 1 removes the line.
func (s *Store) UpdateQuantity(id string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		s.removeLocked(id)
		return s.persist()
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			break
		}
	}
	return s.persist()
}

// Clear empties the cart.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []domain.CartItem{}
	return s.persist()
}

// Total is the sum of price*quantity over the cart, recomputed on each call.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.LineTotal()
	}
	return total
}

func (s *Store) removeLocked(id string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

func (s *Store) persist() error {
	raw, err := json.Marshal(s.items)
	if err != nil {
		return err
	}
	return s.kv.Put(storageKey, raw)
}

// hydrate loads persisted cart state, migrating legacy single-image records
// and dropping anything unrecognizable. A blob that fails to parse at all
// discards the whole persisted cart rather than applying it partially.
func (s *Store) hydrate() {
	raw, err := s.kv.Get(storageKey)
	if errors.Is(err, domain.ErrNotFound) {
		return
	}
	if err != nil {
		s.logger.Printf("cart: hydrate read failed: %v", err)
		return
	}

	var stored []json.RawMessage
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.logger.Printf("cart: discarding unparseable state: %v", err)
		if err := s.kv.Delete(storageKey); err != nil {
			s.logger.Printf("cart: reset failed: %v", err)
		}
		return
	}

	items := make([]domain.CartItem, 0, len(stored))
	dropped := 0
	for _, rec := range stored {
		item, ok := decodeRecord(rec)
		if !ok {
			dropped++
			continue
		}
		items = append(items, item)
	}
	s.items = items

	if dropped > 0 {
		s.logger.Printf("cart: dropped %d invalid records on hydration", dropped)
	}
	// Rewrite so migrated and dropped records never resurface.
	if err := s.persist(); err != nil {
		s.logger.Printf("cart: persist after hydration failed: %v", err)
	}
}
