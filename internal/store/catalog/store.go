package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"

	"lobitos-storefront/internal/domain"
	"lobitos-storefront/internal/storage"
)

const storageKey = "Lobitos Ponchos_products_v9"

// Input carries the fields of a product to create; the id is generated by
// the store. Presence validation is the caller's job.
type Input struct {
	Name        string                `json:"name"`
	Description domain.Localized      `json:"description"`
	Price       float64               `json:"price"`
	Images      []string              `json:"images"`
	Category    domain.Category       `json:"category"`
	Details     *domain.LocalizedList `json:"details,omitempty"`
	Measures    map[string]string     `json:"measures,omitempty"`
}

// Store is the persisted product catalog. The first read seeds the built-in
// sample set; every mutation rewrites the whole blob.
type Store struct {
	kv     storage.KV
	logger *log.Logger

	mu    sync.Mutex
	newID func() string
}

func New(kv storage.KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{kv: kv, logger: logger, newID: uuid.NewString}
}

// Products returns the persisted catalog, seeding it on first use.
func (s *Store) Products() ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get returns the product with the given id or domain.ErrNotFound.
func (s *Store) Get(id string) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Add appends a new product with a fresh id and persists the catalog.
func (s *Store) Add(in Input) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return nil, err
	}

	p := domain.Product{
		ID:          s.newID(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Images:      in.Images,
		Category:    in.Category,
		Details:     in.Details,
		Measures:    in.Measures,
	}
	products = append(products, p)
	if err := s.persist(products); err != nil {
		return nil, err
	}
	s.logger.Printf("catalog: added product id=%s name=%q", p.ID, p.Name)
	return &p, nil
}

// Delete removes the product with the given id; absent ids are a no-op.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := s.persist(kept); err != nil {
		return err
	}
	s.logger.Printf("catalog: deleted product id=%s remaining=%d", id, len(kept))
	return nil
}

// load reads the persisted catalog, writing the seed set when none exists.
// Callers must hold s.mu.
func (s *Store) load() ([]domain.Product, error) {
	raw, err := s.kv.Get(storageKey)
	if errors.Is(err, domain.ErrNotFound) {
		seeded := defaultProducts()
		if err := s.persist(seeded); err != nil {
			return nil, err
		}
		s.logger.Printf("catalog: seeded %d products", len(seeded))
		return seeded, nil
	}
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return products, nil
}

func (s *Store) persist(products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return s.kv.Put(storageKey, raw)
}
