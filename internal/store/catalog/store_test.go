package catalog

import (
	"encoding/json"
	"errors"
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

func TestProducts_SeedsOnFirstUse(t *testing.T) {
	kv := newMemKV()
	store := New(kv, nil)

	products, err := store.Products()
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 6 {
		t.Fatalf("expected 6 seeded products, got %d", len(products))
	}

	seen := make(map[string]bool)
	for _, p := range products {
		if seen[p.ID] {
			t.Fatalf("duplicate seeded id %s", p.ID)
		}
		seen[p.ID] = true
		if len(p.Images) < 1 {
			t.Fatalf("product %s has no images", p.ID)
		}
	}

	if products[0].Category != domain.CategoryPoncho || products[3].Category != domain.CategoryPonchos {
		t.Fatalf("unexpected seed categories: %s / %s", products[0].Category, products[3].Category)
	}

	if _, ok := kv.data[storageKey]; !ok {
		t.Fatalf("seed was not persisted")
	}
}

func TestProducts_ReturnsPersistedState(t *testing.T) {
	kv := newMemKV()
	raw, _ := json.Marshal([]domain.Product{{ID: "p-1", Name: "One", Price: 10, Images: []string{"/a.jpg"}}})
	kv.data[storageKey] = raw

	products, err := New(kv, nil).Products()
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p-1" {
		t.Fatalf("unexpected catalog %+v", products)
	}
}

func TestAdd_GeneratesIDAndPersists(t *testing.T) {
	kv := newMemKV()
	store := New(kv, nil)
	store.newID = func() string { return "fresh-id" }

	created, err := store.Add(Input{
		Name:     "Custom Poncho",
		Price:    199,
		Images:   []string{"/fotos/custom.jpg"},
		Category: domain.CategoryOther,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if created.ID != "fresh-id" {
		t.Fatalf("expected generated id, got %q", created.ID)
	}

	products, err := store.Products()
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 7 || products[6].Name != "Custom Poncho" {
		t.Fatalf("expected appended product, got %d entries", len(products))
	}
}

func TestDelete_RemovesAndIgnoresAbsent(t *testing.T) {
	store := New(newMemKV(), nil)

	if err := store.Delete("model-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get("model-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Absent id is a no-op, not an error.
	if err := store.Delete("no-such-id"); err != nil {
		t.Fatalf("Delete absent: %v", err)
	}

	products, err := store.Products()
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 5 {
		t.Fatalf("expected 5 products, got %d", len(products))
	}
}

func TestGet_ReturnsMatch(t *testing.T) {
	store := New(newMemKV(), nil)

	p, err := store.Get("model-2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Name != "Modelo: Lila Reyna" {
		t.Fatalf("unexpected product %+v", p)
	}
}
