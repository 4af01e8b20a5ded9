package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lobitos-storefront/internal/domain"
)

func TestListProducts_Limit(t *testing.T) {
	deps := testDeps()
	deps.Catalog = catalogWith(
		domain.Product{ID: "p-1", Name: "One"},
		domain.Product{ID: "p-2", Name: "Two"},
		domain.Product{ID: "p-3", Name: "Three"},
		domain.Product{ID: "p-4", Name: "Four"},
	)
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/api/products?limit=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"p-3"`) || strings.Contains(body, `"p-4"`) {
		t.Fatalf("expected first three products only, got %s", body)
	}
}

func TestCreateProduct_RejectsMissingFields(t *testing.T) {
	deps := testDeps()
	deps.Session = &stubSession{current: &domain.User{ID: "admin-1", Email: "a@b.com", Role: domain.RoleAdmin}}
	router := testRouter(t, deps)

	body := `{"price":10,"images":["/a.jpg"],"category":"poncho"}` // no name
	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCreateProduct_Created(t *testing.T) {
	deps := testDeps()
	cat := &stubCatalog{}
	deps.Catalog = cat
	deps.Session = &stubSession{current: &domain.User{ID: "admin-1", Email: "a@b.com", Role: domain.RoleAdmin}}
	router := testRouter(t, deps)

	body := `{"name":"Nuevo","price":150,"images":["/fotos/n1.jpg"],"category":"poncho","description":{"en":"New","es":"Nuevo"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if len(cat.added) != 1 || cat.added[0].Description.ES != "Nuevo" {
		t.Fatalf("unexpected catalog input %+v", cat.added)
	}
}

func TestLogin_ReturnsUser(t *testing.T) {
	router := testRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodPost, "/api/session", strings.NewReader(`{"email":"x@y.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"x@y.com"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestCurrentUser_NoSession(t *testing.T) {
	router := testRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestLogout_NoContent(t *testing.T) {
	deps := testDeps()
	sess := &stubSession{current: &domain.User{ID: "u-1", Email: "x@y.com", Role: domain.RoleCustomer}}
	deps.Session = sess
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodDelete, "/api/session", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if sess.current != nil {
		t.Fatalf("expected cleared session")
	}
}

func TestSetLanguage_Roundtrip(t *testing.T) {
	deps := testDeps()
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPut, "/api/language", strings.NewReader(`{"language":"es"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"language":"es"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestSubscribe_NotifiesOnSuccess(t *testing.T) {
	deps := testDeps()
	notifier := &stubNotifier{}
	deps.Notifier = notifier
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/api/subscriptions", strings.NewReader(`{"email":"reader@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if len(notifier.notified) != 1 || notifier.notified[0] != "reader@example.com" {
		t.Fatalf("expected notifier call, got %v", notifier.notified)
	}
}

func TestSubscribe_DuplicateConflict(t *testing.T) {
	deps := testDeps()
	notifier := &stubNotifier{}
	deps.Notifier = notifier
	deps.Subs = &stubSubs{addErr: domain.ErrAlreadyExists}
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/api/subscriptions", strings.NewReader(`{"email":"reader@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if len(notifier.notified) != 0 {
		t.Fatalf("duplicate must not notify, got %v", notifier.notified)
	}
}
