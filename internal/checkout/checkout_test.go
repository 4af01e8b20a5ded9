package checkout

import (
	"strings"
	"testing"

	"lobitos-storefront/internal/domain"
)

func TestBuild_FormatsOrderMessage(t *testing.T) {
	items := []domain.CartItem{
		{Product: domain.Product{ID: "p-1", Name: "Modelo: Lila Reyna", Price: 129}, Quantity: 2},
		{Product: domain.Product{ID: "p-2", Name: "Modelo: Dolce Vita", Price: 129}, Quantity: 1},
	}

	order := Build(items, 387, "")

	want := "Hola Lobitos Ponchos, deseo pedir:\n\n" +
		"Modelo: Lila Reyna (x2) - $258\n" +
		"Modelo: Dolce Vita (x1) - $129\n\n" +
		"Total: $387"
	if order.Message != want {
		t.Fatalf("unexpected message:\n%q\nwant:\n%q", order.Message, want)
	}
}

func TestBuild_EncodesLink(t *testing.T) {
	items := []domain.CartItem{
		{Product: domain.Product{ID: "p-1", Name: "Poncho & Co", Price: 10}, Quantity: 1},
	}

	order := Build(items, 10, "51999000111")

	if !strings.HasPrefix(order.URL, "https://wa.me/51999000111?text=") {
		t.Fatalf("unexpected link prefix: %s", order.URL)
	}
	if strings.Contains(order.URL, "+") {
		t.Fatalf("spaces must encode as %%20, got %s", order.URL)
	}
	if !strings.Contains(order.URL, "%20") || !strings.Contains(order.URL, "%26") {
		t.Fatalf("expected percent-encoded message, got %s", order.URL)
	}
}

func TestBuild_FractionalAmounts(t *testing.T) {
	items := []domain.CartItem{
		{Product: domain.Product{ID: "p-1", Name: "Sample", Price: 129.5}, Quantity: 1},
	}

	order := Build(items, 129.5, "")
	if !strings.Contains(order.Message, "$129.5") {
		t.Fatalf("expected trailing-zero-free amount, got %q", order.Message)
	}
}

func TestBuild_DefaultsPhone(t *testing.T) {
	order := Build([]domain.CartItem{{Product: domain.Product{Name: "X", Price: 1}, Quantity: 1}}, 1, "")
	if !strings.HasPrefix(order.URL, "https://wa.me/"+DefaultPhone+"?text=") {
		t.Fatalf("expected default phone in link, got %s", order.URL)
	}
}
