package httpserver

import (
	"lobitos-storefront/internal/domain"
	"lobitos-storefront/internal/store/catalog"
	"lobitos-storefront/internal/store/i18n"
)

// CatalogStore is the product catalog surface the handlers need.
type CatalogStore interface {
	Products() ([]domain.Product, error)
	Get(id string) (*domain.Product, error)
	Add(in catalog.Input) (*domain.Product, error)
	Delete(id string) error
}

// CartStore is the cart surface the handlers need.
type CartStore interface {
	Items() []domain.CartItem
	Add(p domain.Product) error
	Remove(id string) error
	UpdateQuantity(id string, quantity int) error
	Clear() error
	Total() float64
}

// SessionStore is the session surface the handlers need.
type SessionStore interface {
	Login(email string) (*domain.User, error)
	Logout() error
	Current() *domain.User
	IsAdmin() bool
}

// I18nStore is the translation surface the handlers need.
type I18nStore interface {
	Language() i18n.Language
	SetLanguage(lang i18n.Language) error
	Tree() map[string]interface{}
}

// SubscriptionStore is the subscription book surface the handlers need.
type SubscriptionStore interface {
	Add(email string) (*domain.Subscription, error)
	List() ([]domain.Subscription, error)
}

// SubscriberNotifier forwards new subscribers to the external form endpoint.
type SubscriberNotifier interface {
	Notify(email string)
}

// Deps carries the stores the router wires into handlers.
type Deps struct {
	Catalog  CatalogStore
	Cart     CartStore
	Session  SessionStore
	I18n     I18nStore
	Subs     SubscriptionStore
	Notifier SubscriberNotifier

	// WhatsAppPhone receives the checkout hand-off message.
	WhatsAppPhone string
}
