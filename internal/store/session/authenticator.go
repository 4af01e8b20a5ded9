package session

import (
	"github.com/google/uuid"

	"lobitos-storefront/internal/domain"
)

// AdminEmail is the one reserved address granted the admin role.
const AdminEmail = "admin@Lobitos Ponchos.com"

// Authenticator resolves a credential to a user. The storefront ships a mock
// policy that never rejects; a real credential check slots in behind this
// interface without touching callers.
type Authenticator interface {
	Authenticate(email string) (*domain.User, error)
}

type mockAuthenticator struct {
	newID func() string
}

// NewMockAuthenticator returns the demo policy: the reserved admin address
// maps to a fixed admin user, every other email becomes a fresh customer.
func NewMockAuthenticator() Authenticator {
	return &mockAuthenticator{newID: uuid.NewString}
}

func (a *mockAuthenticator) Authenticate(email string) (*domain.User, error) {
	if email == AdminEmail {
		return &domain.User{
			ID:    "admin-1",
			Email: email,
			Role:  domain.RoleAdmin,
			Name:  "Admin User",
		}, nil
	}
	return &domain.User{
		ID:    "user-" + a.newID(),
		Email: email,
		Role:  domain.RoleCustomer,
	}, nil
}
