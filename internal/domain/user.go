package domain

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User is the single current session identity. There is no credential
// material here; login is an identification convenience, not a security
// boundary.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Name  string `json:"name,omitempty"`
}

// Valid reports whether a hydrated user record is well-formed enough to use.
func (u User) Valid() bool {
	if u.ID == "" || u.Email == "" {
		return false
	}
	return u.Role == RoleAdmin || u.Role == RoleCustomer
}
