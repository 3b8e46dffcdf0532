package domain

import "time"

// Role is static reference data keyed by name. Roles are looked up during
// signup, never created through this API.
type Role struct {
	Name string `json:"name"`
}

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
	RoleProvider = "provider"
)

// User models an account holder. Email and phone number are each unique
// across the store.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CompanyName  string    `json:"company_name,omitempty"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user holds the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// RoleNames returns the names of the user's roles in assignment order.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
