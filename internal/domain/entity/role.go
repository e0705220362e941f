// Package entity holds the records the contacts service works with: users,
// their contacts and the claims carried in signed tokens.
package entity

// Role is stored on the user record and checked by the role gate.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}
