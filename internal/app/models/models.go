package models

// Role defines the user role type
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// LookupVia tags which strategy resolved a student during a dual
// id-or-roll-number lookup.
type LookupVia int

const (
	LookupNone LookupVia = iota
	LookupByID
	LookupByRoll
)
