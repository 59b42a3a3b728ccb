package domain

import "time"

// Role enumerates account roles.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
	RoleCustomer Role = "CUSTOMER"
)

// IsStaff reports whether the role may work tickets.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// KnownRole reports whether the value is a member of the role enum.
func KnownRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleCustomer:
		return true
	}
	return false
}

// User is the domain model for every account: requesters and staff alike.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Company      string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
