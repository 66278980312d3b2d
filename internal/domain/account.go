package domain

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// only two roles exist, anything else is a client bug
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStudent
}

type Account struct {
	Id       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    Email     `json:"email"`
	PassHash string    `json:"-"`
	Role     Role      `json:"role"`
}

func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
