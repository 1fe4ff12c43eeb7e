package model

import (
	"github.com/google/uuid"
)

type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAdmin  Role = "ADMIN"
	RoleStaff  Role = "STAFF"
)

// User represents a salon client or back-office member. Credits maps a
// service ID to the number of redeemable sessions the user still holds;
// keys only appear once a balance was ever non-zero.
type User struct {
	Base
	Name         string                `json:"name"`
	Email        string                `json:"email"`
	Phone        string                `json:"phone"`
	CPF          string                `json:"cpf"`
	Role         Role                  `json:"role"`
	Credits      map[uuid.UUID]int     `json:"credits,omitempty"`
	PasswordHash string                `json:"-"`
}

// Clone returns a deep copy so callers never alias the stored record.
func (u *User) Clone() *User {
	cp := *u
	if u.Credits != nil {
		cp.Credits = make(map[uuid.UUID]int, len(u.Credits))
		for k, v := range u.Credits {
			cp.Credits[k] = v
		}
	}
	return &cp
}

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	CPF   string `json:"cpf"`
	Role  Role   `json:"role" binding:"omitempty,oneof=CLIENT ADMIN STAFF"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
	CPF   *string `json:"cpf"`
	Role  *Role   `json:"role" binding:"omitempty,oneof=CLIENT ADMIN STAFF"`
}
