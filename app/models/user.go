package models

import "time"

// User represents a dashboard user (administrator, accountant or exam clerk).
type User struct {
	ID           string     `json:"id" validate:"omitempty,uuid"`
	Username     string     `json:"username" validate:"required"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role" validate:"required,oneof=admin accountant exam"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}
