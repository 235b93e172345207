package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Student represents an enrolled student. SID is the human-readable student
// id printed on bills; ID is the database key. OpeningBalance is debt
// carried from before the student's first invoice in the system.
type Student struct {
	ID             string          `json:"id" validate:"omitempty,uuid"`
	SID            string          `json:"sid" validate:"required"`
	Name           string          `json:"name" validate:"required"`
	RollNumber     *int            `json:"roll_number,omitempty"`
	ClassID        string          `json:"class_id" validate:"required,uuid"`
	Address        *string         `json:"address,omitempty"`
	ProfilePicture *string         `json:"profile_picture,omitempty" validate:"omitempty,url"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	InTuition      bool            `json:"in_tuition"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      *time.Time      `json:"deleted_at,omitempty"`

	// Joined for table display, not persisted on the students row.
	ClassName string `json:"class_name,omitempty"`
}
