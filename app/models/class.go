package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClassFees is the per-class fee schedule. All amounts are non-negative
// rupee values.
type ClassFees struct {
	Registration decimal.Decimal `json:"registration"`
	Monthly      decimal.Decimal `json:"monthly"`
	Exam         decimal.Decimal `json:"exam"`
	Sports       decimal.Decimal `json:"sports"`
	Music        decimal.Decimal `json:"music"`
	Medical      decimal.Decimal `json:"medical"`
	Tuition      decimal.Decimal `json:"tuition"`
	Stationery   decimal.Decimal `json:"stationery"`
	TieBelt      decimal.Decimal `json:"tie_belt"`
}

// Amount returns the scheduled amount for a fee category. PreviousDues has
// no scheduled amount; it is derived by the ledger.
func (f ClassFees) Amount(category FeeCategory) decimal.Decimal {
	switch category {
	case FeeRegistration:
		return f.Registration
	case FeeMonthly:
		return f.Monthly
	case FeeExam:
		return f.Exam
	case FeeSports:
		return f.Sports
	case FeeMusic:
		return f.Music
	case FeeMedical:
		return f.Medical
	case FeeTuition:
		return f.Tuition
	case FeeStationery:
		return f.Stationery
	case FeeTieBelt:
		return f.TieBelt
	}
	return decimal.Zero
}

// Class represents a school class (grade + section) and its fee schedule.
type Class struct {
	ID           string     `json:"id" validate:"omitempty,uuid"`
	Name         string     `json:"name" validate:"required"`
	Section      string     `json:"section"`
	Fees         ClassFees  `json:"fees"`
	StudentCount int        `json:"student_count,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// DisplayName renders the class as shown on the dashboard, e.g. "Five - A".
func (c *Class) DisplayName() string {
	if c == nil {
		return "N/A"
	}
	if c.Section == "" {
		return c.Name
	}
	return c.Name + " - " + c.Section
}
