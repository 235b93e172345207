package models

// FeeCategory defines the closed set of charge categories a class fee
// schedule can bill. PreviousDues is only ever produced by the ledger when
// carrying forward an unpaid balance.
type FeeCategory string

const (
	FeeRegistration FeeCategory = "registration"
	FeeMonthly      FeeCategory = "monthly"
	FeeExam         FeeCategory = "exam"
	FeeSports       FeeCategory = "sports"
	FeeMusic        FeeCategory = "music"
	FeeMedical      FeeCategory = "medical"
	FeeTuition      FeeCategory = "tuition"
	FeeStationery   FeeCategory = "stationery"
	FeeTieBelt      FeeCategory = "tie_belt"
	FeePreviousDues FeeCategory = "previous_dues"
)

// IsValid reports whether the category is one of the known fee categories.
func (f FeeCategory) IsValid() bool {
	switch f {
	case FeeRegistration, FeeMonthly, FeeExam, FeeSports, FeeMusic,
		FeeMedical, FeeTuition, FeeStationery, FeeTieBelt, FeePreviousDues:
		return true
	}
	return false
}

// FeeStatus classifies an invoice (or a student's overall position) by its
// billed vs. paid amounts.
type FeeStatus string

const (
	StatusPaid     FeeStatus = "Paid"
	StatusPartial  FeeStatus = "Partial"
	StatusUnpaid   FeeStatus = "Unpaid"
	StatusOverpaid FeeStatus = "Overpaid"
)

// UserRole defines the dashboard access levels.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleAccountant UserRole = "accountant"
	RoleExam       UserRole = "exam"
)
