package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one charge component of an invoice.
type LineItem struct {
	FeeType FeeCategory     `json:"fee_type" validate:"required"`
	Amount  decimal.Decimal `json:"amount"`
}

// Payment is a single payment recorded against an invoice. Payments are
// append-only; there is no edit or delete path.
type Payment struct {
	ID        string          `json:"id"`
	StudentID string          `json:"student_id"`
	InvoiceID string          `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
}

// Invoice is a per-student, per-billing-period bill. TotalBilled, TotalPaid
// and Balance are derived from the line items and payments; the database
// layer recomputes them from the payments table on every append so they are
// never written from stale in-memory values.
type Invoice struct {
	ID          string          `json:"id"`
	StudentID   string          `json:"student_id"`
	ClassID     string          `json:"class_id"`
	Month       string          `json:"month"`
	Year        int             `json:"year"`
	LineItems   []LineItem      `json:"line_items"`
	TotalBilled decimal.Decimal `json:"total_billed"`
	Payments    []Payment       `json:"payments"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
}

// StudentFeeSummary aggregates a student's invoices for the profile page.
// Derived on read, never persisted.
type StudentFeeSummary struct {
	Student          *Student        `json:"student"`
	Class            *Class          `json:"class"`
	LatestInvoice    *Invoice        `json:"latest_invoice"`
	TotalPaidOverall decimal.Decimal `json:"total_paid_overall"`
	OverallBalance   decimal.Decimal `json:"overall_balance"`
	Status           FeeStatus       `json:"status"`
}

// StudentBill is the printable bill payload: one invoice joined with the
// school letterhead details, the previous dues broken out separately.
type StudentBill struct {
	School       *SchoolSettings `json:"school"`
	Student      *Student        `json:"student"`
	Class        *Class          `json:"class"`
	Invoice      *Invoice        `json:"invoice"`
	PreviousDues decimal.Decimal `json:"previous_dues"`
}

// ClassMonthlySummary reports a class's billed vs. collected totals for one
// billing period.
type ClassMonthlySummary struct {
	ClassID        string          `json:"class_id"`
	Month          string          `json:"month"`
	Year           int             `json:"year"`
	TotalBilled    decimal.Decimal `json:"total_billed"`
	TotalCollected decimal.Decimal `json:"total_collected"`
	TotalDues      decimal.Decimal `json:"total_dues"`
}
