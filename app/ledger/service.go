// Package ledger implements the fee ledger core: invoice generation from a
// class fee schedule, append-only payment recording, status classification
// and the derived per-student and per-class summaries.
//
// The ledger never retries and never swallows errors; callers receive a
// NotFoundError, ValidationError or PersistenceError and decide the
// user-facing response.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mepraz/bluebells/app/models"
)

// Service runs the ledger operations over an injected Store.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// GenerateInvoice creates the invoice for (studentID, month, year), billing
// the given fee categories from the student's class fee schedule. The
// monthly fee is always billed; the tuition fee only when the student is
// flagged for tuition; categories with a zero scheduled amount are skipped.
// Any carried-over due (the latest prior invoice's positive balance, or the
// opening balance for a student with no invoices) is appended as a
// previous-dues line item.
//
// One invoice may exist per student per billing period; a duplicate period
// fails with a ValidationError and mutates nothing.
func (s *Service) GenerateInvoice(ctx context.Context, studentID, month string, year int, categories []models.FeeCategory) (*models.Invoice, error) {
	if !models.IsValidMonth(month) {
		return nil, validationErrorf("unknown billing month %q", month)
	}
	if year <= 0 {
		return nil, validationErrorf("invalid billing year %d", year)
	}

	student, err := s.student(ctx, studentID)
	if err != nil {
		return nil, err
	}

	class, err := s.store.FindClass(ctx, student.ClassID)
	if err != nil {
		return nil, &PersistenceError{Op: "FindClass", Err: err}
	}
	if class == nil {
		return nil, &NotFoundError{Resource: "class", ID: student.ClassID}
	}

	existing, err := s.store.FindInvoice(ctx, studentID, month, year)
	if err != nil {
		return nil, &PersistenceError{Op: "FindInvoice", Err: err}
	}
	if existing != nil {
		return nil, validationErrorf("invoice for %s %d already exists for student %s", month, year, student.SID)
	}

	previousDues, err := s.carriedOverDues(ctx, student)
	if err != nil {
		return nil, err
	}

	inv := &models.Invoice{
		ID:        uuid.New().String(),
		StudentID: student.ID,
		ClassID:   class.ID,
		Month:     month,
		Year:      year,
		TotalPaid: decimal.Zero,
		CreatedAt: s.now(),
	}

	for _, category := range billableCategories(categories, student) {
		amount := class.Fees.Amount(category)
		if !amount.IsPositive() {
			continue
		}
		inv.LineItems = append(inv.LineItems, models.LineItem{FeeType: category, Amount: amount})
	}
	if previousDues.IsPositive() {
		inv.LineItems = append(inv.LineItems, models.LineItem{FeeType: models.FeePreviousDues, Amount: previousDues})
	}

	total := decimal.Zero
	for _, item := range inv.LineItems {
		total = total.Add(item.Amount)
	}
	inv.TotalBilled = total
	inv.Balance = total

	if err := s.store.CreateInvoice(ctx, inv); err != nil {
		return nil, &PersistenceError{Op: "CreateInvoice", Err: err}
	}
	return inv, nil
}

// billableCategories normalizes the requested categories: monthly is always
// billed, tuition only for tuition students, previous dues and unknown tags
// are dropped, duplicates collapse. Schedule order is preserved so line
// items print in a stable order.
func billableCategories(requested []models.FeeCategory, student *models.Student) []models.FeeCategory {
	wanted := map[models.FeeCategory]bool{models.FeeMonthly: true}
	if student.InTuition {
		wanted[models.FeeTuition] = true
	}
	for _, c := range requested {
		if !c.IsValid() || c == models.FeePreviousDues {
			continue
		}
		if c == models.FeeTuition && !student.InTuition {
			continue
		}
		wanted[c] = true
	}

	order := []models.FeeCategory{
		models.FeeRegistration, models.FeeMonthly, models.FeeExam,
		models.FeeSports, models.FeeMusic, models.FeeMedical,
		models.FeeTuition, models.FeeStationery, models.FeeTieBelt,
	}
	var out []models.FeeCategory
	for _, c := range order {
		if wanted[c] {
			out = append(out, c)
		}
	}
	return out
}

// carriedOverDues returns the amount to bill as previous dues: the positive
// balance of the student's latest invoice, or the opening balance when the
// student has no invoices yet.
func (s *Service) carriedOverDues(ctx context.Context, student *models.Student) (decimal.Decimal, error) {
	invoices, err := s.store.FindInvoicesForStudent(ctx, student.ID)
	if err != nil {
		return decimal.Zero, &PersistenceError{Op: "FindInvoicesForStudent", Err: err}
	}
	latest := latestInvoice(invoices)
	if latest == nil {
		if student.OpeningBalance.IsPositive() {
			return student.OpeningBalance, nil
		}
		return decimal.Zero, nil
	}
	if latest.Balance.IsPositive() {
		return latest.Balance, nil
	}
	return decimal.Zero, nil
}

// RecordPayment appends a payment to the invoice and returns the invoice
// with its recomputed totals. The amount must be positive; overpayment is
// allowed and simply drives the balance negative. Payments are immutable
// once recorded.
func (s *Service) RecordPayment(ctx context.Context, studentID, invoiceID string, amount decimal.Decimal) (*models.Invoice, error) {
	if !amount.IsPositive() {
		return nil, validationErrorf("payment amount must be positive, got %s", amount.String())
	}

	inv, err := s.store.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, &PersistenceError{Op: "FindInvoiceByID", Err: err}
	}
	if inv == nil || inv.StudentID != studentID {
		return nil, &NotFoundError{Resource: "invoice", ID: invoiceID}
	}

	payment := &models.Payment{
		ID:        uuid.New().String(),
		StudentID: studentID,
		InvoiceID: invoiceID,
		Amount:    amount,
		Date:      s.now(),
	}

	updated, err := s.store.AppendPayment(ctx, invoiceID, payment)
	if err != nil {
		return nil, &PersistenceError{Op: "AppendPayment", Err: err}
	}
	return updated, nil
}

// InvoiceView pairs an invoice with its status classification for display.
type InvoiceView struct {
	Invoice *models.Invoice  `json:"invoice"`
	Status  models.FeeStatus `json:"status"`
}

// InvoiceWithStatus loads one invoice and classifies it.
func (s *Service) InvoiceWithStatus(ctx context.Context, invoiceID string) (*InvoiceView, error) {
	inv, err := s.store.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, &PersistenceError{Op: "FindInvoiceByID", Err: err}
	}
	if inv == nil {
		return nil, &NotFoundError{Resource: "invoice", ID: invoiceID}
	}
	return &InvoiceView{Invoice: inv, Status: InvoiceStatus(inv)}, nil
}

// StudentFeeSummary aggregates a student's invoices into the overall
// paid/balance figures shown on the profile page. A missing class does not
// fail the summary; the class is simply reported as unavailable.
func (s *Service) StudentFeeSummary(ctx context.Context, studentID string) (*models.StudentFeeSummary, error) {
	student, err := s.student(ctx, studentID)
	if err != nil {
		return nil, err
	}

	class, err := s.store.FindClass(ctx, student.ClassID)
	if err != nil {
		class = nil
	}

	invoices, err := s.store.FindInvoicesForStudent(ctx, studentID)
	if err != nil {
		return nil, &PersistenceError{Op: "FindInvoicesForStudent", Err: err}
	}

	totalPaid := decimal.Zero
	for _, inv := range invoices {
		totalPaid = totalPaid.Add(inv.TotalPaid)
	}

	latest := latestInvoice(invoices)
	balance := student.OpeningBalance
	if latest != nil {
		balance = latest.Balance
	}

	return &models.StudentFeeSummary{
		Student:          student,
		Class:            class,
		LatestInvoice:    latest,
		TotalPaidOverall: totalPaid,
		OverallBalance:   balance,
		Status:           StatusFor(balance, totalPaid),
	}, nil
}

// StudentBill assembles the printable bill for one invoice, with the school
// letterhead and the carried-over dues broken out of the line items.
func (s *Service) StudentBill(ctx context.Context, studentID, invoiceID string) (*models.StudentBill, error) {
	student, err := s.student(ctx, studentID)
	if err != nil {
		return nil, err
	}

	inv, err := s.store.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, &PersistenceError{Op: "FindInvoiceByID", Err: err}
	}
	if inv == nil || inv.StudentID != studentID {
		return nil, &NotFoundError{Resource: "invoice", ID: invoiceID}
	}

	class, err := s.store.FindClass(ctx, inv.ClassID)
	if err != nil {
		class = nil
	}

	settings, err := s.store.FindSettings(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "FindSettings", Err: err}
	}

	previousDues := decimal.Zero
	for _, item := range inv.LineItems {
		if item.FeeType == models.FeePreviousDues {
			previousDues = previousDues.Add(item.Amount)
		}
	}

	return &models.StudentBill{
		School:       settings,
		Student:      student,
		Class:        class,
		Invoice:      inv,
		PreviousDues: previousDues,
	}, nil
}

// ClassMonthlySummary totals the billed, collected and outstanding amounts
// over a class's invoices for one billing period.
func (s *Service) ClassMonthlySummary(ctx context.Context, classID, month string, year int) (*models.ClassMonthlySummary, error) {
	if !models.IsValidMonth(month) {
		return nil, validationErrorf("unknown billing month %q", month)
	}

	class, err := s.store.FindClass(ctx, classID)
	if err != nil {
		return nil, &PersistenceError{Op: "FindClass", Err: err}
	}
	if class == nil {
		return nil, &NotFoundError{Resource: "class", ID: classID}
	}

	invoices, err := s.store.FindInvoicesForClassPeriod(ctx, classID, month, year)
	if err != nil {
		return nil, &PersistenceError{Op: "FindInvoicesForClassPeriod", Err: err}
	}

	summary := &models.ClassMonthlySummary{
		ClassID:        classID,
		Month:          month,
		Year:           year,
		TotalBilled:    decimal.Zero,
		TotalCollected: decimal.Zero,
		TotalDues:      decimal.Zero,
	}
	for _, inv := range invoices {
		summary.TotalBilled = summary.TotalBilled.Add(inv.TotalBilled)
		summary.TotalCollected = summary.TotalCollected.Add(inv.TotalPaid)
		summary.TotalDues = summary.TotalDues.Add(inv.Balance)
	}
	return summary, nil
}

func (s *Service) student(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.store.FindStudent(ctx, id)
	if err != nil {
		return nil, &PersistenceError{Op: "FindStudent", Err: err}
	}
	if student == nil {
		return nil, &NotFoundError{Resource: "student", ID: id}
	}
	return student, nil
}

// latestInvoice picks the most recent invoice by billing period, using the
// calendar ordinal of the month, never the month name's lexical order.
func latestInvoice(invoices []*models.Invoice) *models.Invoice {
	var latest *models.Invoice
	for _, inv := range invoices {
		if latest == nil || models.ComparePeriods(inv.Month, inv.Year, latest.Month, latest.Year) > 0 {
			latest = inv
		}
	}
	return latest
}
