package ledger

import (
	"context"

	"github.com/mepraz/bluebells/app/models"
)

// Store is the persistence surface the ledger needs. The production
// implementation lives in app/database; tests use an in-memory mock.
//
// FindStudent/FindClass/FindInvoice return (nil, nil) when the record does
// not exist; the service turns that into a NotFoundError. Any storage
// failure is returned as a non-nil error and surfaces as a
// PersistenceError.
type Store interface {
	FindStudent(ctx context.Context, id string) (*models.Student, error)
	FindClass(ctx context.Context, id string) (*models.Class, error)

	// FindInvoice looks up the unique invoice for (studentID, month, year).
	FindInvoice(ctx context.Context, studentID, month string, year int) (*models.Invoice, error)
	FindInvoiceByID(ctx context.Context, id string) (*models.Invoice, error)
	FindInvoicesForStudent(ctx context.Context, studentID string) ([]*models.Invoice, error)
	FindInvoicesForClassPeriod(ctx context.Context, classID, month string, year int) ([]*models.Invoice, error)
	CreateInvoice(ctx context.Context, inv *models.Invoice) error

	// AppendPayment must atomically insert the payment and recompute the
	// invoice's total_paid and balance from the payments table, returning
	// the updated invoice. A failure must leave the invoice untouched.
	AppendPayment(ctx context.Context, invoiceID string, p *models.Payment) (*models.Invoice, error)

	FindSettings(ctx context.Context) (*models.SchoolSettings, error)
}
