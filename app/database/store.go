package database

import (
	"context"
	"database/sql"

	"github.com/mepraz/bluebells/app/models"
)

// Store adapts the query functions in this package to the ledger's Store
// interface. Absent rows come back as (nil, nil) so the ledger can map them
// to its own not-found errors.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) FindStudent(_ context.Context, id string) (*models.Student, error) {
	student, err := GetStudentByID(s.DB, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return student, err
}

func (s *Store) FindClass(_ context.Context, id string) (*models.Class, error) {
	class, err := GetClassByID(s.DB, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return class, err
}

func (s *Store) FindInvoice(_ context.Context, studentID, month string, year int) (*models.Invoice, error) {
	inv, err := GetInvoiceForPeriod(s.DB, studentID, month, year)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return inv, err
}

func (s *Store) FindInvoiceByID(_ context.Context, id string) (*models.Invoice, error) {
	inv, err := GetInvoiceByID(s.DB, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return inv, err
}

func (s *Store) FindInvoicesForStudent(_ context.Context, studentID string) ([]*models.Invoice, error) {
	return GetInvoicesForStudent(s.DB, studentID)
}

func (s *Store) FindInvoicesForClassPeriod(_ context.Context, classID, month string, year int) ([]*models.Invoice, error) {
	return GetInvoicesForClassPeriod(s.DB, classID, month, year)
}

func (s *Store) CreateInvoice(_ context.Context, inv *models.Invoice) error {
	return CreateInvoice(s.DB, inv)
}

func (s *Store) AppendPayment(_ context.Context, invoiceID string, p *models.Payment) (*models.Invoice, error) {
	return AppendPayment(s.DB, invoiceID, p)
}

func (s *Store) FindSettings(_ context.Context) (*models.SchoolSettings, error) {
	return GetSettings(s.DB)
}
