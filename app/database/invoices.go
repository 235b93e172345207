package database

import (
	"database/sql"
	"fmt"

	"github.com/mepraz/bluebells/app/models"
)

// GetInvoiceByID loads one invoice with its line items and payments, or
// sql.ErrNoRows.
func GetInvoiceByID(db *sql.DB, id string) (*models.Invoice, error) {
	query := `SELECT id, student_id, class_id, month, year,
	          total_billed, total_paid, balance, created_at
	          FROM invoices WHERE id = $1`
	inv, err := scanInvoice(db.QueryRow(query, id))
	if err != nil {
		return nil, err
	}
	if err := loadInvoiceDetails(db, []*models.Invoice{inv}); err != nil {
		return nil, err
	}
	return inv, nil
}

// GetInvoiceForPeriod returns the unique invoice for (student, month, year),
// or sql.ErrNoRows.
func GetInvoiceForPeriod(db *sql.DB, studentID, month string, year int) (*models.Invoice, error) {
	query := `SELECT id, student_id, class_id, month, year,
	          total_billed, total_paid, balance, created_at
	          FROM invoices WHERE student_id = $1 AND month = $2 AND year = $3`
	inv, err := scanInvoice(db.QueryRow(query, studentID, month, year))
	if err != nil {
		return nil, err
	}
	if err := loadInvoiceDetails(db, []*models.Invoice{inv}); err != nil {
		return nil, err
	}
	return inv, nil
}

// GetInvoicesForStudent returns all of a student's invoices, newest first
// by creation time, each with line items and payments.
func GetInvoicesForStudent(db *sql.DB, studentID string) ([]*models.Invoice, error) {
	query := `SELECT id, student_id, class_id, month, year,
	          total_billed, total_paid, balance, created_at
	          FROM invoices WHERE student_id = $1
	          ORDER BY created_at DESC`
	return queryInvoices(db, query, studentID)
}

// GetInvoicesForClassPeriod returns a class's invoices for one billing
// period.
func GetInvoicesForClassPeriod(db *sql.DB, classID, month string, year int) ([]*models.Invoice, error) {
	query := `SELECT id, student_id, class_id, month, year,
	          total_billed, total_paid, balance, created_at
	          FROM invoices WHERE class_id = $1 AND month = $2 AND year = $3
	          ORDER BY created_at`
	return queryInvoices(db, query, classID, month, year)
}

// CreateInvoice inserts the invoice and its line items in one transaction.
func CreateInvoice(db *sql.DB, inv *models.Invoice) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO invoices (id, student_id, class_id, month, year,
	          total_billed, total_paid, balance, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.Exec(query,
		inv.ID, inv.StudentID, inv.ClassID, inv.Month, inv.Year,
		inv.TotalBilled, inv.TotalPaid, inv.Balance, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invoice: %v", err)
	}

	for i, item := range inv.LineItems {
		_, err = tx.Exec(
			`INSERT INTO invoice_line_items (invoice_id, fee_type, amount, position) VALUES ($1, $2, $3, $4)`,
			inv.ID, string(item.FeeType), item.Amount, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert line item: %v", err)
		}
	}

	return tx.Commit()
}

// AppendPayment inserts a payment and recomputes the invoice totals in one
// transaction. The invoice row is locked with FOR UPDATE before anything
// else: under READ COMMITTED a concurrent append that merely raced the SUM
// subquery against the row lock could write totals missing the other
// transaction's payment, so the lock is taken first and the SUM runs only
// once the previous writer has committed. Returns sql.ErrNoRows when the
// invoice does not exist. On any failure the transaction rolls back and the
// invoice is untouched.
func AppendPayment(db *sql.DB, invoiceID string, p *models.Payment) (*models.Invoice, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var lockedID string
	err = tx.QueryRow(`SELECT id FROM invoices WHERE id = $1 FOR UPDATE`, invoiceID).Scan(&lockedID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to lock invoice: %v", err)
	}

	query := `INSERT INTO payments (id, student_id, invoice_id, amount, date)
	          VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.Exec(query, p.ID, p.StudentID, p.InvoiceID, p.Amount, p.Date); err != nil {
		return nil, fmt.Errorf("failed to insert payment: %v", err)
	}

	update := `UPDATE invoices SET
	           total_paid = sub.paid,
	           balance = invoices.total_billed - sub.paid
	           FROM (SELECT COALESCE(SUM(amount), 0) AS paid FROM payments WHERE invoice_id = $1) sub
	           WHERE invoices.id = $1`
	if _, err = tx.Exec(update, invoiceID); err != nil {
		return nil, fmt.Errorf("failed to recompute invoice totals: %v", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return GetInvoiceByID(db, invoiceID)
}

func scanInvoice(row interface{ Scan(...interface{}) error }) (*models.Invoice, error) {
	inv := &models.Invoice{}
	err := row.Scan(
		&inv.ID, &inv.StudentID, &inv.ClassID, &inv.Month, &inv.Year,
		&inv.TotalBilled, &inv.TotalPaid, &inv.Balance, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func queryInvoices(db *sql.DB, query string, args ...interface{}) ([]*models.Invoice, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := loadInvoiceDetails(db, invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// loadInvoiceDetails fills in line items and payments for the given
// invoices.
func loadInvoiceDetails(db *sql.DB, invoices []*models.Invoice) error {
	for _, inv := range invoices {
		itemRows, err := db.Query(
			`SELECT fee_type, amount FROM invoice_line_items WHERE invoice_id = $1 ORDER BY position`,
			inv.ID,
		)
		if err != nil {
			return err
		}
		for itemRows.Next() {
			var item models.LineItem
			if err := itemRows.Scan(&item.FeeType, &item.Amount); err != nil {
				itemRows.Close()
				return err
			}
			inv.LineItems = append(inv.LineItems, item)
		}
		if err := itemRows.Err(); err != nil {
			itemRows.Close()
			return err
		}
		itemRows.Close()

		payRows, err := db.Query(
			`SELECT id, student_id, invoice_id, amount, date FROM payments WHERE invoice_id = $1 ORDER BY date`,
			inv.ID,
		)
		if err != nil {
			return err
		}
		for payRows.Next() {
			var p models.Payment
			if err := payRows.Scan(&p.ID, &p.StudentID, &p.InvoiceID, &p.Amount, &p.Date); err != nil {
				payRows.Close()
				return err
			}
			inv.Payments = append(inv.Payments, p)
		}
		if err := payRows.Err(); err != nil {
			payRows.Close()
			return err
		}
		payRows.Close()
	}
	return nil
}
