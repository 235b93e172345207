package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist. Every statement is
// idempotent so this runs on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'admin',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			section TEXT NOT NULL DEFAULT '',
			fee_registration NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (fee_registration >= 0),
			fee_monthly NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (fee_monthly >= 0),
			fee_exam NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (fee_exam >= 0),
			fee_sports NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (fee_sports >= 0),
			fee_music NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (fee_music >= 0),
			fee_medical NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (fee_medical >= 0),
			fee_tuition NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (fee_tuition >= 0),
			fee_stationery NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (fee_stationery >= 0),
			fee_tie_belt NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (fee_tie_belt >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (name, section)
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			sid TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			roll_number INT,
			class_id UUID NOT NULL REFERENCES classes(id),
			address TEXT,
			profile_picture TEXT,
			opening_balance NUMERIC(12,2) NOT NULL DEFAULT 0,
			in_tuition BOOLEAN NOT NULL DEFAULT false,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS subjects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			class_id UUID NOT NULL REFERENCES classes(id),
			full_marks_theory INT NOT NULL DEFAULT 0,
			full_marks_practical INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS exams (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			date DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			exam_id UUID NOT NULL REFERENCES exams(id) ON DELETE CASCADE,
			student_id UUID NOT NULL REFERENCES students(id),
			subject_id UUID NOT NULL REFERENCES subjects(id),
			theory_marks INT,
			practical_marks INT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (exam_id, student_id, subject_id)
		)`,

		`CREATE TABLE IF NOT EXISTS invoices (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			class_id UUID NOT NULL REFERENCES classes(id),
			month VARCHAR(20) NOT NULL,
			year INT NOT NULL,
			total_billed NUMERIC(12,2) NOT NULL DEFAULT 0,
			total_paid NUMERIC(12,2) NOT NULL DEFAULT 0,
			balance NUMERIC(12,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, month, year)
		)`,

		`CREATE TABLE IF NOT EXISTS invoice_line_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			invoice_id UUID NOT NULL REFERENCES invoices(id),
			fee_type VARCHAR(30) NOT NULL,
			amount NUMERIC(12,2) NOT NULL,
			position INT NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			invoice_id UUID NOT NULL REFERENCES invoices(id),
			amount NUMERIC(12,2) NOT NULL CHECK (amount > 0),
			date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS school_settings (
			id INT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			school_name TEXT NOT NULL DEFAULT '',
			school_logo_url TEXT NOT NULL DEFAULT '',
			school_address TEXT NOT NULL DEFAULT '',
			school_phone TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_students_class_id ON students(class_id)`,
		`CREATE INDEX IF NOT EXISTS idx_invoices_student_id ON invoices(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_invoices_class_period ON invoices(class_id, month, year)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_invoice_id ON payments(invoice_id)`,
		`CREATE INDEX IF NOT EXISTS idx_results_exam_student ON results(exam_id, student_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
