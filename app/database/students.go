package database

import (
	"database/sql"
	"fmt"

	"github.com/mepraz/bluebells/app/models"
)

// StudentFilters narrows GetStudents queries.
type StudentFilters struct {
	ClassID string
	Search  string
	Limit   int
	Offset  int
}

const studentColumns = `s.id, s.sid, s.name, s.roll_number, s.class_id, s.address,
	s.profile_picture, s.opening_balance, s.in_tuition, s.is_active, s.created_at, s.updated_at`

func scanStudent(row interface{ Scan(...interface{}) error }, withClassName bool) (*models.Student, error) {
	student := &models.Student{}
	var className sql.NullString
	dest := []interface{}{
		&student.ID, &student.SID, &student.Name, &student.RollNumber,
		&student.ClassID, &student.Address, &student.ProfilePicture,
		&student.OpeningBalance, &student.InTuition, &student.IsActive,
		&student.CreatedAt, &student.UpdatedAt,
	}
	if withClassName {
		dest = append(dest, &className)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if className.Valid {
		student.ClassName = className.String
	}
	return student, nil
}

// GetStudents returns active students, optionally filtered by class and a
// name/sid search, with pagination. The second return value is the total
// count before pagination.
func GetStudents(db *sql.DB, filters StudentFilters) ([]*models.Student, int, error) {
	where := " WHERE s.is_active = true AND s.deleted_at IS NULL"
	var args []interface{}

	if filters.ClassID != "" {
		args = append(args, filters.ClassID)
		where += fmt.Sprintf(" AND s.class_id = $%d", len(args))
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		where += fmt.Sprintf(" AND (s.name ILIKE $%d OR s.sid ILIKE $%d)", len(args), len(args))
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM students s" + where
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + studentColumns + `,
	          CASE WHEN c.section = '' THEN c.name ELSE c.name || ' - ' || c.section END AS class_name
	          FROM students s
	          LEFT JOIN classes c ON s.class_id = c.id AND c.deleted_at IS NULL` +
		where + " ORDER BY s.sid"

	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filters.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows, true)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, student)
	}
	return students, total, rows.Err()
}

// GetStudentByID returns one active student, or sql.ErrNoRows.
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s
	          WHERE s.id = $1 AND s.deleted_at IS NULL`
	return scanStudent(db.QueryRow(query, id), false)
}

// CreateStudent enrolls a student.
func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students (sid, name, roll_number, class_id, address, profile_picture, opening_balance, in_tuition)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id, is_active, created_at, updated_at`
	return db.QueryRow(query,
		student.SID, student.Name, student.RollNumber, student.ClassID,
		student.Address, student.ProfilePicture, student.OpeningBalance, student.InTuition,
	).Scan(&student.ID, &student.IsActive, &student.CreatedAt, &student.UpdatedAt)
}

// UpdateStudent updates a student's details, including class promotion.
func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students SET sid = $1, name = $2, roll_number = $3,
	          class_id = $4, address = $5, profile_picture = $6,
	          opening_balance = $7, in_tuition = $8, is_active = $9,
	          updated_at = NOW()
	          WHERE id = $10 AND deleted_at IS NULL`
	result, err := db.Exec(query,
		student.SID, student.Name, student.RollNumber, student.ClassID,
		student.Address, student.ProfilePicture, student.OpeningBalance,
		student.InTuition, student.IsActive, student.ID,
	)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteStudent soft-deletes a student. Invoices and payments are kept.
func DeleteStudent(db *sql.DB, id string) error {
	_, err := db.Exec("UPDATE students SET deleted_at = NOW(), is_active = false WHERE id = $1", id)
	return err
}
