package database

import (
	"database/sql"

	"github.com/mepraz/bluebells/app/models"
)

const classColumns = `id, name, section,
	fee_registration, fee_monthly, fee_exam, fee_sports, fee_music,
	fee_medical, fee_tuition, fee_stationery, fee_tie_belt,
	created_at, updated_at`

func scanClass(row interface{ Scan(...interface{}) error }) (*models.Class, error) {
	class := &models.Class{}
	err := row.Scan(
		&class.ID, &class.Name, &class.Section,
		&class.Fees.Registration, &class.Fees.Monthly, &class.Fees.Exam,
		&class.Fees.Sports, &class.Fees.Music, &class.Fees.Medical,
		&class.Fees.Tuition, &class.Fees.Stationery, &class.Fees.TieBelt,
		&class.CreatedAt, &class.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return class, nil
}

// GetAllClasses returns all active classes with their student counts.
func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT c.id, c.name, c.section,
	          c.fee_registration, c.fee_monthly, c.fee_exam, c.fee_sports, c.fee_music,
	          c.fee_medical, c.fee_tuition, c.fee_stationery, c.fee_tie_belt,
	          c.created_at, c.updated_at,
	          COUNT(s.id) AS student_count
	          FROM classes c
	          LEFT JOIN students s ON s.class_id = c.id AND s.is_active = true AND s.deleted_at IS NULL
	          WHERE c.deleted_at IS NULL
	          GROUP BY c.id
	          ORDER BY c.name, c.section`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		err := rows.Scan(
			&class.ID, &class.Name, &class.Section,
			&class.Fees.Registration, &class.Fees.Monthly, &class.Fees.Exam,
			&class.Fees.Sports, &class.Fees.Music, &class.Fees.Medical,
			&class.Fees.Tuition, &class.Fees.Stationery, &class.Fees.TieBelt,
			&class.CreatedAt, &class.UpdatedAt,
			&class.StudentCount,
		)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}

// GetClassByID returns one active class, or sql.ErrNoRows.
func GetClassByID(db *sql.DB, id string) (*models.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1 AND deleted_at IS NULL`
	return scanClass(db.QueryRow(query, id))
}

// CreateClass inserts a class with its fee schedule.
func CreateClass(db *sql.DB, class *models.Class) error {
	query := `INSERT INTO classes (name, section,
	          fee_registration, fee_monthly, fee_exam, fee_sports, fee_music,
	          fee_medical, fee_tuition, fee_stationery, fee_tie_belt)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		class.Name, class.Section,
		class.Fees.Registration, class.Fees.Monthly, class.Fees.Exam,
		class.Fees.Sports, class.Fees.Music, class.Fees.Medical,
		class.Fees.Tuition, class.Fees.Stationery, class.Fees.TieBelt,
	).Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)
}

// UpdateClass replaces a class's name, section and fee schedule.
func UpdateClass(db *sql.DB, class *models.Class) error {
	query := `UPDATE classes SET name = $1, section = $2,
	          fee_registration = $3, fee_monthly = $4, fee_exam = $5,
	          fee_sports = $6, fee_music = $7, fee_medical = $8,
	          fee_tuition = $9, fee_stationery = $10, fee_tie_belt = $11,
	          updated_at = NOW()
	          WHERE id = $12 AND deleted_at IS NULL`
	result, err := db.Exec(query,
		class.Name, class.Section,
		class.Fees.Registration, class.Fees.Monthly, class.Fees.Exam,
		class.Fees.Sports, class.Fees.Music, class.Fees.Medical,
		class.Fees.Tuition, class.Fees.Stationery, class.Fees.TieBelt,
		class.ID,
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

// DeleteClass soft-deletes a class.
func DeleteClass(db *sql.DB, id string) error {
	_, err := db.Exec("UPDATE classes SET deleted_at = NOW() WHERE id = $1", id)
	return err
}
