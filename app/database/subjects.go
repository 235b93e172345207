package database

import (
	"database/sql"

	"github.com/mepraz/bluebells/app/models"
)

// GetSubjectsForClass returns a class's active subjects.
func GetSubjectsForClass(db *sql.DB, classID string) ([]*models.Subject, error) {
	query := `SELECT id, name, class_id, full_marks_theory, full_marks_practical, created_at, updated_at
	          FROM subjects WHERE class_id = $1 AND deleted_at IS NULL
	          ORDER BY name`
	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		subject := &models.Subject{}
		err := rows.Scan(
			&subject.ID, &subject.Name, &subject.ClassID,
			&subject.FullMarksTheory, &subject.FullMarksPractical,
			&subject.CreatedAt, &subject.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

// GetSubjectByID returns one active subject, or sql.ErrNoRows.
func GetSubjectByID(db *sql.DB, id string) (*models.Subject, error) {
	subject := &models.Subject{}
	query := `SELECT id, name, class_id, full_marks_theory, full_marks_practical, created_at, updated_at
	          FROM subjects WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, id).Scan(
		&subject.ID, &subject.Name, &subject.ClassID,
		&subject.FullMarksTheory, &subject.FullMarksPractical,
		&subject.CreatedAt, &subject.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return subject, nil
}

// CreateSubject inserts a subject.
func CreateSubject(db *sql.DB, subject *models.Subject) error {
	query := `INSERT INTO subjects (name, class_id, full_marks_theory, full_marks_practical)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		subject.Name, subject.ClassID, subject.FullMarksTheory, subject.FullMarksPractical,
	).Scan(&subject.ID, &subject.CreatedAt, &subject.UpdatedAt)
}

// UpdateSubject updates a subject's name and full marks.
func UpdateSubject(db *sql.DB, subject *models.Subject) error {
	query := `UPDATE subjects SET name = $1, full_marks_theory = $2,
	          full_marks_practical = $3, updated_at = NOW()
	          WHERE id = $4 AND deleted_at IS NULL`
	result, err := db.Exec(query,
		subject.Name, subject.FullMarksTheory, subject.FullMarksPractical, subject.ID,
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

// DeleteSubject soft-deletes a subject.
func DeleteSubject(db *sql.DB, id string) error {
	_, err := db.Exec("UPDATE subjects SET deleted_at = NOW() WHERE id = $1", id)
	return err
}
