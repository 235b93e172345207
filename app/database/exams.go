package database

import (
	"database/sql"

	"github.com/mepraz/bluebells/app/models"
)

// GetAllExams returns all exams, newest first.
func GetAllExams(db *sql.DB) ([]*models.Exam, error) {
	query := `SELECT id, name, date, created_at, updated_at FROM exams ORDER BY date DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		exam := &models.Exam{}
		if err := rows.Scan(&exam.ID, &exam.Name, &exam.Date, &exam.CreatedAt, &exam.UpdatedAt); err != nil {
			return nil, err
		}
		exams = append(exams, exam)
	}
	return exams, rows.Err()
}

// GetExamByID returns one exam, or sql.ErrNoRows.
func GetExamByID(db *sql.DB, id string) (*models.Exam, error) {
	exam := &models.Exam{}
	query := `SELECT id, name, date, created_at, updated_at FROM exams WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&exam.ID, &exam.Name, &exam.Date, &exam.CreatedAt, &exam.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return exam, nil
}

// CreateExam inserts an exam.
func CreateExam(db *sql.DB, exam *models.Exam) error {
	query := `INSERT INTO exams (name, date) VALUES ($1, $2)
	          RETURNING id, created_at, updated_at`
	return db.QueryRow(query, exam.Name, exam.Date).
		Scan(&exam.ID, &exam.CreatedAt, &exam.UpdatedAt)
}

// UpdateExam renames or reschedules an exam, or returns sql.ErrNoRows.
func UpdateExam(db *sql.DB, exam *models.Exam) error {
	query := `UPDATE exams SET name = $1, date = $2, updated_at = NOW()
	          WHERE id = $3
	          RETURNING created_at, updated_at`
	return db.QueryRow(query, exam.Name, exam.Date, exam.ID).
		Scan(&exam.CreatedAt, &exam.UpdatedAt)
}

// DeleteExam removes an exam and, through ON DELETE CASCADE, its results.
func DeleteExam(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM exams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpsertResult inserts a result or updates the marks for the existing
// (exam, student, subject) row.
func UpsertResult(db *sql.DB, result *models.Result) error {
	query := `INSERT INTO results (exam_id, student_id, subject_id, theory_marks, practical_marks)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (exam_id, student_id, subject_id)
	          DO UPDATE SET theory_marks = EXCLUDED.theory_marks,
	                        practical_marks = EXCLUDED.practical_marks,
	                        updated_at = NOW()
	          RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		result.ExamID, result.StudentID, result.SubjectID,
		result.TheoryMarks, result.PracticalMarks,
	).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
}

// GetResultsForExamStudent returns a student's results in one exam.
func GetResultsForExamStudent(db *sql.DB, examID, studentID string) ([]*models.Result, error) {
	query := `SELECT id, exam_id, student_id, subject_id, theory_marks, practical_marks, created_at, updated_at
	          FROM results WHERE exam_id = $1 AND student_id = $2`
	rows, err := db.Query(query, examID, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		result := &models.Result{}
		err := rows.Scan(
			&result.ID, &result.ExamID, &result.StudentID, &result.SubjectID,
			&result.TheoryMarks, &result.PracticalMarks,
			&result.CreatedAt, &result.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

// GetMarksheetRows joins a student's exam results with their subjects' full
// marks, in subject-name order. Missing marks read as zero.
func GetMarksheetRows(db *sql.DB, examID, studentID string) ([]models.MarksheetRow, error) {
	query := `SELECT sub.name, sub.full_marks_theory, sub.full_marks_practical,
	          COALESCE(r.theory_marks, 0), COALESCE(r.practical_marks, 0)
	          FROM results r
	          JOIN subjects sub ON r.subject_id = sub.id
	          WHERE r.exam_id = $1 AND r.student_id = $2
	          ORDER BY sub.name`
	rows, err := db.Query(query, examID, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sheet []models.MarksheetRow
	for rows.Next() {
		var row models.MarksheetRow
		err := rows.Scan(
			&row.SubjectName, &row.FullMarksTheory, &row.FullMarksPractical,
			&row.TheoryMarks, &row.PracticalMarks,
		)
		if err != nil {
			return nil, err
		}
		sheet = append(sheet, row)
	}
	return sheet, rows.Err()
}
