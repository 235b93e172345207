package results

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mepraz/bluebells/app/database"
	"github.com/mepraz/bluebells/app/models"
)

var validate = validator.New()

// SaveResultsRequest upserts a batch of marks for one exam.
type SaveResultsRequest struct {
	ExamID  string `json:"exam_id" validate:"required,uuid"`
	Results []struct {
		StudentID      string `json:"student_id" validate:"required,uuid"`
		SubjectID      string `json:"subject_id" validate:"required,uuid"`
		TheoryMarks    *int   `json:"theory_marks"`
		PracticalMarks *int   `json:"practical_marks"`
	} `json:"results" validate:"required,dive"`
}

// SaveResultsAPI upserts marks per (exam, student, subject). Re-submitting
// a sheet overwrites earlier marks rather than duplicating rows.
func SaveResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	var req SaveResultsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	saved := 0
	for _, entry := range req.Results {
		result := &models.Result{
			ExamID:         req.ExamID,
			StudentID:      entry.StudentID,
			SubjectID:      entry.SubjectID,
			TheoryMarks:    entry.TheoryMarks,
			PracticalMarks: entry.PracticalMarks,
		}
		if err := database.UpsertResult(db, result); err != nil {
			return c.Status(500).JSON(fiber.Map{
				"error": "Failed to save results",
				"saved": saved,
			})
		}
		saved++
	}

	return c.JSON(fiber.Map{
		"success": true,
		"saved":   saved,
	})
}

func GetResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	examID := c.Query("exam_id")
	studentID := c.Query("student_id")
	if examID == "" || studentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "exam_id and student_id are required"})
	}

	results, err := database.GetResultsForExamStudent(db, examID, studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch results"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    results,
	})
}

// GetMarksheetAPI returns the printable marksheet payload for one student
// in one exam.
func GetMarksheetAPI(c *fiber.Ctx, db *sql.DB) error {
	examID := c.Params("id")
	studentID := c.Params("studentId")

	exam, err := database.GetExamByID(db, examID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exam"})
	}

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	class, err := database.GetClassByID(db, student.ClassID)
	if err != nil && err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class"})
	}

	rows, err := database.GetMarksheetRows(db, examID, studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch marks"})
	}

	marksheet := &models.StudentMarksheet{
		Student: student,
		Class:   class,
		Exam:    exam,
		Results: rows,
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    marksheet,
	})
}
