package exams

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mepraz/bluebells/app/database"
	"github.com/mepraz/bluebells/app/models"
	"github.com/mepraz/bluebells/app/routes/auth"
)

var validate = validator.New()

// SetupExamRoutes sets up the exams web and API routes.
func SetupExamRoutes(app *fiber.App, db *sql.DB) {
	exams := app.Group("/exams")
	exams.Use(auth.AuthMiddleware)

	exams.Get("/", func(c *fiber.Ctx) error {
		return c.Render("exams/index", fiber.Map{
			"Title":       "Exams - Bluebell School",
			"CurrentPage": "exams",
		})
	})

	api := app.Group("/api/exams")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetExamsAPI(c, db)
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateExamAPI(c, db)
	})

	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateExamAPI(c, db)
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteExamAPI(c, db)
	})
}

func GetExamsAPI(c *fiber.Ctx, db *sql.DB) error {
	exams, err := database.GetAllExams(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exams"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    exams,
	})
}

// ExamRequest is the create payload. Date is "2006-01-02".
type ExamRequest struct {
	Name string `json:"name" validate:"required"`
	Date string `json:"date" validate:"required"`
}

func CreateExamAPI(c *fiber.Ctx, db *sql.DB) error {
	var req ExamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	exam := &models.Exam{Name: req.Name, Date: date}
	if err := database.CreateExam(db, exam); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create exam"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    exam,
	})
}

func UpdateExamAPI(c *fiber.Ctx, db *sql.DB) error {
	var req ExamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	exam := &models.Exam{ID: c.Params("id"), Name: req.Name, Date: date}
	if err := database.UpdateExam(db, exam); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update exam"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    exam,
	})
}

func DeleteExamAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteExam(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete exam"})
	}

	return c.JSON(fiber.Map{"success": true})
}
