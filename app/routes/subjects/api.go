package subjects

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mepraz/bluebells/app/database"
	"github.com/mepraz/bluebells/app/models"
)

var validate = validator.New()

// SubjectRequest is the create/update payload.
type SubjectRequest struct {
	Name               string `json:"name" validate:"required"`
	ClassID            string `json:"class_id" validate:"required,uuid"`
	FullMarksTheory    int    `json:"full_marks_theory" validate:"gte=0"`
	FullMarksPractical int    `json:"full_marks_practical" validate:"gte=0"`
}

func GetSubjectsAPI(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Query("class_id")
	if classID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "class_id is required"})
	}

	subjects, err := database.GetSubjectsForClass(db, classID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    subjects,
	})
}

func CreateSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	var req SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	subject := &models.Subject{
		Name:               req.Name,
		ClassID:            req.ClassID,
		FullMarksTheory:    req.FullMarksTheory,
		FullMarksPractical: req.FullMarksPractical,
	}

	if err := database.CreateSubject(db, subject); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create subject"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    subject,
	})
}

func UpdateSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	var req SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	subject := &models.Subject{
		ID:                 c.Params("id"),
		Name:               req.Name,
		ClassID:            req.ClassID,
		FullMarksTheory:    req.FullMarksTheory,
		FullMarksPractical: req.FullMarksPractical,
	}

	if err := database.UpdateSubject(db, subject); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update subject"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    subject,
	})
}

func DeleteSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteSubject(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete subject"})
	}

	return c.JSON(fiber.Map{"success": true})
}
