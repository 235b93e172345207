package classes

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mepraz/bluebells/app/database"
	"github.com/mepraz/bluebells/app/models"
)

var validate = validator.New()

// ClassRequest is the create/update payload. Fee amounts must be
// non-negative.
type ClassRequest struct {
	Name    string           `json:"name" validate:"required"`
	Section string           `json:"section"`
	Fees    models.ClassFees `json:"fees"`
}

func (r *ClassRequest) feesValid() bool {
	for _, category := range []models.FeeCategory{
		models.FeeRegistration, models.FeeMonthly, models.FeeExam,
		models.FeeSports, models.FeeMusic, models.FeeMedical,
		models.FeeTuition, models.FeeStationery, models.FeeTieBelt,
	} {
		if r.Fees.Amount(category).IsNegative() {
			return false
		}
	}
	return true
}

func GetClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	classes, err := database.GetAllClasses(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    classes,
	})
}

func GetClassByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	class, err := database.GetClassByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    class,
	})
}

func CreateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if !req.feesValid() {
		return c.Status(400).JSON(fiber.Map{"error": "Fee amounts cannot be negative"})
	}

	class := &models.Class{
		Name:    req.Name,
		Section: req.Section,
		Fees:    req.Fees,
	}

	if err := database.CreateClass(db, class); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create class"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    class,
	})
}

func UpdateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if !req.feesValid() {
		return c.Status(400).JSON(fiber.Map{"error": "Fee amounts cannot be negative"})
	}

	class := &models.Class{
		ID:      c.Params("id"),
		Name:    req.Name,
		Section: req.Section,
		Fees:    req.Fees,
	}

	if err := database.UpdateClass(db, class); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update class"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    class,
	})
}

func DeleteClassAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteClass(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete class"})
	}

	return c.JSON(fiber.Map{"success": true})
}
