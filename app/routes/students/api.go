package students

import (
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/mepraz/bluebells/app/database"
	"github.com/mepraz/bluebells/app/ledger"
	"github.com/mepraz/bluebells/app/models"
)

var validate = validator.New()

// StudentRequest is the create/update payload.
type StudentRequest struct {
	SID            string          `json:"sid" validate:"required"`
	Name           string          `json:"name" validate:"required"`
	RollNumber     *int            `json:"roll_number"`
	ClassID        string          `json:"class_id" validate:"required,uuid"`
	Address        *string         `json:"address"`
	ProfilePicture *string         `json:"profile_picture" validate:"omitempty,url"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	InTuition      bool            `json:"in_tuition"`
	IsActive       *bool           `json:"is_active"`
}

func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.StudentFilters{
		ClassID: c.Query("class_id"),
		Search:  c.Query("search"),
		Limit:   c.QueryInt("limit", 0),
		Offset:  c.QueryInt("offset", 0),
	}

	students, total, err := database.GetStudents(db, filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(studentListResponse(students, total))
}

// studentListResponse wraps a student page in the standard envelope, with
// the page and pre-pagination counts alongside the data.
func studentListResponse(students []*models.Student, total int) fiber.Map {
	return fiber.Map{
		"success":     true,
		"data":        students,
		"count":       len(students),
		"total_count": total,
	}
}

func GetStudentByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if req.OpeningBalance.IsNegative() {
		return c.Status(400).JSON(fiber.Map{"error": "Opening balance cannot be negative"})
	}

	student := &models.Student{
		SID:            req.SID,
		Name:           req.Name,
		RollNumber:     req.RollNumber,
		ClassID:        req.ClassID,
		Address:        req.Address,
		ProfilePicture: req.ProfilePicture,
		OpeningBalance: req.OpeningBalance,
		InTuition:      req.InTuition,
	}

	if err := database.CreateStudent(db, student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if req.OpeningBalance.IsNegative() {
		return c.Status(400).JSON(fiber.Map{"error": "Opening balance cannot be negative"})
	}

	student := &models.Student{
		ID:             c.Params("id"),
		SID:            req.SID,
		Name:           req.Name,
		RollNumber:     req.RollNumber,
		ClassID:        req.ClassID,
		Address:        req.Address,
		ProfilePicture: req.ProfilePicture,
		OpeningBalance: req.OpeningBalance,
		InTuition:      req.InTuition,
		IsActive:       true,
	}
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}

	if err := database.UpdateStudent(db, student); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteStudent(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// GetStudentSummaryAPI returns the student's fee summary: totals across all
// invoices, the latest invoice and the derived status.
func GetStudentSummaryAPI(c *fiber.Ctx, svc *ledger.Service) error {
	summary, err := svc.StudentFeeSummary(c.Context(), c.Params("id"))
	if err != nil {
		var notFound *ledger.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": notFound.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute fee summary"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}

func GetStudentInvoicesAPI(c *fiber.Ctx, db *sql.DB) error {
	invoices, err := database.GetInvoicesForStudent(db, c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch invoices"})
	}

	// Attach the per-invoice status for the history table.
	type invoiceWithStatus struct {
		*models.Invoice
		Status models.FeeStatus `json:"status"`
	}
	out := make([]invoiceWithStatus, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, invoiceWithStatus{Invoice: inv, Status: ledger.InvoiceStatus(inv)})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    out,
	})
}
