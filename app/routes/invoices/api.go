package invoices

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/mepraz/bluebells/app/ledger"
	"github.com/mepraz/bluebells/app/models"
)

var validate = validator.New()

// respondLedgerError maps the ledger error taxonomy onto HTTP statuses.
func respondLedgerError(c *fiber.Ctx, err error) error {
	var notFound *ledger.NotFoundError
	var invalid *ledger.ValidationError
	switch {
	case errors.As(err, &notFound):
		return c.Status(404).JSON(fiber.Map{"error": notFound.Error()})
	case errors.As(err, &invalid):
		return c.Status(400).JSON(fiber.Map{"error": invalid.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Storage failure, please retry"})
	}
}

// GenerateInvoiceRequest creates an invoice for one billing period. FeeTypes
// lists the one-off categories to bill on top of the recurring ones.
type GenerateInvoiceRequest struct {
	StudentID string   `json:"student_id" validate:"required,uuid"`
	Month     string   `json:"month" validate:"required"`
	Year      int      `json:"year" validate:"required,gt=0"`
	FeeTypes  []string `json:"fee_types"`
}

func GenerateInvoiceAPI(c *fiber.Ctx, svc *ledger.Service) error {
	var req GenerateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	categories := make([]models.FeeCategory, 0, len(req.FeeTypes))
	for _, t := range req.FeeTypes {
		category := models.FeeCategory(t)
		if !category.IsValid() || category == models.FeePreviousDues {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown fee type: " + t})
		}
		categories = append(categories, category)
	}

	inv, err := svc.GenerateInvoice(c.Context(), req.StudentID, req.Month, req.Year, categories)
	if err != nil {
		return respondLedgerError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    inv,
	})
}

func GetInvoiceAPI(c *fiber.Ctx, svc *ledger.Service) error {
	// The bill endpoint resolves student ownership; here the invoice id is
	// enough, so look it up through the student on the invoice itself.
	bill, err := svc.InvoiceWithStatus(c.Context(), c.Params("id"))
	if err != nil {
		return respondLedgerError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    bill,
	})
}

// RecordPaymentRequest appends one payment to an invoice.
type RecordPaymentRequest struct {
	StudentID string          `json:"student_id" validate:"required,uuid"`
	Amount    decimal.Decimal `json:"amount"`
}

func RecordPaymentAPI(c *fiber.Ctx, svc *ledger.Service) error {
	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	inv, err := svc.RecordPayment(c.Context(), req.StudentID, c.Params("id"), req.Amount)
	if err != nil {
		return respondLedgerError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    inv,
		"status":  ledger.InvoiceStatus(inv),
	})
}

func GetStudentBillAPI(c *fiber.Ctx, svc *ledger.Service) error {
	studentID := c.Query("student_id")
	if studentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "student_id is required"})
	}

	bill, err := svc.StudentBill(c.Context(), studentID, c.Params("id"))
	if err != nil {
		return respondLedgerError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    bill,
	})
}
