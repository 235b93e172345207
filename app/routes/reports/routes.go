package reports

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mepraz/bluebells/app/ledger"
	"github.com/mepraz/bluebells/app/routes/auth"
)

// SetupReportsRoutes sets up the financial report routes.
func SetupReportsRoutes(app *fiber.App, svc *ledger.Service) {
	reports := app.Group("/reports")
	reports.Use(auth.AuthMiddleware)

	reports.Get("/", func(c *fiber.Ctx) error {
		return c.Render("reports/index", fiber.Map{
			"Title":       "Reports - Bluebell School",
			"CurrentPage": "reports",
		})
	})

	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)

	api.Get("/class-summary", func(c *fiber.Ctx) error {
		return GetClassSummaryAPI(c, svc)
	})
}

// GetClassSummaryAPI reports a class's billed vs. collected totals for one
// billing period.
func GetClassSummaryAPI(c *fiber.Ctx, svc *ledger.Service) error {
	classID := c.Query("class_id")
	month := c.Query("month")
	year := c.QueryInt("year", 0)
	if classID == "" || month == "" || year == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "class_id, month and year are required"})
	}

	summary, err := svc.ClassMonthlySummary(c.Context(), classID, month, year)
	if err != nil {
		var notFound *ledger.NotFoundError
		var invalid *ledger.ValidationError
		switch {
		case errors.As(err, &notFound):
			return c.Status(404).JSON(fiber.Map{"error": notFound.Error()})
		case errors.As(err, &invalid):
			return c.Status(400).JSON(fiber.Map{"error": invalid.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to compute class summary"})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}
