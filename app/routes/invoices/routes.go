package invoices

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mepraz/bluebells/app/ledger"
	"github.com/mepraz/bluebells/app/models"
	"github.com/mepraz/bluebells/app/routes/auth"
)

// SetupInvoicesRoutes sets up the billing web and API routes.
func SetupInvoicesRoutes(app *fiber.App, svc *ledger.Service) {
	fees := app.Group("/fees")
	fees.Use(auth.AuthMiddleware)

	fees.Get("/", func(c *fiber.Ctx) error {
		return c.Render("fees/index", fiber.Map{
			"Title":       "Fees Management - Bluebell School",
			"CurrentPage": "fees",
		})
	})

	fees.Get("/bill/:invoiceId", func(c *fiber.Ctx) error {
		return c.Render("fees/bill", fiber.Map{
			"Title":       "Student Bill - Bluebell School",
			"CurrentPage": "fees",
			"InvoiceID":   c.Params("invoiceId"),
		}, "")
	})

	// Month names for the billing dialog, in calendar order.
	app.Get("/api/billing-months", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"data":    models.Months,
		})
	})

	api := app.Group("/api/invoices")
	api.Use(auth.AuthMiddleware)

	api.Post("/", func(c *fiber.Ctx) error {
		return GenerateInvoiceAPI(c, svc)
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetInvoiceAPI(c, svc)
	})

	api.Get("/:id/bill", func(c *fiber.Ctx) error {
		return GetStudentBillAPI(c, svc)
	})

	api.Post("/:id/payments", func(c *fiber.Ctx) error {
		return RecordPaymentAPI(c, svc)
	})
}
