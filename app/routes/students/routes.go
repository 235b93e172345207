package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/mepraz/bluebells/app/ledger"
	"github.com/mepraz/bluebells/app/routes/auth"
)

// SetupStudentsRoutes sets up the students web and API routes.
func SetupStudentsRoutes(app *fiber.App, db *sql.DB, svc *ledger.Service) {
	students := app.Group("/students")
	students.Use(auth.AuthMiddleware)

	students.Get("/", func(c *fiber.Ctx) error {
		return c.Render("students/index", fiber.Map{
			"Title":       "Students - Bluebell School",
			"CurrentPage": "students",
		})
	})

	students.Get("/:id", func(c *fiber.Ctx) error {
		return c.Render("students/profile", fiber.Map{
			"Title":       "Student Profile - Bluebell School",
			"CurrentPage": "students",
			"StudentID":   c.Params("id"),
		})
	})

	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, db)
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateStudentAPI(c, db)
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetStudentByIDAPI(c, db)
	})

	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateStudentAPI(c, db)
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteStudentAPI(c, db)
	})

	api.Get("/:id/summary", func(c *fiber.Ctx) error {
		return GetStudentSummaryAPI(c, svc)
	})

	api.Get("/:id/invoices", func(c *fiber.Ctx) error {
		return GetStudentInvoicesAPI(c, db)
	})
}
