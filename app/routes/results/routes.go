package results

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/mepraz/bluebells/app/routes/auth"
)

// SetupResultsRoutes sets up the exam results web and API routes.
func SetupResultsRoutes(app *fiber.App, db *sql.DB) {
	results := app.Group("/results")
	results.Use(auth.AuthMiddleware)

	results.Get("/", func(c *fiber.Ctx) error {
		return c.Render("results/index", fiber.Map{
			"Title":       "Results - Bluebell School",
			"CurrentPage": "results",
		})
	})

	results.Get("/marksheet/:examId/:studentId", func(c *fiber.Ctx) error {
		return c.Render("results/marksheet", fiber.Map{
			"Title":       "Marksheet - Bluebell School",
			"CurrentPage": "results",
			"ExamID":      c.Params("examId"),
			"StudentID":   c.Params("studentId"),
		}, "")
	})

	api := app.Group("/api/results")
	api.Use(auth.AuthMiddleware)

	api.Post("/", func(c *fiber.Ctx) error {
		return SaveResultsAPI(c, db)
	})

	api.Get("/", func(c *fiber.Ctx) error {
		return GetResultsAPI(c, db)
	})

	examAPI := app.Group("/api/exams")
	examAPI.Use(auth.AuthMiddleware)

	examAPI.Get("/:id/marksheet/:studentId", func(c *fiber.Ctx) error {
		return GetMarksheetAPI(c, db)
	})
}
