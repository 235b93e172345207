package subjects

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/mepraz/bluebells/app/routes/auth"
)

// SetupSubjectsRoutes sets up the subjects API routes. Subjects are managed
// from the class pages; there is no standalone subjects page.
func SetupSubjectsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetSubjectsAPI(c, db)
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateSubjectAPI(c, db)
	})

	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateSubjectAPI(c, db)
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteSubjectAPI(c, db)
	})
}
