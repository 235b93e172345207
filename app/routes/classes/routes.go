package classes

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/mepraz/bluebells/app/routes/auth"
)

// SetupClassesRoutes sets up the classes web and API routes.
func SetupClassesRoutes(app *fiber.App, db *sql.DB) {
	classes := app.Group("/classes")
	classes.Use(auth.AuthMiddleware)

	classes.Get("/", func(c *fiber.Ctx) error {
		return c.Render("classes/index", fiber.Map{
			"Title":       "Classes - Bluebell School",
			"CurrentPage": "classes",
		})
	})

	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetClassesAPI(c, db)
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateClassAPI(c, db)
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetClassByIDAPI(c, db)
	})

	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateClassAPI(c, db)
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteClassAPI(c, db)
	})
}
