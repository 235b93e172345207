package settings

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/mepraz/bluebells/app/database"
	"github.com/mepraz/bluebells/app/models"
	"github.com/mepraz/bluebells/app/routes/auth"
)

// SetupSettingsRoutes sets up the school settings routes.
func SetupSettingsRoutes(app *fiber.App, db *sql.DB) {
	settings := app.Group("/settings")
	settings.Use(auth.AuthMiddleware)

	settings.Get("/", func(c *fiber.Ctx) error {
		return c.Render("settings/index", fiber.Map{
			"Title":       "Settings - Bluebell School",
			"CurrentPage": "settings",
		})
	})

	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetSettingsAPI(c, db)
	})

	api.Put("/", func(c *fiber.Ctx) error {
		return UpdateSettingsAPI(c, db)
	})
}

func GetSettingsAPI(c *fiber.Ctx, db *sql.DB) error {
	settings, err := database.GetSettings(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    settings,
	})
}

func UpdateSettingsAPI(c *fiber.Ctx, db *sql.DB) error {
	var req models.SchoolSettings
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := database.UpdateSettings(db, &req); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update settings"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    req,
	})
}
