package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/mepraz/bluebells/app/database"
	"github.com/mepraz/bluebells/app/routes/auth"
)

// SetupDashboardRoutes sets up the dashboard page and stats API.
func SetupDashboardRoutes(app *fiber.App, db *sql.DB) {
	dashboard := app.Group("/dashboard")
	dashboard.Use(auth.AuthMiddleware)

	dashboard.Get("/", func(c *fiber.Ctx) error {
		return c.Render("dashboard/index", fiber.Map{
			"Title":       "Dashboard - Bluebell School",
			"CurrentPage": "dashboard",
		})
	})

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/stats", func(c *fiber.Ctx) error {
		return GetDashboardStatsAPI(c, db)
	})
}

func GetDashboardStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard statistics"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
