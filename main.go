package main

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/mepraz/bluebells/app/config"
	"github.com/mepraz/bluebells/app/database"
	"github.com/mepraz/bluebells/app/ledger"
	"github.com/mepraz/bluebells/app/routes/auth"
	"github.com/mepraz/bluebells/app/routes/classes"
	"github.com/mepraz/bluebells/app/routes/dashboard"
	"github.com/mepraz/bluebells/app/routes/exams"
	"github.com/mepraz/bluebells/app/routes/invoices"
	"github.com/mepraz/bluebells/app/routes/reports"
	"github.com/mepraz/bluebells/app/routes/results"
	"github.com/mepraz/bluebells/app/routes/settings"
	"github.com/mepraz/bluebells/app/routes/students"
	"github.com/mepraz/bluebells/app/routes/subjects"
)

// customErrorHandler renders JSON for API requests and error pages for web
// requests.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - Bluebell School",
			"CurrentPage": "",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Bluebell School",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	if err := database.SeedDefaultUser(db); err != nil {
		log.Fatal("Failed to seed default user: ", err)
	}

	svc := ledger.NewService(database.NewStore(db))

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	auth.SetupAuthRoutes(app, db)
	dashboard.SetupDashboardRoutes(app, db)
	students.SetupStudentsRoutes(app, db, svc)
	classes.SetupClassesRoutes(app, db)
	subjects.SetupSubjectsRoutes(app, db)
	exams.SetupExamRoutes(app, db)
	results.SetupResultsRoutes(app, db)
	invoices.SetupInvoicesRoutes(app, svc)
	reports.SetupReportsRoutes(app, svc)
	settings.SetupSettingsRoutes(app, db)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	log.Println("Server starting on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
