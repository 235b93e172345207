package auth

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up the auth web and API routes.
func SetupAuthRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/auth/login", ShowLoginPage)

	api := app.Group("/api/auth")
	api.Post("/login", func(c *fiber.Ctx) error {
		return LoginAPI(c, db)
	})
	api.Post("/logout", LogoutAPI)
	api.Post("/change-password", AuthMiddleware, func(c *fiber.Ctx) error {
		return ChangePasswordAPI(c, db)
	})
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/dashboard")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - Bluebell School",
	}, "")
}

// AuthMiddleware validates the JWT and sets the user context.
func AuthMiddleware(c *fiber.Ctx) error {
	// Cookie first, then Authorization header
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}
		return c.Redirect("/auth/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("username", claims.Username)
	c.Locals("user_role", claims.Role)

	return c.Next()
}
