package authRoutes

import (
	controllers "akilam/controllers/auth"
	validators "akilam/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up the admin authentication routes
func SetupAuthRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	apiGroup.Post("/admin/login", validators.AdminLogin(), controllers.AdminLogin)
}
