package categoryRoutes

import (
	controllers "akilam/controllers/category"
	"akilam/middleware"
	validators "akilam/validators/category"

	"github.com/gofiber/fiber/v2"
)

// SetupCategoryRoutes sets up course category routes
func SetupCategoryRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	apiGroup.Get("/categories", controllers.GetCategories)
	apiGroup.Post("/categories", middleware.AdminJWTMiddleware, validators.CreateCategory(), controllers.CreateCategory)
}
