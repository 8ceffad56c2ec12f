package courseRoutes

import (
	controllers "akilam/controllers/course"
	"akilam/middleware"
	validators "akilam/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course catalog and image upload routes
func SetupCourseRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	apiGroup.Get("/course", controllers.GetCourses)
	apiGroup.Post("/course", middleware.AdminJWTMiddleware, validators.CreateCourse(), controllers.CreateCourse)
	apiGroup.Get("/courses", controllers.GetCoursesWithCategory)

	apiGroup.Post("/upload", middleware.AdminJWTMiddleware, controllers.UploadCourseImage)
}
