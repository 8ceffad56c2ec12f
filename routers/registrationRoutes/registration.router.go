package registrationRoutes

import (
	controllers "akilam/controllers/registration"
	validators "akilam/validators/registration"

	"github.com/gofiber/fiber/v2"
)

// SetupRegistrationRoutes sets up the registration and payment workflow routes
func SetupRegistrationRoutes(app *fiber.App, rc *controllers.RegistrationController) {
	// Plain registration form (no payment step)
	app.Post("/send-email", validators.QuickRegister(), rc.QuickRegister)

	apiGroup := app.Group("/api")

	apiGroup.Post("/register", validators.Register(), rc.Register)
	apiGroup.Post("/create-order", validators.CreateOrder(), rc.CreateOrder)
	apiGroup.Post("/verify-payment", validators.VerifyPayment(), rc.VerifyPayment)
}
