package couponRoutes

import (
	controllers "akilam/controllers/coupon"
	"akilam/middleware"
	validators "akilam/validators/coupon"

	"github.com/gofiber/fiber/v2"
)

// SetupCouponRoutes sets up coupon listing, creation and evaluation routes
func SetupCouponRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	apiGroup.Get("/couponvalues", controllers.GetCoupons)
	apiGroup.Post("/couponvalues", middleware.AdminJWTMiddleware, validators.CreateCoupon(), controllers.CreateCoupon)

	apiGroup.Post("/validate-coupon", controllers.ValidateCoupon)
	apiGroup.Post("/applyCoupon", validators.ApplyCoupon(), controllers.ApplyCoupon)
}
