package couponValidator

import (
	"strings"
	"time"

	"akilam/middleware"

	"github.com/gofiber/fiber/v2"
)

// ApplyCoupon validator middleware
func ApplyCoupon() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID   *uint  `json:"courseId"`
			CouponCode string `json:"couponCode"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == nil {
			errors["courseId"] = "Course id is required!"
		}
		if strings.TrimSpace(reqData.CouponCode) == "" {
			errors["couponCode"] = "Coupon code is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedApplyCoupon", reqData)
		return c.Next()
	}
}

// CreateCoupon validator middleware
func CreateCoupon() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Discount   *int   `json:"discount"`
			CouponCode string `json:"couponcode"`
			StartDate  string `json:"start_date"`
			EndDate    string `json:"end_date"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Discount == nil {
			errors["discount"] = "Discount is required!"
		} else if *reqData.Discount < 0 || *reqData.Discount > 100 {
			errors["discount"] = "Discount must be between 0 and 100!"
		}
		if strings.TrimSpace(reqData.CouponCode) == "" {
			errors["couponcode"] = "Coupon code is required!"
		}

		// Optional active window, YYYY-MM-DD
		if reqData.StartDate != "" {
			if _, err := time.Parse("2006-01-02", reqData.StartDate); err != nil {
				errors["start_date"] = "Start date must be YYYY-MM-DD!"
			}
		}
		if reqData.EndDate != "" {
			if _, err := time.Parse("2006-01-02", reqData.EndDate); err != nil {
				errors["end_date"] = "End date must be YYYY-MM-DD!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCoupon", reqData)
		return c.Next()
	}
}
