package courseValidator

import (
	"strings"

	"akilam/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Course     string   `json:"course"`
			Details    string   `json:"coursedetails"`
			Duration   string   `json:"courseduration"`
			Fee        *float64 `json:"coursefee"`
			CategoryID *uint    `json:"coursecategory"`
			CouponID   *uint    `json:"coursecouponid"`
			Image      string   `json:"courseimage"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate course name
		if strings.TrimSpace(reqData.Course) == "" {
			errors["course"] = "Course name is required!"
		}

		// Validate fee when provided
		if reqData.Fee != nil && *reqData.Fee < 0 {
			errors["coursefee"] = "Course fee cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
