package registrationValidator

import (
	"regexp"
	"strings"

	"akilam/middleware"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// Helper to validate mobile number format
func isValidMobile(mobile string) bool {
	re := regexp.MustCompile(`^\d{10}$`)
	return re.MatchString(mobile)
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FirstName  string `json:"firstName"`
			LastName   string `json:"lastName"`
			DOB        string `json:"dob"`
			Mobile     string `json:"mobile"`
			Email      string `json:"email"`
			Message    string `json:"message"`
			CourseID   *uint  `json:"courseId"`
			CouponCode string `json:"couponCode"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate applicant fields
		if strings.TrimSpace(reqData.FirstName) == "" {
			errors["firstName"] = "First name is required!"
		}
		if strings.TrimSpace(reqData.LastName) == "" {
			errors["lastName"] = "Last name is required!"
		}
		if strings.TrimSpace(reqData.DOB) == "" {
			errors["dob"] = "Date of birth is required!"
		}
		if reqData.Mobile == "" || !isValidMobile(reqData.Mobile) {
			errors["mobile"] = "Invalid mobile number!"
		}
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		// Validate course selection
		if reqData.CourseID == nil {
			errors["courseId"] = "Course is required!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegistration", reqData)
		return c.Next()
	}
}

// QuickRegister validator middleware for the plain registration form
func QuickRegister() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			DOB       string `json:"dob"`
			Mobile    string `json:"mobile"`
			Email     string `json:"email"`
			Message   string `json:"message"`
			Course    string `json:"course"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.FirstName) == "" {
			errors["firstName"] = "First name is required!"
		}
		if strings.TrimSpace(reqData.LastName) == "" {
			errors["lastName"] = "Last name is required!"
		}
		if strings.TrimSpace(reqData.DOB) == "" {
			errors["dob"] = "Date of birth is required!"
		}
		if reqData.Mobile == "" || !isValidMobile(reqData.Mobile) {
			errors["mobile"] = "Invalid mobile number!"
		}
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuickRegistration", reqData)
		return c.Next()
	}
}

// CreateOrder validator middleware
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			RegistrationID *uint `json:"registrationId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.RegistrationID == nil {
			errors["registrationId"] = "Registration id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateOrder", reqData)
		return c.Next()
	}
}

// VerifyPayment validator middleware
func VerifyPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			OrderID   string `json:"razorpay_order_id"`
			PaymentID string `json:"razorpay_payment_id"`
			Signature string `json:"razorpay_signature"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.OrderID) == "" {
			errors["razorpay_order_id"] = "Order id is required!"
		}
		if strings.TrimSpace(reqData.PaymentID) == "" {
			errors["razorpay_payment_id"] = "Payment id is required!"
		}
		if strings.TrimSpace(reqData.Signature) == "" {
			errors["razorpay_signature"] = "Signature is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVerifyPayment", reqData)
		return c.Next()
	}
}
