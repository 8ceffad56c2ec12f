package middleware

import "github.com/gofiber/fiber/v2"

// JsonResponse writes the standard response envelope
func JsonResponse(c *fiber.Ctx, statusCode int, success bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": success,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse writes a 400 with the per-field validation errors
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Missing required fields",
		"errors":  errors,
	})
}
