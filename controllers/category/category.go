package categoryController

import (
	"akilam/database"
	"akilam/middleware"
	"akilam/models"

	"github.com/gofiber/fiber/v2"
)

// GetCategories lists all course categories
func GetCategories(c *fiber.Ctx) error {
	var categories []models.CourseCategory
	if err := database.Database.Db.Where("is_deleted = false").Order("id").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}

	return c.JSON(categories)
}

// CreateCategory adds a new course category
func CreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*struct {
		CategoryName string `json:"category_name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	category := models.CourseCategory{CategoryName: reqData.CategoryName}
	if err := database.Database.Db.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category added successfully", category)
}
