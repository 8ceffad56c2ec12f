package courseController

import (
	"akilam/config"
	"akilam/database"
	"akilam/middleware"
	"akilam/models"
	"akilam/utils"

	"github.com/gofiber/fiber/v2"
)

// GetCourses lists all courses
func GetCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Where("is_deleted = false").Order("id").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}

	return c.JSON(courses)
}

// GetCoursesWithCategory lists courses joined with their category name
func GetCoursesWithCategory(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.
		Where("is_deleted = false").
		Preload("Category").
		Order("id").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}

	response := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		categoryName := ""
		if course.Category != nil {
			categoryName = course.Category.CategoryName
		}
		response = append(response, fiber.Map{
			"id":             course.ID,
			"course":         course.Name,
			"courseimage":    course.Image,
			"coursedetails":  course.Details,
			"coursecouponid": course.CouponID,
			"courseduration": course.Duration,
			"coursefee":      course.Fee,
			"categoryname":   categoryName,
		})
	}

	return c.JSON(response)
}

// CreateCourse adds a new course to the catalog
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Course     string   `json:"course"`
		Details    string   `json:"coursedetails"`
		Duration   string   `json:"courseduration"`
		Fee        *float64 `json:"coursefee"`
		CategoryID *uint    `json:"coursecategory"`
		CouponID   *uint    `json:"coursecouponid"`
		Image      string   `json:"courseimage"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Name:       reqData.Course,
		Details:    reqData.Details,
		Duration:   reqData.Duration,
		CategoryID: reqData.CategoryID,
		CouponID:   reqData.CouponID,
		Image:      reqData.Image,
	}
	if reqData.Fee != nil {
		course.Fee = *reqData.Fee
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course added successfully!", course)
}

// UploadCourseImage stores a course image and returns its public URL
func UploadCourseImage(c *fiber.Ctx) error {
	file, err := c.FormFile("courseImage")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded", nil)
	}

	filename, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Upload failed", nil)
	}

	url := utils.GetFileURL(filename)
	return c.JSON(fiber.Map{
		"filename":  filename,
		"url":       url,
		"imagePath": url, // kept for backward-compat with older clients
	})
}
