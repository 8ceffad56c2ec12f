package couponController

import (
	"strings"
	"time"

	"akilam/database"
	"akilam/middleware"
	"akilam/models"
	"akilam/utils"

	"github.com/gofiber/fiber/v2"
)

// GetCoupons lists all coupons
func GetCoupons(c *fiber.Ctx) error {
	var coupons []models.Coupon
	if err := database.Database.Db.Where("is_deleted = false").Order("id").Find(&coupons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}

	return c.JSON(coupons)
}

// CreateCoupon inserts a new coupon with an optional active window
func CreateCoupon(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCoupon").(*struct {
		Discount   *int   `json:"discount"`
		CouponCode string `json:"couponcode"`
		StartDate  string `json:"start_date"`
		EndDate    string `json:"end_date"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	coupon := models.Coupon{
		CouponCode: utils.NormalizeCouponCode(reqData.CouponCode),
		Discount:   *reqData.Discount,
	}

	// Dates were format-checked by the validator
	if reqData.StartDate != "" {
		coupon.StartDate, _ = time.Parse("2006-01-02", reqData.StartDate)
	}
	if reqData.EndDate != "" {
		coupon.EndDate, _ = time.Parse("2006-01-02", reqData.EndDate)
	}

	if err := database.Database.Db.Create(&coupon).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Coupon inserted successfully", coupon)
}

// ValidateCoupon evaluates a coupon code against a course fee. Invalid input
// or an unusable coupon is reported in the body, not as an HTTP error.
func ValidateCoupon(c *fiber.Ctx) error {
	reqData := new(struct {
		CouponCode string   `json:"couponCode"`
		CourseFee  *float64 `json:"courseFee"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return c.JSON(fiber.Map{"valid": false, "message": "Invalid request body"})
	}

	if strings.TrimSpace(reqData.CouponCode) == "" {
		return c.JSON(fiber.Map{"valid": false, "message": "Coupon code is required"})
	}
	if reqData.CourseFee == nil {
		return c.JSON(fiber.Map{"valid": false, "message": "Course fee is required"})
	}

	result, err := utils.EvaluateCoupon(database.Database.Db, reqData.CouponCode, *reqData.CourseFee, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"valid":   false,
			"message": "Internal Server Error",
		})
	}

	if !result.Valid {
		return c.JSON(fiber.Map{"valid": false, "message": result.Reason})
	}

	return c.JSON(fiber.Map{
		"valid":       true,
		"discount":    result.Discount,
		"finalAmount": result.FinalAmount,
		"message":     "Coupon applied",
	})
}

// ApplyCoupon computes the discounted fee of a course for a coupon code
func ApplyCoupon(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedApplyCoupon").(*struct {
		CourseID   *uint  `json:"courseId"`
		CouponCode string `json:"couponCode"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = false", *reqData.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	result, err := utils.EvaluateCoupon(db, reqData.CouponCode, course.Fee, time.Now())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}
	if !result.Valid {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, result.Reason, nil)
	}

	return c.JSON(fiber.Map{
		"courseId":      course.ID,
		"couponCode":    utils.NormalizeCouponCode(reqData.CouponCode),
		"originalFee":   course.Fee,
		"discountedFee": result.FinalAmount,
	})
}
