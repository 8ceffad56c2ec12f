package registrationController

import (
	"fmt"
	"time"

	"akilam/database"
	"akilam/middleware"
	"akilam/models"
	"akilam/payment"
	"akilam/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Notifier sends best-effort confirmation mail. A send failure never fails
// the request that triggered it.
type Notifier interface {
	SendRegistrationEmail(email, firstName, course string)
	SendPaymentSuccessEmail(email, firstName, course string, amount float64)
}

// RegistrationController drives the register -> create-order -> verify-payment
// workflow. The gateway and notifier are injected so tests can use doubles.
type RegistrationController struct {
	Gateway  payment.Gateway
	Notifier Notifier
}

func NewRegistrationController(gateway payment.Gateway, notifier Notifier) *RegistrationController {
	return &RegistrationController{
		Gateway:  gateway,
		Notifier: notifier,
	}
}

// Register creates a pending registration with the course fee frozen after
// any coupon discount. No payment call happens here.
func (rc *RegistrationController) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegistration").(*struct {
		FirstName  string `json:"firstName"`
		LastName   string `json:"lastName"`
		DOB        string `json:"dob"`
		Mobile     string `json:"mobile"`
		Email      string `json:"email"`
		Message    string `json:"message"`
		CourseID   *uint  `json:"courseId"`
		CouponCode string `json:"couponCode"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Resolve the selected course
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = false", *reqData.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invalid course!", nil)
	}

	// Apply a coupon only when it is currently valid; an invalid or expired
	// code leaves the fee unchanged
	amount := course.Fee
	if reqData.CouponCode != "" {
		result, err := utils.EvaluateCoupon(db, reqData.CouponCode, amount, time.Now())
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
		}
		if result.Valid {
			amount = result.FinalAmount
		}
	}

	registration := models.Registration{
		FirstName:     reqData.FirstName,
		LastName:      reqData.LastName,
		DOB:           reqData.DOB,
		Mobile:        reqData.Mobile,
		Email:         reqData.Email,
		Message:       reqData.Message,
		Course:        course.Name,
		Amount:        amount,
		PaymentStatus: models.PaymentStatusPending,
	}

	// Save to database with transaction
	tx := db.Begin()
	if err := tx.Create(&registration).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create registration!", nil)
	}
	tx.Commit()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":        true,
		"registrationId": registration.ID,
		"coursefee":      amount,
	})
}

// QuickRegister records a registration from the plain website form and sends
// a welcome email, with no payment step
func (rc *RegistrationController) QuickRegister(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuickRegistration").(*struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		DOB       string `json:"dob"`
		Mobile    string `json:"mobile"`
		Email     string `json:"email"`
		Message   string `json:"message"`
		Course    string `json:"course"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	courseName := reqData.Course
	if courseName == "" {
		courseName = "No Course Selected"
	}

	registration := models.Registration{
		FirstName:     reqData.FirstName,
		LastName:      reqData.LastName,
		DOB:           reqData.DOB,
		Mobile:        reqData.Mobile,
		Email:         reqData.Email,
		Message:       reqData.Message,
		Course:        courseName,
		PaymentStatus: models.PaymentStatusPending,
	}

	if err := database.Database.Db.Create(&registration).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}

	// Best-effort confirmation email
	rc.Notifier.SendRegistrationEmail(registration.Email, registration.FirstName, registration.Course)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Data inserted and email sent successfully",
	})
}

// CreateOrder asks the gateway for a payment order over the registration's
// stored amount and attaches the order id. Calling it again for the same
// registration returns the already attached order without a new gateway call.
func (rc *RegistrationController) CreateOrder(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateOrder").(*struct {
		RegistrationID *uint `json:"registrationId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var registration models.Registration
	if err := db.Where("id = ? AND is_deleted = false", *reqData.RegistrationID).First(&registration).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration not found!", nil)
	}

	// Order already created for this registration
	if registration.PaymentOrderID != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":  true,
			"orderId":  *registration.PaymentOrderID,
			"amount":   payment.ToSmallestUnit(registration.Amount),
			"currency": "INR",
		})
	}

	receipt := "reg_" + uuid.NewString()
	notes := map[string]string{
		"registrationId": fmt.Sprintf("%d", registration.ID),
		"course":         registration.Course,
	}

	order, err := rc.Gateway.CreateOrder(registration.Amount, "INR", receipt, notes)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}

	// Attach the order id only if none is attached yet, so a concurrent
	// create-order for the same registration cannot overwrite it
	res := db.Model(&models.Registration{}).
		Where("id = ? AND payment_order_id IS NULL", registration.ID).
		Update("payment_order_id", order.ID)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}
	if res.RowsAffected == 0 {
		// Lost the race: report the order that won
		if err := db.First(&registration, registration.ID).Error; err != nil || registration.PaymentOrderID == nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":  true,
			"orderId":  *registration.PaymentOrderID,
			"amount":   payment.ToSmallestUnit(registration.Amount),
			"currency": "INR",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"orderId":  order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
	})
}

// VerifyPayment checks the gateway signature over the order/payment id pair
// and finalizes the registration exactly once. Replays with the same inputs
// report the stored outcome.
func (rc *RegistrationController) VerifyPayment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerifyPayment").(*struct {
		OrderID   string `json:"razorpay_order_id"`
		PaymentID string `json:"razorpay_payment_id"`
		Signature string `json:"razorpay_signature"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	verified := rc.Gateway.VerifySignature(reqData.OrderID, reqData.PaymentID, reqData.Signature)

	status := models.PaymentStatusFailed
	message := "Payment Failed"
	if verified {
		status = models.PaymentStatusSuccess
		message = "Payment Success"
	}

	db := database.Database.Db

	var registration models.Registration
	if err := db.Where("payment_order_id = ? AND is_deleted = false", reqData.OrderID).First(&registration).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration not found for this order!", nil)
	}

	// Already finalized: do not rewrite a terminal status
	if registration.PaymentStatus != models.PaymentStatusPending {
		stored := registration.PaymentStatus == models.PaymentStatusSuccess
		storedMessage := "Payment Failed"
		if stored {
			storedMessage = "Payment Success"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": stored,
			"message": storedMessage,
		})
	}

	tx := db.Begin()
	res := tx.Model(&models.Registration{}).
		Where("id = ? AND payment_status = ?", registration.ID, models.PaymentStatusPending).
		Updates(map[string]interface{}{
			"payment_id":     reqData.PaymentID,
			"payment_status": status,
		})
	if res.Error != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}
	tx.Commit()

	// Read back the finalized record
	if err := db.First(&registration, registration.ID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}

	if res.RowsAffected > 0 && registration.PaymentStatus == models.PaymentStatusSuccess {
		// Best-effort confirmation email
		rc.Notifier.SendPaymentSuccessEmail(registration.Email, registration.FirstName, registration.Course, registration.Amount)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": verified,
		"message": message,
	})
}
