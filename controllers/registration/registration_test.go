package registrationController

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"akilam/database"
	"akilam/models"
	"akilam/payment"
	validators "akilam/validators/registration"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeGateway signs like the real gateway but never leaves the process
type fakeGateway struct {
	secret     string
	orders     int
	failCreate bool
}

func (f *fakeGateway) CreateOrder(amount float64, currency, receipt string, notes map[string]string) (*payment.Order, error) {
	if f.failCreate {
		return nil, errors.New("gateway unavailable")
	}
	f.orders++
	return &payment.Order{
		ID:       fmt.Sprintf("order_fake_%d", f.orders),
		Amount:   payment.ToSmallestUnit(amount),
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func (f *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(f.secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

type recordingNotifier struct {
	registrationEmails []string
	paymentEmails      []string
}

func (r *recordingNotifier) SendRegistrationEmail(email, firstName, course string) {
	r.registrationEmails = append(r.registrationEmails, email)
}

func (r *recordingNotifier) SendPaymentSuccessEmail(email, firstName, course string, amount float64) {
	r.paymentEmails = append(r.paymentEmails, email)
}

func setupApp(t *testing.T, gateway payment.Gateway, notifier Notifier) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.CourseCategory{}, &models.Coupon{}, &models.Course{}, &models.Registration{}))

	database.Database = database.DbInstance{Db: db}

	rc := NewRegistrationController(gateway, notifier)

	app := fiber.New()
	app.Post("/send-email", validators.QuickRegister(), rc.QuickRegister)
	app.Post("/api/register", validators.Register(), rc.Register)
	app.Post("/api/create-order", validators.CreateOrder(), rc.CreateOrder)
	app.Post("/api/verify-payment", validators.VerifyPayment(), rc.VerifyPayment)

	return app
}

func seedCourse(t *testing.T, name string, fee float64) models.Course {
	t.Helper()
	course := models.Course{Name: name, Fee: fee}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func registerBody(courseID uint) map[string]interface{} {
	return map[string]interface{}{
		"firstName": "Asha",
		"lastName":  "Kumar",
		"dob":       "1999-04-12",
		"mobile":    "9876543210",
		"email":     "asha@example.com",
		"courseId":  courseID,
	}
}

func TestRegisterMissingFieldsWritesNothing(t *testing.T) {
	app := setupApp(t, &fakeGateway{secret: "secret"}, &recordingNotifier{})
	seedCourse(t, "Full Stack Development", 1000)

	body := registerBody(1)
	delete(body, "email")

	status, resp := postJSON(t, app, "/api/register", body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, resp["success"])

	var count int64
	database.Database.Db.Model(&models.Registration{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRegisterUnknownCourse(t *testing.T) {
	app := setupApp(t, &fakeGateway{secret: "secret"}, &recordingNotifier{})

	status, resp := postJSON(t, app, "/api/register", registerBody(42))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, resp["success"])
}

func TestRegisterFreezesDiscountedAmount(t *testing.T) {
	app := setupApp(t, &fakeGateway{secret: "secret"}, &recordingNotifier{})
	course := seedCourse(t, "Full Stack Development", 1000)

	require.NoError(t, database.Database.Db.Create(&models.Coupon{
		CouponCode: "SAVE10",
		Discount:   10,
	}).Error)

	body := registerBody(course.ID)
	body["couponCode"] = " save10 "

	status, resp := postJSON(t, app, "/api/register", body)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, 900.0, resp["coursefee"])

	// Later coupon edits never change the stored amount
	require.NoError(t, database.Database.Db.Model(&models.Coupon{}).
		Where("coupon_code = ?", "SAVE10").Update("discount", 50).Error)

	var reg models.Registration
	require.NoError(t, database.Database.Db.First(&reg, uint(resp["registrationId"].(float64))).Error)
	assert.Equal(t, 900.0, reg.Amount)
	assert.Equal(t, "Full Stack Development", reg.Course)
	assert.Equal(t, models.PaymentStatusPending, reg.PaymentStatus)
}

func TestRegisterIgnoresInvalidCoupon(t *testing.T) {
	app := setupApp(t, &fakeGateway{secret: "secret"}, &recordingNotifier{})
	course := seedCourse(t, "Full Stack Development", 1000)

	body := registerBody(course.ID)
	body["couponCode"] = "NOPE"

	status, resp := postJSON(t, app, "/api/register", body)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1000.0, resp["coursefee"])
}

func TestCreateOrderUnknownRegistration(t *testing.T) {
	gateway := &fakeGateway{secret: "secret"}
	app := setupApp(t, gateway, &recordingNotifier{})

	status, resp := postJSON(t, app, "/api/create-order", map[string]interface{}{"registrationId": 99})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, 0, gateway.orders)

	var count int64
	database.Database.Db.Model(&models.Registration{}).
		Where("payment_order_id IS NOT NULL").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateOrderIsIdempotent(t *testing.T) {
	gateway := &fakeGateway{secret: "secret"}
	app := setupApp(t, gateway, &recordingNotifier{})
	course := seedCourse(t, "Full Stack Development", 1000)

	_, reg := postJSON(t, app, "/api/register", registerBody(course.ID))
	regID := reg["registrationId"]

	status, first := postJSON(t, app, "/api/create-order", map[string]interface{}{"registrationId": regID})
	require.Equal(t, http.StatusOK, status)

	status, second := postJSON(t, app, "/api/create-order", map[string]interface{}{"registrationId": regID})
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, first["orderId"], second["orderId"])
	assert.Equal(t, first["amount"], second["amount"])
	assert.Equal(t, 1, gateway.orders, "retry must not hit the gateway again")
}

func TestCreateOrderGatewayFailureLeavesRegistrationUntouched(t *testing.T) {
	gateway := &fakeGateway{secret: "secret", failCreate: true}
	app := setupApp(t, gateway, &recordingNotifier{})
	course := seedCourse(t, "Full Stack Development", 1000)

	_, reg := postJSON(t, app, "/api/register", registerBody(course.ID))

	status, resp := postJSON(t, app, "/api/create-order", map[string]interface{}{"registrationId": reg["registrationId"]})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, false, resp["success"])

	var stored models.Registration
	require.NoError(t, database.Database.Db.First(&stored, uint(reg["registrationId"].(float64))).Error)
	assert.Nil(t, stored.PaymentOrderID)
	assert.Equal(t, models.PaymentStatusPending, stored.PaymentStatus)

	// The step is retriable once the gateway recovers
	gateway.failCreate = false
	status, resp = postJSON(t, app, "/api/create-order", map[string]interface{}{"registrationId": reg["registrationId"]})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, resp["success"])
}

func TestVerifyPaymentMissingFields(t *testing.T) {
	app := setupApp(t, &fakeGateway{secret: "secret"}, &recordingNotifier{})

	status, resp := postJSON(t, app, "/api/verify-payment", map[string]interface{}{
		"razorpay_order_id": "order_fake_1",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, resp["success"])
}

func TestVerifyPaymentUnknownOrder(t *testing.T) {
	app := setupApp(t, &fakeGateway{secret: "secret"}, &recordingNotifier{})

	status, resp := postJSON(t, app, "/api/verify-payment", map[string]interface{}{
		"razorpay_order_id":   "order_missing",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  signPayload("secret", "order_missing", "pay_1"),
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, resp["success"])
}

func TestPaymentWorkflowEndToEnd(t *testing.T) {
	gateway := &fakeGateway{secret: "secret"}
	notifier := &recordingNotifier{}
	app := setupApp(t, gateway, notifier)
	course := seedCourse(t, "Full Stack Development", 1000)

	// Step A: register
	status, reg := postJSON(t, app, "/api/register", registerBody(course.ID))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, reg["success"])
	assert.Equal(t, 1000.0, reg["coursefee"])

	// Step B: create order; the amount goes out in paise
	status, order := postJSON(t, app, "/api/create-order", map[string]interface{}{"registrationId": reg["registrationId"]})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 100000.0, order["amount"])
	assert.Equal(t, "INR", order["currency"])
	orderID := order["orderId"].(string)
	require.NotEmpty(t, orderID)

	// Step C: verify with a correctly computed signature
	status, verify := postJSON(t, app, "/api/verify-payment", map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  signPayload("secret", orderID, "pay_1"),
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, verify["success"])
	assert.Equal(t, "Payment Success", verify["message"])

	var stored models.Registration
	require.NoError(t, database.Database.Db.Where("payment_order_id = ?", orderID).First(&stored).Error)
	assert.Equal(t, models.PaymentStatusSuccess, stored.PaymentStatus)
	assert.Equal(t, "pay_1", stored.PaymentID)

	require.Len(t, notifier.paymentEmails, 1)
	assert.Equal(t, "asha@example.com", notifier.paymentEmails[0])

	// Replaying the same verification reports the stored outcome without a second email
	status, replay := postJSON(t, app, "/api/verify-payment", map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  signPayload("secret", orderID, "pay_1"),
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, replay["success"])
	assert.Len(t, notifier.paymentEmails, 1)
}

func TestVerifyPaymentWrongSignature(t *testing.T) {
	gateway := &fakeGateway{secret: "secret"}
	notifier := &recordingNotifier{}
	app := setupApp(t, gateway, notifier)
	course := seedCourse(t, "Full Stack Development", 1000)

	_, reg := postJSON(t, app, "/api/register", registerBody(course.ID))
	_, order := postJSON(t, app, "/api/create-order", map[string]interface{}{"registrationId": reg["registrationId"]})
	orderID := order["orderId"].(string)

	status, verify := postJSON(t, app, "/api/verify-payment", map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  "deadbeef",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, verify["success"])
	assert.Equal(t, "Payment Failed", verify["message"])
	assert.Empty(t, notifier.paymentEmails)

	var stored models.Registration
	require.NoError(t, database.Database.Db.Where("payment_order_id = ?", orderID).First(&stored).Error)
	assert.Equal(t, models.PaymentStatusFailed, stored.PaymentStatus)

	// FAILED is terminal: a later correct signature does not resurrect the registration
	status, retry := postJSON(t, app, "/api/verify-payment", map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  signPayload("secret", orderID, "pay_1"),
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, retry["success"])
	assert.Equal(t, "Payment Failed", retry["message"])
	assert.Empty(t, notifier.paymentEmails)
}

func TestQuickRegisterSendsWelcomeEmail(t *testing.T) {
	notifier := &recordingNotifier{}
	app := setupApp(t, &fakeGateway{secret: "secret"}, notifier)

	status, resp := postJSON(t, app, "/send-email", map[string]interface{}{
		"firstName": "Asha",
		"lastName":  "Kumar",
		"dob":       "1999-04-12",
		"mobile":    "9876543210",
		"email":     "asha@example.com",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Data inserted and email sent successfully", resp["message"])
	require.Len(t, notifier.registrationEmails, 1)

	var stored models.Registration
	require.NoError(t, database.Database.Db.First(&stored).Error)
	assert.Equal(t, "No Course Selected", stored.Course)
}
