package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/go-resty/resty/v2"
)

// Order is a remote payment order created with the gateway
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // smallest currency unit (paise)
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Gateway is the payment provider used by the registration workflow.
// Handlers depend on this interface so tests can substitute a double.
type Gateway interface {
	CreateOrder(amount float64, currency, receipt string, notes map[string]string) (*Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// RazorpayClient talks to the Razorpay Orders API
type RazorpayClient struct {
	keySecret string
	client    *resty.Client
}

// NewRazorpayClient builds a client for the given API credentials.
// baseURL is the Razorpay API root (overridable for tests).
func NewRazorpayClient(baseURL, keyID, keySecret string) *RazorpayClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(keyID, keySecret).
		SetTimeout(10 * time.Second)

	return &RazorpayClient{
		keySecret: keySecret,
		client:    client,
	}
}

// ToSmallestUnit converts a decimal amount to the gateway's integer
// subdivision (rupees to paise), rounded to the nearest integer.
func ToSmallestUnit(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateOrder creates a remote payment order for the given amount
func (r *RazorpayClient) CreateOrder(amount float64, currency, receipt string, notes map[string]string) (*Order, error) {
	payload := map[string]interface{}{
		"amount":   ToSmallestUnit(amount),
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		payload["notes"] = notes
	}

	resp, err := r.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/orders")
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("order API returned %d: %s", resp.StatusCode(), resp.String())
	}

	var order Order
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %v", err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("order response missing order id")
	}

	return &order, nil
}

// VerifySignature recomputes the HMAC-SHA256 of "orderID|paymentID" with the
// key secret and compares it against the supplied signature in constant time.
func (r *RazorpayClient) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(r.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
