package models

import "gorm.io/gorm"

// Payment lifecycle of a registration. A registration is created PENDING
// and moves to SUCCESS or FAILED exactly once, by the verify-payment step.
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusSuccess = "SUCCESS"
	PaymentStatusFailed  = "FAILED"
)

// Registration is one applicant's attempt to enroll in a course,
// tracked through the payment lifecycle.
type Registration struct {
	gorm.Model
	FirstName string `json:"firstName" gorm:"not null"`
	LastName  string `json:"lastName" gorm:"not null"`
	DOB       string `json:"dob" gorm:"not null"`
	Mobile    string `json:"mobile" gorm:"not null"`
	Email     string `json:"email" gorm:"not null"`
	Message   string `json:"message"`

	// Course name is denormalized at registration time so later course
	// edits never change what the applicant signed up for.
	Course string  `json:"course"`
	Amount float64 `json:"amount"` // fee after any coupon discount, frozen at registration

	PaymentStatus  string  `json:"payment_status" gorm:"default:'PENDING'"`
	PaymentOrderID *string `json:"payment_order_id" gorm:"uniqueIndex"`
	PaymentID      string  `json:"payment_id"`

	ReminderSent bool `gorm:"default:false"`
	IsDeleted    bool `gorm:"default:false"`
}
