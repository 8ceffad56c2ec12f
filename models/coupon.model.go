package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon is a discount code applicable to course fees.
// Codes are matched case/whitespace-insensitively; the active window is
// inclusive of the whole end day. A zero StartDate or EndDate leaves that
// side of the window open.
type Coupon struct {
	gorm.Model
	CouponCode string    `json:"couponcode" gorm:"not null"`
	Discount   int       `json:"discount" gorm:"not null"` // percentage 0-100
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	IsDeleted  bool      `gorm:"default:false"`
}
