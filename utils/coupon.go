package utils

import (
	"math"
	"strings"
	"time"

	"akilam/models"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// CouponResult is the outcome of evaluating a coupon code against an amount
type CouponResult struct {
	Valid       bool
	Discount    int
	FinalAmount float64
	Reason      string
}

// NormalizeCouponCode trims whitespace and upper-cases a coupon code so
// lookups are case/whitespace-insensitive
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CouponActive reports whether the coupon window covers the given moment.
// The window is inclusive of the whole start and end days; a zero date
// leaves that side open.
func CouponActive(coupon *models.Coupon, at time.Time) bool {
	if !coupon.StartDate.IsZero() && at.Before(now.With(coupon.StartDate).BeginningOfDay()) {
		return false
	}
	if !coupon.EndDate.IsZero() && at.After(now.With(coupon.EndDate).EndOfDay()) {
		return false
	}
	return true
}

// DiscountedAmount applies a percentage discount, clamped at zero
func DiscountedAmount(base float64, discount int) float64 {
	final := base - base*float64(discount)/100
	if final < 0 {
		return 0
	}
	return final
}

// EvaluateCoupon validates a coupon code against a base amount at the given
// moment and computes the discounted amount. An invalid or expired code is
// not an error: the result carries the reason. A non-nil error means the
// lookup itself failed.
func EvaluateCoupon(db *gorm.DB, code string, baseAmount float64, at time.Time) (CouponResult, error) {
	if math.IsNaN(baseAmount) || math.IsInf(baseAmount, 0) {
		return CouponResult{Valid: false, Reason: "Invalid course fee"}, nil
	}

	var coupon models.Coupon
	err := db.Where("UPPER(TRIM(coupon_code)) = ? AND is_deleted = false", NormalizeCouponCode(code)).
		First(&coupon).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return CouponResult{Valid: false, Reason: "Invalid coupon"}, nil
		}
		return CouponResult{}, err
	}

	if !CouponActive(&coupon, at) {
		return CouponResult{Valid: false, Reason: "Coupon expired"}, nil
	}

	return CouponResult{
		Valid:       true,
		Discount:    coupon.Discount,
		FinalAmount: DiscountedAmount(baseAmount, coupon.Discount),
	}, nil
}
