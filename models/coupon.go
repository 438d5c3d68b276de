package models

import (
	"strings"
	"time"
)

// Coupon represents a server-issued flat-amount coupon. The uppercase code is
// the natural key; the backend exposes no separate id for coupons.
type Coupon struct {
	Code           string    `json:"code"`
	DiscountAmount float64   `json:"discountAmount"`
	ValidFrom      time.Time `json:"validFrom"`
	ValidTo        time.Time `json:"validTo"`
	IsActive       bool      `json:"isActive"`
}

// NormalizeCouponCode uppercases and trims a user-entered code
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValid is the stateless validity predicate: active and inside the window.
func (c Coupon) IsValid(now time.Time) bool {
	return c.IsActive && !now.Before(c.ValidFrom) && !now.After(c.ValidTo)
}
