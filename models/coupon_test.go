package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "SAVE10", NormalizeCouponCode("  save10 "))
	assert.Equal(t, "WELCOME20", NormalizeCouponCode("Welcome20"))
	assert.Equal(t, "", NormalizeCouponCode("   "))
}

func TestCouponIsValid(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	coupon := Coupon{
		Code:           "DASHAIN500",
		DiscountAmount: 500,
		ValidFrom:      now.Add(-24 * time.Hour),
		ValidTo:        now.Add(24 * time.Hour),
		IsActive:       true,
	}

	assert.True(t, coupon.IsValid(now))

	// Window boundaries are inclusive.
	assert.True(t, coupon.IsValid(coupon.ValidFrom))
	assert.True(t, coupon.IsValid(coupon.ValidTo))

	// Outside the window.
	assert.False(t, coupon.IsValid(coupon.ValidFrom.Add(-time.Second)))
	assert.False(t, coupon.IsValid(coupon.ValidTo.Add(time.Second)))

	// Inactive coupons never validate, even inside the window.
	coupon.IsActive = false
	assert.False(t, coupon.IsValid(now))
}
