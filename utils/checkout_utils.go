package utils

import (
	"math"
	"strings"
)

// Built-in percentage promo codes honored at checkout. Server-issued coupons
// carry flat amounts and validate through the coupons API instead.
var promoCodes = map[string]float64{
	"SAVE10":    0.10,
	"WELCOME20": 0.20,
}

// IsPromoCode reports whether the code is one of the built-in promo codes.
func IsPromoCode(code string) bool {
	_, ok := promoCodes[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// PromoDiscount returns the discount a built-in promo code yields on the
// given subtotal, or 0 for unknown codes.
func PromoDiscount(code string, subtotal float64) float64 {
	rate, ok := promoCodes[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return 0
	}
	return RoundMoney(subtotal * rate)
}

// ValidPaymentMethod reports whether the method is one we can settle.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCOD, PaymentEsewa, PaymentKhalti:
		return true
	}
	return false
}

// CalculateShippingFee returns the flat delivery charge, waived when the
// subtotal reaches the free-shipping threshold.
func CalculateShippingFee(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return ShippingFee
}

// CalculateOrderTotal computes the amount charged at checkout:
// subtotal + shipping - coupon discount + flat add-on fees.
// The discount never pushes the total below zero.
func CalculateOrderTotal(subtotal, discount float64, addOnFees ...float64) float64 {
	total := subtotal + CalculateShippingFee(subtotal) - discount
	for _, fee := range addOnFees {
		total += fee
	}
	if total < 0 {
		total = 0
	}
	return RoundMoney(total)
}

// RoundMoney rounds to two decimal places
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
