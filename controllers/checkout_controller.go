package controllers

import (
	"encoding/json"

	"github.com/Bibek1604/epsalae-storefront/models"
	"github.com/Bibek1604/epsalae-storefront/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys for the two-step checkout form
const (
	sessionShippingKey = "checkout_shipping"
	sessionCouponKey   = "checkout_coupon"
)

// ShippingRequest is step one of checkout; every field except the delivery
// notes is required before the form advances.
type ShippingRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	City          string `json:"city" binding:"required"`
	District      string `json:"district" binding:"required"`
	DeliveryNotes string `json:"deliveryNotes"`
}

// appliedCoupon is the coupon state carried between checkout steps. For promo
// codes the discount is recomputed against the live subtotal at placement;
// for server coupons the validated flat amount is kept.
type appliedCoupon struct {
	Code    string  `json:"code"`
	Flat    float64 `json:"flat"`
	IsPromo bool    `json:"isPromo"`
}

// SubmitShipping validates and stores step one of the checkout form
func (a *App) SubmitShipping(c *gin.Context) {
	utils.LogInfo("SubmitShipping called")

	var req ShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Shipping validation failed: %v", err)
		utils.BadRequest(c, "All shipping fields are required", err.Error())
		return
	}

	raw, err := json.Marshal(req)
	if err != nil {
		utils.InternalServerError(c, "Failed to save checkout state", nil)
		return
	}

	session := sessions.Default(c)
	session.Set(sessionShippingKey, string(raw))
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save checkout session: %v", err)
		utils.InternalServerError(c, "Failed to save checkout state", nil)
		return
	}

	utils.Success(c, "Shipping details saved", gin.H{"next": "payment"})
}

// ApplyCoupon applies a discount code to the pending checkout: built-in promo
// codes compute a percentage of the subtotal, anything else is validated by
// the backend as a flat-amount coupon. At most one coupon is held at a time.
func (a *App) ApplyCoupon(c *gin.Context) {
	utils.LogInfo("ApplyCoupon called")

	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Coupon code is required", err.Error())
		return
	}

	subtotal, err := a.Cart.TotalPrice()
	if err != nil {
		utils.InternalServerError(c, "Failed to read cart", nil)
		return
	}
	if subtotal <= 0 {
		utils.BadRequest(c, utils.ErrCartEmpty, nil)
		return
	}

	code := models.NormalizeCouponCode(req.Code)
	applied := appliedCoupon{Code: code}
	var discount float64

	if utils.IsPromoCode(code) {
		applied.IsPromo = true
		discount = utils.PromoDiscount(code, subtotal)
	} else {
		coupon, err := a.Coupons.Validate(c.Request.Context(), code)
		if err != nil {
			utils.LogError("Coupon %s rejected: %v", code, err)
			if utils.IsUnauthorizedError(err) {
				utils.RedirectToLogin(c)
				return
			}
			utils.BadRequest(c, utils.ErrCouponInvalid, nil)
			return
		}
		applied.Flat = coupon.DiscountAmount
		discount = coupon.DiscountAmount
	}

	raw, _ := json.Marshal(applied)
	session := sessions.Default(c)
	session.Set(sessionCouponKey, string(raw))
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save coupon session: %v", err)
		utils.InternalServerError(c, "Failed to save checkout state", nil)
		return
	}

	utils.LogInfo("Coupon %s applied for discount %.2f", code, discount)
	utils.Success(c, "Coupon applied", gin.H{
		"code":     code,
		"discount": discount,
	})
}

// PlaceOrderRequest is step two of checkout
type PlaceOrderRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// PlaceOrder builds the order from the cart plus the stored shipping form,
// submits it, and on success clears the cart and checkout state. On failure
// everything stays intact so the user can retry by repeating the action.
func (a *App) PlaceOrder(c *gin.Context) {
	utils.LogInfo("PlaceOrder called")

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Payment validation failed: %v", err)
		utils.BadRequest(c, "A payment method is required", err.Error())
		return
	}
	if !utils.ValidPaymentMethod(req.PaymentMethod) {
		utils.LogError("Unknown payment method: %s", req.PaymentMethod)
		utils.BadRequest(c, "Payment method must be cod, esewa or khalti", nil)
		return
	}

	session := sessions.Default(c)
	shippingRaw, _ := session.Get(sessionShippingKey).(string)
	if shippingRaw == "" {
		utils.BadRequest(c, "Complete the shipping step first", nil)
		return
	}
	var shipping ShippingRequest
	if err := json.Unmarshal([]byte(shippingRaw), &shipping); err != nil {
		utils.BadRequest(c, "Complete the shipping step first", nil)
		return
	}

	items, err := a.Cart.Items()
	if err != nil {
		utils.InternalServerError(c, "Failed to read cart", nil)
		return
	}
	if len(items) == 0 {
		utils.BadRequest(c, utils.ErrCartEmpty, nil)
		return
	}

	subtotal, err := a.Cart.TotalPrice()
	if err != nil {
		utils.InternalServerError(c, "Failed to read cart", nil)
		return
	}

	var discount float64
	if couponRaw, _ := session.Get(sessionCouponKey).(string); couponRaw != "" {
		var applied appliedCoupon
		if err := json.Unmarshal([]byte(couponRaw), &applied); err == nil {
			if applied.IsPromo {
				discount = utils.PromoDiscount(applied.Code, subtotal)
			} else {
				discount = applied.Flat
			}
		}
	}

	var addOns []float64
	if req.PaymentMethod == utils.PaymentCOD {
		addOns = append(addOns, utils.CODHandlingFee)
	}
	total := utils.CalculateOrderTotal(subtotal, discount, addOns...)

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID: models.EntityID(item.ItemID),
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			ImageURL:  item.Image,
		})
	}

	order := models.Order{
		FirstName:     shipping.FirstName,
		LastName:      shipping.LastName,
		Phone:         shipping.Phone,
		Address:       shipping.Address,
		City:          shipping.City,
		District:      shipping.District,
		DeliveryNotes: shipping.DeliveryNotes,
		Items:         orderItems,
		TotalAmount:   total,
		Status:        models.OrderStatusPending,
		PaymentMethod: req.PaymentMethod,
	}

	created, err := a.Orders.Place(c.Request.Context(), order)
	if err != nil {
		utils.LogError("Order placement failed: %v", err)
		utils.FromAppError(c, err)
		return
	}
	utils.LogInfo("Order %s placed for %.2f", created.ID, total)

	if err := a.Cart.Clear(); err != nil {
		utils.LogError("Failed to clear cart after order %s: %v", created.ID, err)
	}
	session.Delete(sessionShippingKey)
	session.Delete(sessionCouponKey)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear checkout session: %v", err)
	}

	data := gin.H{
		"orderId":     created.ID,
		"totalAmount": total,
		"status":      created.Status,
	}
	if req.PaymentMethod != utils.PaymentCOD {
		// The gateway redirect is simulated; no real payment call is made.
		data["paymentRedirect"] = "/payment/gateway?order=" + created.ID.String()
	}
	utils.Created(c, utils.MsgOrderPlaced, data)
}
