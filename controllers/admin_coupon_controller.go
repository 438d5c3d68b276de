package controllers

import (
	"time"

	"github.com/Bibek1604/epsalae-storefront/store"
	"github.com/Bibek1604/epsalae-storefront/utils"

	"github.com/gin-gonic/gin"
)

// CouponForm is the admin coupon form. The code is the natural key and is
// normalized to uppercase before it leaves the client.
type CouponForm struct {
	Code           string    `json:"code" binding:"required"`
	DiscountAmount float64   `json:"discountAmount" binding:"required,gt=0"`
	ValidFrom      time.Time `json:"validFrom" binding:"required"`
	ValidTo        time.Time `json:"validTo" binding:"required"`
	IsActive       bool      `json:"isActive"`
}

func (f CouponForm) payload() store.Payload {
	return store.Payload{
		Fields: map[string]interface{}{
			"code":           f.Code,
			"discountAmount": f.DiscountAmount,
			"validFrom":      f.ValidFrom,
			"validTo":        f.ValidTo,
			"isActive":       f.IsActive,
		},
	}
}

// AdminListCoupons renders the coupon table with per-row validity
func (a *App) AdminListCoupons(c *gin.Context) {
	utils.LogInfo("AdminListCoupons called")

	if err := a.Coupons.FetchAll(c.Request.Context(), nil); err != nil {
		utils.LogError("Admin coupon fetch failed: %v", err)
		utils.FromAppError(c, err)
		return
	}

	now := time.Now()
	type row struct {
		Code           string    `json:"code"`
		DiscountAmount float64   `json:"discountAmount"`
		ValidFrom      time.Time `json:"validFrom"`
		ValidTo        time.Time `json:"validTo"`
		IsActive       bool      `json:"isActive"`
		IsValid        bool      `json:"isValid"`
	}
	coupons := a.Coupons.Items()
	rows := make([]row, 0, len(coupons))
	for _, coupon := range coupons {
		rows = append(rows, row{
			Code:           coupon.Code,
			DiscountAmount: coupon.DiscountAmount,
			ValidFrom:      coupon.ValidFrom,
			ValidTo:        coupon.ValidTo,
			IsActive:       coupon.IsActive,
			IsValid:        coupon.IsValid(now),
		})
	}
	utils.Success(c, "Coupons retrieved", rows)
}

// AdminCreateCoupon creates a coupon
func (a *App) AdminCreateCoupon(c *gin.Context) {
	utils.LogInfo("AdminCreateCoupon called")

	var form CouponForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.LogError("Coupon form invalid: %v", err)
		utils.BadRequest(c, "Invalid coupon details", err.Error())
		return
	}
	if !form.ValidTo.After(form.ValidFrom) {
		utils.BadRequest(c, "validTo must be after validFrom", nil)
		return
	}

	created, err := a.Coupons.Create(c.Request.Context(), form.payload())
	if err != nil {
		utils.LogError("Coupon create failed: %v", err)
		utils.FromAppError(c, err)
		return
	}
	utils.LogInfo("Coupon %s created", created.Code)
	utils.Created(c, utils.MsgCreateSuccess, created)
}

// AdminUpdateCoupon updates a coupon, addressed by its code
func (a *App) AdminUpdateCoupon(c *gin.Context) {
	code := c.Param("code")
	utils.LogInfo("AdminUpdateCoupon called for %s", code)

	var form CouponForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.LogError("Coupon form invalid: %v", err)
		utils.BadRequest(c, "Invalid coupon details", err.Error())
		return
	}

	updated, err := a.Coupons.Update(c.Request.Context(), code, form.payload())
	if err != nil {
		utils.LogError("Coupon update failed for %s: %v", code, err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, utils.MsgUpdateSuccess, updated)
}

// AdminDeleteCoupon deletes a coupon by code
func (a *App) AdminDeleteCoupon(c *gin.Context) {
	code := c.Param("code")
	utils.LogInfo("AdminDeleteCoupon called for %s", code)

	if err := a.Coupons.Delete(c.Request.Context(), code); err != nil {
		utils.LogError("Coupon delete failed for %s: %v", code, err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
