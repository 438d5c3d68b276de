package controllers

import (
	"github.com/Bibek1604/epsalae-storefront/models"
	"github.com/Bibek1604/epsalae-storefront/utils"

	"github.com/gin-gonic/gin"
)

// TrackOrder is the public tracking view: fetch the order without auth, then
// cross-check the caller's phone number against the one on the order. Both
// numbers are normalized and compared by suffix, so "+977-9860056658" and
// "9860056658" refer to the same order. A mismatch renders the same not-found
// state as an unknown order id.
func (a *App) TrackOrder(c *gin.Context) {
	orderID := c.Param("id")
	phone := c.Query("phone")
	utils.LogInfo("TrackOrder called for order %s", orderID)

	if phone == "" {
		utils.BadRequest(c, "Phone number is required", nil)
		return
	}

	order, err := a.Orders.Track(c.Request.Context(), orderID)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, utils.ErrOrderNotFound)
			return
		}
		utils.LogError("Tracking fetch failed for %s: %v", orderID, err)
		utils.FromAppError(c, err)
		return
	}

	if !utils.PhoneMatches(order.Phone, phone) {
		utils.LogInfo("Phone mismatch for order %s", orderID)
		utils.NotFound(c, utils.ErrOrderNotFound)
		return
	}

	utils.Success(c, "Order found", gin.H{
		"order": order,
		"step":  models.StatusStep(order.Status),
	})
}
