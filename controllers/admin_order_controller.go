package controllers

import (
	"github.com/Bibek1604/epsalae-storefront/models"
	"github.com/Bibek1604/epsalae-storefront/utils"

	"github.com/gin-gonic/gin"
)

// AdminListOrders renders the order table
func (a *App) AdminListOrders(c *gin.Context) {
	utils.LogInfo("AdminListOrders called")

	if err := a.Orders.FetchAll(c.Request.Context(), nil); err != nil {
		utils.LogError("Admin order fetch failed: %v", err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, "Orders retrieved", a.Orders.Items())
}

// AdminGetOrder renders one order's detail
func (a *App) AdminGetOrder(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("AdminGetOrder called for %s", id)

	order, err := a.Orders.FetchOne(c.Request.Context(), id)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, utils.ErrOrderNotFound)
			return
		}
		utils.LogError("Order fetch failed for %s: %v", id, err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, "Order retrieved", gin.H{
		"order": order,
		"step":  models.StatusStep(order.Status),
	})
}

// AdminAdvanceOrder moves an order one step along
// pending -> processing -> shipped -> delivered. Advancing a delivered or
// cancelled order changes nothing and answers with the current state.
func (a *App) AdminAdvanceOrder(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("AdminAdvanceOrder called for %s", id)

	// The cache must know the order to compute its next status.
	if _, ok := a.Orders.Find(id); !ok {
		if err := a.Orders.FetchAll(c.Request.Context(), nil); err != nil {
			utils.FromAppError(c, err)
			return
		}
	}

	order, err := a.Orders.Advance(c.Request.Context(), id)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, utils.ErrOrderNotFound)
			return
		}
		utils.LogError("Order advance failed for %s: %v", id, err)
		utils.FromAppError(c, err)
		return
	}
	utils.LogInfo("Order %s is now %s", id, order.Status)
	utils.Success(c, utils.MsgUpdateSuccess, gin.H{
		"order":  order,
		"status": order.Status,
	})
}

// AdminCancelOrder force-sets an order to cancelled, allowed from any
// non-terminal state.
func (a *App) AdminCancelOrder(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("AdminCancelOrder called for %s", id)

	if _, ok := a.Orders.Find(id); !ok {
		if err := a.Orders.FetchAll(c.Request.Context(), nil); err != nil {
			utils.FromAppError(c, err)
			return
		}
	}

	order, err := a.Orders.Cancel(c.Request.Context(), id)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, utils.ErrOrderNotFound)
			return
		}
		if utils.IsBadRequestError(err) {
			utils.BadRequest(c, "Cannot cancel a delivered or already cancelled order", nil)
			return
		}
		utils.LogError("Order cancel failed for %s: %v", id, err)
		utils.FromAppError(c, err)
		return
	}
	utils.LogInfo("Order %s cancelled", id)
	utils.Success(c, "Order cancelled", gin.H{
		"order":  order,
		"status": order.Status,
	})
}
