package controllers

import (
	"time"

	"github.com/Bibek1604/epsalae-storefront/store"
	"github.com/Bibek1604/epsalae-storefront/utils"

	"github.com/gin-gonic/gin"
)

// FlashSaleForm is the admin flash sale form
type FlashSaleForm struct {
	ProductID  string    `json:"productId" binding:"required"`
	FlashPrice float64   `json:"flashPrice" binding:"required,gt=0"`
	MaxStock   int       `json:"maxStock" binding:"required,gt=0"`
	StartTime  time.Time `json:"startTime" binding:"required"`
	EndTime    time.Time `json:"endTime" binding:"required"`
	IsActive   bool      `json:"isActive"`
}

func (f FlashSaleForm) payload() store.Payload {
	return store.Payload{
		Fields: map[string]interface{}{
			"productId":  f.ProductID,
			"flashPrice": f.FlashPrice,
			"maxStock":   f.MaxStock,
			"startTime":  f.StartTime,
			"endTime":    f.EndTime,
			"isActive":   f.IsActive,
		},
	}
}

// AdminListFlashSales renders all flash sales, live or not, with liveness
func (a *App) AdminListFlashSales(c *gin.Context) {
	utils.LogInfo("AdminListFlashSales called")

	if err := a.FlashSales.FetchAll(c.Request.Context(), nil); err != nil {
		utils.LogError("Admin flash sale fetch failed: %v", err)
		utils.FromAppError(c, err)
		return
	}

	now := time.Now()
	sales := a.FlashSales.Items()
	rows := make([]gin.H, 0, len(sales))
	for _, sale := range sales {
		rows = append(rows, gin.H{
			"sale":   sale,
			"isLive": sale.IsLive(now),
		})
	}
	utils.Success(c, "Flash sales retrieved", rows)
}

// AdminCreateFlashSale creates a flash sale
func (a *App) AdminCreateFlashSale(c *gin.Context) {
	utils.LogInfo("AdminCreateFlashSale called")

	var form FlashSaleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.LogError("Flash sale form invalid: %v", err)
		utils.BadRequest(c, "Invalid flash sale details", err.Error())
		return
	}
	if !form.EndTime.After(form.StartTime) {
		utils.BadRequest(c, "endTime must be after startTime", nil)
		return
	}

	created, err := a.FlashSales.Create(c.Request.Context(), form.payload())
	if err != nil {
		utils.LogError("Flash sale create failed: %v", err)
		utils.FromAppError(c, err)
		return
	}
	utils.LogInfo("Flash sale %s created for product %s", created.ID, created.ProductID)
	utils.Created(c, utils.MsgCreateSuccess, created)
}

// AdminUpdateFlashSale updates a flash sale
func (a *App) AdminUpdateFlashSale(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("AdminUpdateFlashSale called for %s", id)

	var form FlashSaleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.LogError("Flash sale form invalid: %v", err)
		utils.BadRequest(c, "Invalid flash sale details", err.Error())
		return
	}

	updated, err := a.FlashSales.Update(c.Request.Context(), id, form.payload())
	if err != nil {
		utils.LogError("Flash sale update failed for %s: %v", id, err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, utils.MsgUpdateSuccess, updated)
}

// AdminDeleteFlashSale deletes a flash sale
func (a *App) AdminDeleteFlashSale(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("AdminDeleteFlashSale called for %s", id)

	if err := a.FlashSales.Delete(c.Request.Context(), id); err != nil {
		utils.LogError("Flash sale delete failed for %s: %v", id, err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
