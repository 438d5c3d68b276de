package controllers

import (
	"github.com/Bibek1604/epsalae-storefront/store"
	"github.com/Bibek1604/epsalae-storefront/utils"

	"github.com/gin-gonic/gin"
)

// BannerForm is the admin banner form
type BannerForm struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image" binding:"required"`
	IsActive bool   `json:"isActive"`
}

func (f BannerForm) payload() store.Payload {
	return store.Payload{
		Fields: map[string]interface{}{
			"title":    f.Title,
			"subtitle": f.Subtitle,
			"isActive": f.IsActive,
		},
		Image: f.Image,
	}
}

// AdminListBanners renders every banner, active or not
func (a *App) AdminListBanners(c *gin.Context) {
	utils.LogInfo("AdminListBanners called")

	if err := a.Banners.FetchAll(c.Request.Context(), nil); err != nil {
		utils.LogError("Admin banner fetch failed: %v", err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, "Banners retrieved", a.Banners.Items())
}

// AdminCreateBanner creates a banner
func (a *App) AdminCreateBanner(c *gin.Context) {
	utils.LogInfo("AdminCreateBanner called")

	var form BannerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.LogError("Banner form invalid: %v", err)
		utils.BadRequest(c, "Invalid banner details", err.Error())
		return
	}

	created, err := a.Banners.Create(c.Request.Context(), form.payload())
	if err != nil {
		utils.LogError("Banner create failed: %v", err)
		utils.FromAppError(c, err)
		return
	}
	utils.LogInfo("Banner %s created", created.ID)
	utils.Created(c, utils.MsgCreateSuccess, created)
}

// AdminUpdateBanner updates a banner
func (a *App) AdminUpdateBanner(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("AdminUpdateBanner called for %s", id)

	var form BannerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.LogError("Banner form invalid: %v", err)
		utils.BadRequest(c, "Invalid banner details", err.Error())
		return
	}

	updated, err := a.Banners.Update(c.Request.Context(), id, form.payload())
	if err != nil {
		utils.LogError("Banner update failed for %s: %v", id, err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, utils.MsgUpdateSuccess, updated)
}

// AdminDeleteBanner deletes a banner
func (a *App) AdminDeleteBanner(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("AdminDeleteBanner called for %s", id)

	if err := a.Banners.Delete(c.Request.Context(), id); err != nil {
		utils.LogError("Banner delete failed for %s: %v", id, err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
