package controllers

import (
	"github.com/Bibek1604/epsalae-storefront/utils"

	"github.com/gin-gonic/gin"
)

// BrandForm is the admin brand form. Brands are client-only: create, update
// and delete are immediate local-storage writes with no backend call.
type BrandForm struct {
	Name string `json:"name"`
	Logo string `json:"logo" binding:"required"`
}

// AdminListBrands renders the locally stored brand list
func (a *App) AdminListBrands(c *gin.Context) {
	utils.LogInfo("AdminListBrands called")

	brands, err := a.Brands.Items()
	if err != nil {
		utils.LogError("Brand read failed: %v", err)
		utils.InternalServerError(c, "Failed to read brands", nil)
		return
	}
	utils.Success(c, "Brands retrieved", brands)
}

// AdminCreateBrand stores a brand locally under a generated id
func (a *App) AdminCreateBrand(c *gin.Context) {
	utils.LogInfo("AdminCreateBrand called")

	var form BrandForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.LogError("Brand form invalid: %v", err)
		utils.BadRequest(c, "A brand logo is required", err.Error())
		return
	}

	brand, err := a.Brands.Create(form.Name, form.Logo)
	if err != nil {
		utils.LogError("Brand create failed: %v", err)
		utils.InternalServerError(c, "Failed to save brand", nil)
		return
	}
	utils.LogInfo("Brand %s created", brand.ID)
	utils.Created(c, utils.MsgCreateSuccess, brand)
}

// AdminUpdateBrand replaces a brand's fields
func (a *App) AdminUpdateBrand(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("AdminUpdateBrand called for %s", id)

	var form BrandForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.LogError("Brand form invalid: %v", err)
		utils.BadRequest(c, "A brand logo is required", err.Error())
		return
	}

	brand, err := a.Brands.Update(id, form.Name, form.Logo)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, "Brand not found")
			return
		}
		utils.LogError("Brand update failed for %s: %v", id, err)
		utils.InternalServerError(c, "Failed to save brand", nil)
		return
	}
	utils.Success(c, utils.MsgUpdateSuccess, brand)
}

// AdminDeleteBrand removes a brand from local storage
func (a *App) AdminDeleteBrand(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("AdminDeleteBrand called for %s", id)

	if err := a.Brands.Delete(id); err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, "Brand not found")
			return
		}
		utils.LogError("Brand delete failed for %s: %v", id, err)
		utils.InternalServerError(c, "Failed to delete brand", nil)
		return
	}
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
