package controllers

import (
	"github.com/Bibek1604/epsalae-storefront/store"
	"github.com/Bibek1604/epsalae-storefront/utils"

	"github.com/gin-gonic/gin"
)

// CategoryForm is the admin category form. The slug is never entered by the
// admin; the store derives it from the name on every create and update.
type CategoryForm struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    bool   `json:"isActive"`
}

func (f CategoryForm) payload() store.Payload {
	return store.Payload{
		Fields: map[string]interface{}{
			"name":        f.Name,
			"description": f.Description,
			"isActive":    f.IsActive,
		},
		Image: f.Image,
	}
}

// AdminListCategories renders the category table
func (a *App) AdminListCategories(c *gin.Context) {
	utils.LogInfo("AdminListCategories called")

	if err := a.Categories.FetchAll(c.Request.Context(), nil); err != nil {
		utils.LogError("Admin category fetch failed: %v", err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, "Categories retrieved", a.Categories.Items())
}

// AdminCreateCategory creates a category (slug derived client-side)
func (a *App) AdminCreateCategory(c *gin.Context) {
	utils.LogInfo("AdminCreateCategory called")

	var form CategoryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.LogError("Category form invalid: %v", err)
		utils.BadRequest(c, "Invalid category details", err.Error())
		return
	}

	created, err := a.Categories.Create(c.Request.Context(), form.payload())
	if err != nil {
		utils.LogError("Category create failed: %v", err)
		utils.FromAppError(c, err)
		return
	}
	utils.LogInfo("Category %s created with slug %s", created.ID, created.Slug)
	utils.Created(c, utils.MsgCreateSuccess, created)
}

// AdminUpdateCategory updates a category
func (a *App) AdminUpdateCategory(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("AdminUpdateCategory called for %s", id)

	var form CategoryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.LogError("Category form invalid: %v", err)
		utils.BadRequest(c, "Invalid category details", err.Error())
		return
	}

	updated, err := a.Categories.Update(c.Request.Context(), id, form.payload())
	if err != nil {
		utils.LogError("Category update failed for %s: %v", id, err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, utils.MsgUpdateSuccess, updated)
}

// AdminDeleteCategory deletes a category
func (a *App) AdminDeleteCategory(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("AdminDeleteCategory called for %s", id)

	if err := a.Categories.Delete(c.Request.Context(), id); err != nil {
		utils.LogError("Category delete failed for %s: %v", id, err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
