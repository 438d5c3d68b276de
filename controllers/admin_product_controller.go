package controllers

import (
	"github.com/Bibek1604/epsalae-storefront/store"
	"github.com/Bibek1604/epsalae-storefront/utils"

	"github.com/gin-gonic/gin"
)

// ProductForm is the admin product form. Image accepts either an http(s) URL
// (passed through as imageUrl) or a base64 data URI (converted to a binary
// upload part before it reaches the backend).
type ProductForm struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	DiscountPrice float64 `json:"discountPrice" binding:"gte=0"`
	Stock         int     `json:"stock" binding:"gte=0"`
	CategoryID    string  `json:"category_id"`
	Image         string  `json:"image"`
	IsActive      bool    `json:"isActive"`
	HasOffer      bool    `json:"hasOffer"`
}

func (f ProductForm) payload() store.Payload {
	return store.Payload{
		Fields: map[string]interface{}{
			"name":          f.Name,
			"description":   f.Description,
			"price":         f.Price,
			"discountPrice": f.DiscountPrice,
			"stock":         f.Stock,
			"category_id":   f.CategoryID,
			"isActive":      f.IsActive,
			"hasOffer":      f.HasOffer,
		},
		Image: f.Image,
	}
}

// AdminListProducts renders the product table with the store's state flags
func (a *App) AdminListProducts(c *gin.Context) {
	utils.LogInfo("AdminListProducts called")

	err := a.Products.Fetch(c.Request.Context(), store.ProductQuery{
		Page:   1,
		Limit:  utils.MaxPaginationLimit,
		Search: c.Query("search"),
	})
	if err != nil {
		utils.LogError("Admin product fetch failed: %v", err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, "Products retrieved", gin.H{
		"items":   a.Products.Items(),
		"loading": a.Products.Loading(),
	})
}

// AdminCreateProduct creates a product and appends the echo to the cache
func (a *App) AdminCreateProduct(c *gin.Context) {
	utils.LogInfo("AdminCreateProduct called")

	var form ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.LogError("Product form invalid: %v", err)
		utils.BadRequest(c, "Invalid product details", err.Error())
		return
	}

	created, err := a.Products.Create(c.Request.Context(), form.payload())
	if err != nil {
		utils.LogError("Product create failed: %v", err)
		utils.FromAppError(c, err)
		return
	}
	utils.LogInfo("Product %s created", created.ID)
	utils.Created(c, utils.MsgCreateSuccess, created)
}

// AdminUpdateProduct updates a product and replaces the cached entry
func (a *App) AdminUpdateProduct(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("AdminUpdateProduct called for %s", id)

	var form ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.LogError("Product form invalid: %v", err)
		utils.BadRequest(c, "Invalid product details", err.Error())
		return
	}

	updated, err := a.Products.Update(c.Request.Context(), id, form.payload())
	if err != nil {
		utils.LogError("Product update failed for %s: %v", id, err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, utils.MsgUpdateSuccess, updated)
}

// AdminDeleteProduct deletes a product and drops it from the cache
func (a *App) AdminDeleteProduct(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("AdminDeleteProduct called for %s", id)

	if err := a.Products.Delete(c.Request.Context(), id); err != nil {
		utils.LogError("Product delete failed for %s: %v", id, err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
