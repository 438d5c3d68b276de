package controllers

import (
	"github.com/Bibek1604/epsalae-storefront/models"
	"github.com/Bibek1604/epsalae-storefront/utils"

	"github.com/gin-gonic/gin"
)

// cartSummary renders the cart with its derived totals
func (a *App) cartSummary() (gin.H, error) {
	items, err := a.Cart.Items()
	if err != nil {
		return nil, err
	}
	total, err := a.Cart.TotalPrice()
	if err != nil {
		return nil, err
	}
	count, err := a.Cart.TotalItems()
	if err != nil {
		return nil, err
	}
	return gin.H{
		"items":      items,
		"totalPrice": total,
		"totalItems": count,
	}, nil
}

// GetCart renders the current cart contents and totals
func (a *App) GetCart(c *gin.Context) {
	utils.LogInfo("GetCart called")

	summary, err := a.cartSummary()
	if err != nil {
		utils.LogError("Failed to read cart: %v", err)
		utils.InternalServerError(c, "Failed to read cart", nil)
		return
	}
	utils.Success(c, "Cart retrieved", summary)
}

// AddToCartRequest is the add-to-cart form. Price captures the effective
// price at add time; quantity defaults to 1 when omitted.
type AddToCartRequest struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
	Color    string  `json:"color"`
	Size     string  `json:"size"`
}

// AddToCart merges the item into the cart by identity (id + variant) and
// responds with the confirmation message and fresh totals.
func (a *App) AddToCart(c *gin.Context) {
	utils.LogInfo("AddToCart called")

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid add-to-cart request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	item, message, err := a.Cart.Add(models.CartItem{
		ItemID:   req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
		Image:    req.Image,
		Color:    req.Color,
		Size:     req.Size,
	})
	if err != nil {
		utils.LogError("Failed to add to cart: %v", err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}
	utils.LogInfo("Cart line %s now at quantity %d", item.ItemID, item.Quantity)

	summary, err := a.cartSummary()
	if err != nil {
		utils.InternalServerError(c, "Failed to read cart", nil)
		return
	}
	utils.Success(c, message, summary)
}

// UpdateCartItem sets a line's quantity, floored at 1
func (a *App) UpdateCartItem(c *gin.Context) {
	utils.LogInfo("UpdateCartItem called")

	// Quantity is a pointer so an explicit 0 binds and reaches the store's
	// clamp instead of tripping the required check.
	var req struct {
		Quantity *int   `json:"quantity" binding:"required"`
		Color    string `json:"color"`
		Size     string `json:"size"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid quantity update: %v", err)
		utils.BadRequest(c, "Quantity is required", err.Error())
		return
	}

	key := models.CartKey{ItemID: c.Param("id"), Color: req.Color, Size: req.Size}
	item, err := a.Cart.UpdateQuantity(key, *req.Quantity)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, "Item not in cart")
			return
		}
		utils.LogError("Failed to update quantity: %v", err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}
	utils.LogDebug("Cart line %s set to quantity %d", item.ItemID, item.Quantity)

	summary, err := a.cartSummary()
	if err != nil {
		utils.InternalServerError(c, "Failed to read cart", nil)
		return
	}
	utils.Success(c, utils.MsgUpdateSuccess, summary)
}

// RemoveCartItem drops a line from the cart
func (a *App) RemoveCartItem(c *gin.Context) {
	utils.LogInfo("RemoveCartItem called")

	key := models.CartKey{
		ItemID: c.Param("id"),
		Color:  c.Query("color"),
		Size:   c.Query("size"),
	}
	message, err := a.Cart.Remove(key)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, "Item not in cart")
			return
		}
		utils.LogError("Failed to remove cart line: %v", err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}

	summary, err := a.cartSummary()
	if err != nil {
		utils.InternalServerError(c, "Failed to read cart", nil)
		return
	}
	utils.Success(c, message, summary)
}

// ClearCart empties the cart
func (a *App) ClearCart(c *gin.Context) {
	utils.LogInfo("ClearCart called")

	if err := a.Cart.Clear(); err != nil {
		utils.LogError("Failed to clear cart: %v", err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}
	utils.Success(c, utils.MsgCartCleared, gin.H{
		"items":      []models.CartItem{},
		"totalPrice": 0,
		"totalItems": 0,
	})
}
