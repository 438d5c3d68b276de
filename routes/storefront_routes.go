package routes

import (
	"github.com/Bibek1604/epsalae-storefront/controllers"

	"github.com/gin-gonic/gin"
)

// initStorefrontRoutes mounts the public shopping views
func initStorefrontRoutes(router *gin.Engine, app *controllers.App) {
	router.POST("/login", app.Login)
	router.POST("/logout", app.Logout)
	router.GET("/me", app.Me)

	// Catalog browsing
	router.GET("/products", app.ListProducts)
	router.GET("/products/:id", app.GetProduct)
	router.GET("/offers", app.ListOffers)
	router.GET("/categories", app.ListCategories)
	router.GET("/categories/:id/products", app.ListCategoryProducts)
	router.GET("/flash-sales", app.ListFlashSales)
	router.GET("/banners", app.ListBanners)

	// Cart
	cart := router.Group("/cart")
	{
		cart.GET("", app.GetCart)
		cart.POST("", app.AddToCart)
		cart.PUT("/:id", app.UpdateCartItem)
		cart.DELETE("/:id", app.RemoveCartItem)
		cart.DELETE("", app.ClearCart)
	}

	// Checkout
	checkout := router.Group("/checkout")
	{
		checkout.POST("/shipping", app.SubmitShipping)
		checkout.POST("/coupon", app.ApplyCoupon)
		checkout.POST("/place", app.PlaceOrder)
	}

	// Public order tracking, phone cross-checked after fetch
	router.GET("/track/:id", app.TrackOrder)
}
