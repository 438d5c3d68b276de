package routes

import (
	"github.com/Bibek1604/epsalae-storefront/controllers"
	"github.com/Bibek1604/epsalae-storefront/middleware"

	"github.com/gin-gonic/gin"
)

// initAdminRoutes mounts the back-office views behind the advisory session
// guard. The backend still enforces authorization on every upstream call.
func initAdminRoutes(router *gin.Engine, app *controllers.App) {
	admin := router.Group("/admin")
	admin.Use(middleware.AdminGuard(app.Auth))
	{
		products := admin.Group("/products")
		{
			products.GET("", app.AdminListProducts)
			products.POST("", app.AdminCreateProduct)
			products.PUT("/:id", app.AdminUpdateProduct)
			products.DELETE("/:id", app.AdminDeleteProduct)
		}

		categories := admin.Group("/categories")
		{
			categories.GET("", app.AdminListCategories)
			categories.POST("", app.AdminCreateCategory)
			categories.PUT("/:id", app.AdminUpdateCategory)
			categories.DELETE("/:id", app.AdminDeleteCategory)
		}

		coupons := admin.Group("/coupons")
		{
			coupons.GET("", app.AdminListCoupons)
			coupons.POST("", app.AdminCreateCoupon)
			coupons.PUT("/:code", app.AdminUpdateCoupon)
			coupons.DELETE("/:code", app.AdminDeleteCoupon)
		}

		flashSales := admin.Group("/flash-sales")
		{
			flashSales.GET("", app.AdminListFlashSales)
			flashSales.POST("", app.AdminCreateFlashSale)
			flashSales.PUT("/:id", app.AdminUpdateFlashSale)
			flashSales.DELETE("/:id", app.AdminDeleteFlashSale)
		}

		banners := admin.Group("/banners")
		{
			banners.GET("", app.AdminListBanners)
			banners.POST("", app.AdminCreateBanner)
			banners.PUT("/:id", app.AdminUpdateBanner)
			banners.DELETE("/:id", app.AdminDeleteBanner)
		}

		brands := admin.Group("/brands")
		{
			brands.GET("", app.AdminListBrands)
			brands.POST("", app.AdminCreateBrand)
			brands.PUT("/:id", app.AdminUpdateBrand)
			brands.DELETE("/:id", app.AdminDeleteBrand)
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", app.AdminListOrders)
			orders.GET("/export/excel", app.AdminExportOrdersExcel)
			orders.GET("/export/pdf", app.AdminExportOrdersPDF)
			orders.GET("/:id", app.AdminGetOrder)
			orders.PUT("/:id/advance", app.AdminAdvanceOrder)
			orders.PUT("/:id/cancel", app.AdminCancelOrder)
		}
	}
}
