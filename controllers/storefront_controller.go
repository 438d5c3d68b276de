package controllers

import (
	"strconv"
	"time"

	"github.com/Bibek1604/epsalae-storefront/store"
	"github.com/Bibek1604/epsalae-storefront/utils"

	"github.com/gin-gonic/gin"
)

// ListProducts renders the browsing view: refetch the catalog, then run the
// search/category/price/sort passes over the in-memory list. The filtered
// result is derived fresh on every request, never cached.
func (a *App) ListProducts(c *gin.Context) {
	utils.LogInfo("ListProducts called")

	if err := a.Products.Fetch(c.Request.Context(), store.ProductQuery{
		Search:     c.Query("search"),
		CategoryID: c.Query("category_id"),
		Sort:       c.Query("sort"),
	}); err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.FromAppError(c, err)
		return
	}

	opts := store.FilterOptions{
		Search:   c.Query("search"),
		Category: c.DefaultQuery("category", "all"),
		Sort:     c.DefaultQuery("sort", store.SortPopular),
	}
	if v := c.Query("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			opts.MinPrice = f
		}
	}
	if v := c.Query("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			opts.MaxPrice = f
		}
	}

	filtered := store.FilterProducts(a.Products.Items(), opts)
	utils.LogDebug("Filtered %d products down to %d", len(a.Products.Items()), len(filtered))

	pagination := utils.NewPagination(c)
	from, to := pagination.Slice(len(filtered))
	utils.SuccessWithPagination(c, "Products retrieved", filtered[from:to],
		pagination.Total, pagination.Page, pagination.Limit)
}

// GetProduct renders the product detail view
func (a *App) GetProduct(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("GetProduct called for id %s", id)

	product, err := a.Products.FetchOne(c.Request.Context(), id)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, "Product not found")
			return
		}
		utils.LogError("Failed to fetch product %s: %v", id, err)
		utils.FromAppError(c, err)
		return
	}

	utils.Success(c, "Product retrieved", gin.H{
		"product":        product,
		"effectivePrice": product.EffectivePrice(),
	})
}

// ListOffers renders the products currently carrying an offer
func (a *App) ListOffers(c *gin.Context) {
	utils.LogInfo("ListOffers called")

	offers, err := a.Products.FetchOffers(c.Request.Context())
	if err != nil {
		utils.LogError("Failed to fetch offers: %v", err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, "Offers retrieved", offers)
}

// ListCategoryProducts renders one category's products
func (a *App) ListCategoryProducts(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("ListCategoryProducts called for category %s", id)

	products, err := a.Products.FetchByCategory(c.Request.Context(), id)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, "Category not found")
			return
		}
		utils.LogError("Failed to fetch category products: %v", err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, "Products retrieved", products)
}

// ListCategories renders the category navigation
func (a *App) ListCategories(c *gin.Context) {
	utils.LogInfo("ListCategories called")

	if err := a.Categories.FetchAll(c.Request.Context(), nil); err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, "Categories retrieved", a.Categories.Items())
}

// ListFlashSales renders the sales live right now. Liveness is purely the
// time window; the isActive flag plays no part here.
func (a *App) ListFlashSales(c *gin.Context) {
	utils.LogInfo("ListFlashSales called")

	if err := a.FlashSales.FetchAll(c.Request.Context(), nil); err != nil {
		utils.LogError("Failed to fetch flash sales: %v", err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, "Flash sales retrieved", a.FlashSales.Live(time.Now()))
}

// ListBanners renders the active storefront banners
func (a *App) ListBanners(c *gin.Context) {
	utils.LogInfo("ListBanners called")

	if err := a.Banners.FetchAll(c.Request.Context(), nil); err != nil {
		utils.LogError("Failed to fetch banners: %v", err)
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, "Banners retrieved", a.Banners.Active())
}
