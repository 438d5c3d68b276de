package controllers

import (
	"github.com/Bibek1604/epsalae-storefront/api"
	"github.com/Bibek1604/epsalae-storefront/config"
	"github.com/Bibek1604/epsalae-storefront/store"

	"gorm.io/gorm"
)

// App wires the API client and the stores the handlers read from. Everything
// is injected through the constructor so tests can build isolated instances
// instead of sharing module-level state.
type App struct {
	Client *api.Client

	Auth   *store.AuthStore
	Cart   *store.CartStore
	Brands *store.BrandStore

	Products   *store.ProductStore
	Categories *store.CategoryStore
	Orders     *store.OrderStore
	Coupons    *store.CouponStore
	FlashSales *store.FlashSaleStore
	Banners    *store.BannerStore
}

// NewApp builds the application graph: auth store first (it feeds the bearer
// token into every request and absorbs 401s), then the client, then the
// resource stores on top of it.
func NewApp(cfg *config.Config, storage *gorm.DB) *App {
	auth := store.NewAuthStore(storage)

	client := api.NewClient(cfg.APIBaseURL, auth)
	client.OnUnauthorized(auth.ClearOnUnauthorized)

	return &App{
		Client:     client,
		Auth:       auth,
		Cart:       store.NewCartStore(storage),
		Brands:     store.NewBrandStore(storage),
		Products:   store.NewProductStore(client),
		Categories: store.NewCategoryStore(client),
		Orders:     store.NewOrderStore(client),
		Coupons:    store.NewCouponStore(client),
		FlashSales: store.NewFlashSaleStore(client),
		Banners:    store.NewBannerStore(client),
	}
}
