package routes

import (
	"github.com/Bibek1604/epsalae-storefront/config"
	"github.com/Bibek1604/epsalae-storefront/controllers"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(app *controllers.App) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())

	store := cookie.NewStore([]byte(config.App.SessionSecret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24, // 1 day
		Path:     "/",
		Secure:   false, // Set to true in production with HTTPS
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("epsalae", store))

	initStorefrontRoutes(router, app)
	initAdminRoutes(router, app)

	return router
}
