package middleware

import (
	"net/http"

	"github.com/Bibek1604/epsalae-storefront/store"
	"github.com/Bibek1604/epsalae-storefront/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AdminGuard gates the admin views. This is advisory client-side gating only:
// it answers the "am I logged in" question the way the browser route guard
// did, while real authorization stays with the backend, which checks the
// bearer token on every call the stores make. A request passes when both the
// cookie session mirror and the persisted auth store agree.
func AdminGuard(auth *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		loggedIn, _ := session.Get("logged_in").(bool)

		if !loggedIn || !auth.IsLoggedIn() {
			utils.LogInfo("Admin access without session, redirecting to login")
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.StandardResponse{
				Status:  "redirect",
				Message: utils.ErrSessionExpired,
				Data:    gin.H{"redirect": "/login"},
			})
			return
		}

		c.Next()
	}
}
