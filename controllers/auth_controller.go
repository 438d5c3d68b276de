package controllers

import (
	"github.com/Bibek1604/epsalae-storefront/models"
	"github.com/Bibek1604/epsalae-storefront/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session key for the advisory logged-in mirror checked by route guards
const sessionLoggedInKey = "logged_in"

// LoginRequest is the credential form forwarded to the backend
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login forwards credentials to the backend's auth endpoint and persists the
// issued token and user. No password handling happens here; the backend owns
// authentication entirely.
func (a *App) Login(c *gin.Context) {
	utils.LogInfo("Login called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Email and password are required", err.Error())
		return
	}

	var result struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := a.Client.Post(c.Request.Context(), "/auth/login", req, &result); err != nil {
		utils.LogError("Login failed for %s: %v", req.Email, err)
		if utils.IsUnauthorizedError(err) || utils.IsBadRequestError(err) {
			utils.Unauthorized(c, utils.ErrInvalidCredentials)
			return
		}
		utils.FromAppError(c, err)
		return
	}

	if err := a.Auth.Login(result.Token, result.User); err != nil {
		utils.LogError("Failed to persist session: %v", err)
		utils.InternalServerError(c, "Failed to save session", nil)
		return
	}

	// Mirror the logged-in flag into the cookie session for route gating.
	session := sessions.Default(c)
	session.Set(sessionLoggedInKey, true)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save cookie session: %v", err)
	}

	utils.LogInfo("Login successful for %s", req.Email)
	utils.Success(c, utils.MsgLoginSuccess, gin.H{
		"user":       result.User,
		"isLoggedIn": true,
	})
}

// Logout clears the persisted session and the cookie mirror
func (a *App) Logout(c *gin.Context) {
	utils.LogInfo("Logout called")

	if err := a.Auth.Logout(); err != nil {
		utils.LogError("Failed to clear session: %v", err)
		utils.InternalServerError(c, "Failed to clear session", nil)
		return
	}

	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear cookie session: %v", err)
	}

	utils.Success(c, utils.MsgLogoutSuccess, nil)
}

// Me reports the stored session state for view chrome
func (a *App) Me(c *gin.Context) {
	if !a.Auth.IsLoggedIn() {
		utils.RedirectToLogin(c)
		return
	}
	utils.Success(c, "Session active", gin.H{
		"user":       a.Auth.User(),
		"isLoggedIn": true,
	})
}
