package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/princeprakhar/portfolio-backend/internal/api/middleware"
	"github.com/princeprakhar/portfolio-backend/internal/config"
	"github.com/princeprakhar/portfolio-backend/internal/services"
	"github.com/princeprakhar/portfolio-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// Login sets the session cookie used by the admin panel and also returns the
// token for API clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Username and password are required")
		return
	}

	token, expiresAt, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.SendUnauthorized(c, "Invalid username or password")
			return
		}
		utils.SendInternalError(c, "Login failed", err)
		return
	}

	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", h.cfg.IsProduction(), true)

	utils.SendSuccess(c, "Login successful", gin.H{
		"token":      token,
		"expires_at": expiresAt.Unix(),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.cfg.IsProduction(), true)
	utils.SendSuccess(c, "Logged out successfully", nil)
}

// GetSession reports the current session; the admin panel calls it on load
// to decide between the login page and the dashboard.
func (h *AuthHandler) GetSession(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || token == "" {
		utils.SendUnauthorized(c, "No active session")
		return
	}

	session, err := h.authService.ValidateSession(token)
	if err != nil {
		utils.SendUnauthorized(c, "Invalid or expired session")
		return
	}

	utils.SendSuccess(c, "Session is valid", session)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req services.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Current and new passwords are required")
		return
	}

	username := c.GetString("admin_username")
	err := h.authService.ChangePassword(c.Request.Context(), username, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWeakPassword):
			utils.SendValidationError(c, "Password must be at least 8 characters")
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.SendUnauthorized(c, "Current password is incorrect")
		default:
			utils.SendInternalError(c, "Failed to change password", err)
		}
		return
	}

	utils.SendSuccess(c, "Password changed successfully", nil)
}
