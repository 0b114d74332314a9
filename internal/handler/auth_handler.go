package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/akronstore/akron_api/internal/middleware"
	"github.com/akronstore/akron_api/internal/service"
	"github.com/akronstore/akron_api/internal/utils"
)

// AuthHandler handles admin login and logout. Failed logins count against a
// per-IP rate limit.
type AuthHandler struct {
	authService *service.AdminAuthService
	limiter     *middleware.LoginRateLimiter
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *service.AdminAuthService, limiter *middleware.LoginRateLimiter) *AuthHandler {
	return &AuthHandler{authService: authService, limiter: limiter}
}

// Login handles POST /v1/admin/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	ip := c.ClientIP()
	if h.limiter.Blocked(ip) {
		utils.Error(c, 429, "TOO_MANY_ATTEMPTS", "Too many failed login attempts, try again later")
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			h.limiter.Fail(ip)
			utils.Error(c, 401, "INVALID_CREDENTIALS", "Senha incorreta!")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Login failed")
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{
		"token": token,
	})
}

// Logout handles POST /v1/admin/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Logout failed")
		return
	}
	utils.Success(c, 200, "Logged out", nil)
}
