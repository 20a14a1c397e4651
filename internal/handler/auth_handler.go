package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hecho/catalog_api/internal/middleware"
	"github.com/hecho/catalog_api/internal/service"
	"github.com/hecho/catalog_api/internal/utils"
)

// AuthHandler handles admin authentication.
type AuthHandler struct {
	auth        *service.AuthService
	rateLimiter *middleware.InvalidLoginRateLimiter
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		auth:        auth,
		rateLimiter: middleware.NewInvalidLoginRateLimiter(),
	}
}

// Login authenticates an admin and returns a session token.
// POST /v1/admin/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Email and password are required")
		return
	}

	token, user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		ip := c.ClientIP()
		if !h.rateLimiter.Allow(ip) {
			utils.Error(c, 429, "TOO_MANY_REQUESTS", "Too many failed login attempts")
			return
		}
		if err == utils.ErrInvalidCredentials {
			utils.Error(c, 401, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		log.Error().Err(err).Msg("Login failed")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to process login")
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}
