package handler

import (
	"github.com/gin-gonic/gin"

	"voxbill/internal/middleware"
)

// AuthHandler handles authenticated probe endpoints.
type AuthHandler struct{}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Protected handles GET /api/v1/protected
// @Summary Bearer token auth check
// @Description Returns the verified user identity for a valid session token
// @Tags auth
// @Produce json
// @Success 200 {object} APIResponse "Authenticated"
// @Failure 401 {object} APIResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /protected [get]
func (h *AuthHandler) Protected(c *gin.Context) {
	RespondOK(c, gin.H{
		"message": "You are authenticated",
		"user_id": middleware.GetUserID(c),
	})
}
