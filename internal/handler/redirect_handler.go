package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voxbill/internal/config"
)

// RedirectHandler sends UI routes to the hosted frontend. Without a configured
// frontend URL it answers with a JSON hint instead.
type RedirectHandler struct {
	frontendURL string
}

// NewRedirectHandler creates a new RedirectHandler.
func NewRedirectHandler(cfg *config.FrontendConfig) *RedirectHandler {
	return &RedirectHandler{frontendURL: cfg.URL}
}

// To returns a handler redirecting to the given frontend page.
func (h *RedirectHandler) To(page string, hint string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.frontendURL != "" {
			c.Redirect(http.StatusFound, h.frontendURL+page)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": hint})
	}
}
