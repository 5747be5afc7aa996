package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"voxbill/internal/domain"
	"voxbill/internal/service"
)

// ContactHandler handles the contact form relay endpoint.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactSvc}
}

// Submit handles POST /submit-contact
// @Summary Relay a contact form submission
// @Tags contact
// @Accept json
// @Produce json
// @Param request body domain.ContactSubmission true "Contact form fields"
// @Success 200 {object} APIResponse "Contact received"
// @Failure 400 {object} APIResponse "Missing required fields"
// @Router /submit-contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var msg domain.ContactSubmission
	if strings.HasPrefix(c.ContentType(), "application/json") {
		_ = c.ShouldBindJSON(&msg)
	} else {
		msg = domain.ContactSubmission{
			Name:    c.PostForm("name"),
			Email:   c.PostForm("email"),
			Subject: c.PostForm("subject"),
			Message: c.PostForm("message"),
		}
	}

	if err := h.contactService.Submit(c.Request.Context(), msg); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Contact received."})
}
