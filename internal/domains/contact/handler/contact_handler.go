package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/domains/contact/service"
	"portfolio-backend/internal/infrastructure/email"
)

type ContactHandler struct {
	service service.Service
}

func NewContactHandler(svc service.Service) *ContactHandler {
	return &ContactHandler{service: svc}
}

// Submit handles POST /api/contact. This endpoint keeps the flat
// {message}/{error} body shape the public form consumes, not the
// versioned API envelope.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.Submit(c.Request.Context(), req); err != nil {
		if errors.Is(err, email.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "email service is not configured: missing SMTP credentials",
			})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}

func isValidationError(err error) bool {
	var ve validation.Errors
	return errors.As(err, &ve)
}
