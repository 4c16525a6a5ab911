package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/experience"
	"portfolio-backend/internal/domains/experience/service"
	"portfolio-backend/internal/shared/response"
)

type ExperienceHandler struct {
	service service.Service
}

func NewExperienceHandler(svc service.Service) *ExperienceHandler {
	return &ExperienceHandler{service: svc}
}

// List handles GET /api/v1/experience. Public.
func (h *ExperienceHandler) List(c *gin.Context) {
	entities, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to load work experience")
		return
	}

	response.Success(c, http.StatusOK, entities)
}

// Upsert handles PUT /api/v1/experience. Auth required.
func (h *ExperienceHandler) Upsert(c *gin.Context) {
	var req experience.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	persisted, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, persisted)
}

// Delete handles DELETE /api/v1/experience/:id. Auth required.
func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, experience.ErrExperienceNotFound) {
			response.NotFound(c, "work experience entry not found")
			return
		}
		response.InternalServerError(c, "failed to delete work experience")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
