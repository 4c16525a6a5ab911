package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/study"
	"portfolio-backend/internal/domains/study/service"
	"portfolio-backend/internal/shared/response"
)

type StudyHandler struct {
	service service.Service
}

func NewStudyHandler(svc service.Service) *StudyHandler {
	return &StudyHandler{service: svc}
}

// List handles GET /api/v1/studies. Public.
func (h *StudyHandler) List(c *gin.Context) {
	entities, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to load studies")
		return
	}

	response.Success(c, http.StatusOK, entities)
}

// Upsert handles PUT /api/v1/studies. Auth required.
func (h *StudyHandler) Upsert(c *gin.Context) {
	var req study.UpsertRequest
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

// Delete handles DELETE /api/v1/studies/:id. Auth required.
func (h *StudyHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, study.ErrStudyNotFound) {
			response.NotFound(c, "study entry not found")
			return
		}
		response.InternalServerError(c, "failed to delete study")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
