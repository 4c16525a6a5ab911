package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/skill"
	"portfolio-backend/internal/domains/skill/service"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
)

type SkillHandler struct {
	service service.Service
}

func NewSkillHandler(svc service.Service) *SkillHandler {
	return &SkillHandler{service: svc}
}

// List handles GET /api/v1/skills. Public. ?grouped=true returns
// category display groups instead of the flat list.
func (h *SkillHandler) List(c *gin.Context) {
	if c.Query("grouped") == "true" {
		groups, err := h.service.ListGrouped(c.Request.Context())
		if err != nil {
			response.InternalServerError(c, "failed to load skills")
			return
		}
		response.Success(c, http.StatusOK, groups)
		return
	}

	entities, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to load skills")
		return
	}

	response.Success(c, http.StatusOK, entities)
}

// Upsert handles PUT /api/v1/skills. Auth required; the owner comes
// from the token, not the body.
func (h *SkillHandler) Upsert(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req skill.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	req.UserID = userID

	persisted, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, skill.ErrSkillNotFound):
			response.NotFound(c, "skill not found")
		case errors.Is(err, skill.ErrNotOwner):
			response.Forbidden(c, "skill belongs to another user")
		default:
			response.UnprocessableEntity(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, persisted)
}

// Delete handles DELETE /api/v1/skills/:id. Auth required.
func (h *SkillHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, skill.ErrSkillNotFound):
			response.NotFound(c, "skill not found")
		case errors.Is(err, skill.ErrNotOwner):
			response.Forbidden(c, "skill belongs to another user")
		default:
			response.InternalServerError(c, "failed to delete skill")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
