package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/introduction"
	"portfolio-backend/internal/domains/introduction/service"
	"portfolio-backend/internal/shared/response"
)

type IntroductionHandler struct {
	service service.Service
}

func NewIntroductionHandler(svc service.Service) *IntroductionHandler {
	return &IntroductionHandler{service: svc}
}

// Get handles GET /api/v1/introduction. Public. Returns null data
// when no introduction exists yet.
func (h *IntroductionHandler) Get(c *gin.Context) {
	entity, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to load introduction")
		return
	}

	response.Success(c, http.StatusOK, entity)
}

// Upsert handles PUT /api/v1/introduction. Auth required.
func (h *IntroductionHandler) Upsert(c *gin.Context) {
	var req introduction.UpsertRequest
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
