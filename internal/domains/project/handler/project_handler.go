package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/domains/project/service"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
)

// maxUploadBytes caps the multipart read before image validation runs.
const maxUploadBytes = 5 << 20

type ProjectHandler struct {
	service service.Service
}

func NewProjectHandler(svc service.Service) *ProjectHandler {
	return &ProjectHandler{service: svc}
}

// List handles GET /api/v1/projects. Anonymous visitors see published
// projects only; an authenticated owner sees drafts too.
func (h *ProjectHandler) List(c *gin.Context) {
	_, authenticated := middleware.UserIDFromContext(c)

	entities, err := h.service.List(c.Request.Context(), authenticated)
	if err != nil {
		response.InternalServerError(c, "failed to load projects")
		return
	}

	response.Success(c, http.StatusOK, entities)
}

// GetBySlug handles GET /api/v1/projects/:slug.
func (h *ProjectHandler) GetBySlug(c *gin.Context) {
	entity, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			response.NotFound(c, "project not found")
			return
		}
		response.InternalServerError(c, "failed to load project")
		return
	}

	response.Success(c, http.StatusOK, entity)
}

// Create handles POST /api/v1/projects. Auth required.
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req project.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	req.UserID = userID

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, project.ErrDuplicateSlug) {
			response.Conflict(c, err.Error())
			return
		}
		response.UnprocessableEntity(c, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Update handles PUT /api/v1/projects/:id. Auth required.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	var req project.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, project.ErrProjectNotFound):
			response.NotFound(c, "project not found")
		case errors.Is(err, project.ErrDuplicateSlug):
			response.Conflict(c, err.Error())
		default:
			response.UnprocessableEntity(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/projects/:id. Auth required. Removes
// the row, then the projects/<slug>/ media folder.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			response.NotFound(c, "project not found")
			return
		}
		response.InternalServerError(c, "failed to delete project")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// UploadImage handles POST /api/v1/projects/:id/images/:index with a
// multipart "file" field. Auth required. The payload is decoded
// server-side; the declared MIME type is ignored.
func (h *ProjectHandler) UploadImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "invalid image index")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file field is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "cannot read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		response.BadRequest(c, "cannot read uploaded file")
		return
	}

	entity, err := h.service.UploadImage(c.Request.Context(), id, index, data)
	if err != nil {
		switch {
		case errors.Is(err, project.ErrProjectNotFound):
			response.NotFound(c, "project not found")
		case errors.Is(err, project.ErrInvalidImageIdx):
			response.BadRequest(c, err.Error())
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, entity)
}
