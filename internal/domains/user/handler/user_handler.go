package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/user"
	"portfolio-backend/internal/domains/user/service"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
)

const maxAvatarBytes = 5 << 20

type UserHandler struct {
	service service.Service
}

func NewUserHandler(svc service.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// Login handles POST /api/v1/auth/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidCredentials),
			errors.Is(err, user.ErrEmailNotConfirmed):
			response.Unauthorized(c, err.Error())
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Logout handles POST /api/v1/auth/logout. Tokens are stateless; the
// client discards them and the session ends.
func (h *UserHandler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"message": "signed out"})
}

// Session handles GET /api/v1/auth/session.
func (h *UserHandler) Session(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	session, err := h.service.Session(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Unauthorized(c, "session no longer valid")
			return
		}
		response.InternalServerError(c, "failed to resolve session")
		return
	}

	response.Success(c, http.StatusOK, session)
}

// GetProfile handles GET /api/v1/profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			response.NotFound(c, "profile not found")
			return
		}
		response.InternalServerError(c, "failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/v1/profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// UploadAvatar handles POST /api/v1/profile/avatar with a multipart
// "file" field.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
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

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes+1))
	if err != nil {
		response.BadRequest(c, "cannot read uploaded file")
		return
	}

	profile, err := h.service.UploadAvatar(c.Request.Context(), userID, data)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			response.NotFound(c, "profile not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, profile)
}
