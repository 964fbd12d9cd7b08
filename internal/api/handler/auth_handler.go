package handler

import (
	"errors"
	"mime/multipart"

	"vidtube/internal/api/dto"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 5MB per image part.
const maxImageSize = 5 * 1024 * 1024

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register POST /api/v1/users/register
// Multipart: fullName, username, email, password plus an avatar file
// and an optional coverImage file.
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, "invalid registration form", err.Error())
		return
	}

	avatar, closeAvatar, err := openImagePart(c, "avatar")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if closeAvatar != nil {
		defer closeAvatar()
	}

	cover, closeCover, err := openImagePart(c, "coverImage")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if closeCover != nil {
		defer closeCover()
	}

	info, err := h.authService.Register(c.Request.Context(), &form, avatar, cover)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.Created(c, "user registered", info)
}

// Login POST /api/v1/users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}

	data, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "login successful", data)
}

// Me GET /api/v1/users/me
func (h *AuthHandler) Me(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.authService.Me(c.Request.Context(), currentUserID)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "profile fetched", info)
}

// openImagePart opens one optional image part. A missing part is not
// an error here; the service decides which parts are required.
func openImagePart(c *gin.Context, name string) (*service.ImageFile, func(), error) {
	header, err := c.FormFile(name)
	if err != nil {
		if errors.Is(err, multipart.ErrMessageTooLarge) {
			return nil, nil, errors.New(name + " image too large")
		}
		return nil, nil, nil
	}
	if header.Size == 0 || header.Size > maxImageSize {
		return nil, nil, errors.New(name + " image size invalid (max 5MB)")
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, errors.New("failed to open " + name + " image")
	}

	return &service.ImageFile{
		Reader:      file,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}, func() { file.Close() }, nil
}

func handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFieldsRequired),
		errors.Is(err, service.ErrAvatarRequired):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUserExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	default:
		logger.Error("Auth operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, please try again later")
	}
}
