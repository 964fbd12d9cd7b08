package handler

import (
	"errors"

	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/model"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ToggleVideo POST /api/v1/likes/video/:id
func (h *LikeHandler) ToggleVideo(c *gin.Context) {
	h.toggle(c, model.TargetVideo)
}

// ToggleComment POST /api/v1/likes/comment/:id
func (h *LikeHandler) ToggleComment(c *gin.Context) {
	h.toggle(c, model.TargetComment)
}

// ToggleTweet POST /api/v1/likes/tweet/:id
func (h *LikeHandler) ToggleTweet(c *gin.Context) {
	h.toggle(c, model.TargetTweet)
}

func (h *LikeHandler) toggle(c *gin.Context, kind model.TargetKind) {
	targetID, err := parseObjectIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid target id")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.likeService.Toggle(c.Request.Context(), currentUserID, kind, targetID)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	message := "like removed"
	if data.Liked {
		message = "like added"
	}
	response.OK(c, message, data)
}

// ListLikedVideos GET /api/v1/likes/videos
func (h *LikeHandler) ListLikedVideos(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)
	page := parsePagination(c)

	data, err := h.likeService.ListLikedVideos(c.Request.Context(), currentUserID, page)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, "liked videos fetched", data)
}

func handleLikeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrTweetNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidLikeTarget):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Like operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, please try again later")
	}
}
