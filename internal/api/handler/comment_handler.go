package handler

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List GET /api/v1/videos/:video_id/comments
func (h *CommentHandler) List(c *gin.Context) {
	videoID, err := parseObjectIDParam(c, "video_id")
	if err != nil {
		response.BadRequest(c, "invalid video id")
		return
	}
	page := parsePagination(c)

	data, err := h.commentService.ListByVideo(c.Request.Context(), videoID, page)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "comments fetched", data)
}

// Create POST /api/v1/videos/:video_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	videoID, err := parseObjectIDParam(c, "video_id")
	if err != nil {
		response.BadRequest(c, "invalid video id")
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	comment, err := h.commentService.Create(c.Request.Context(), currentUserID, videoID, &req)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.Created(c, "comment posted", comment)
}

// Update PATCH /api/v1/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	commentID, err := parseObjectIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	var req dto.CommentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	comment, err := h.commentService.Update(c.Request.Context(), commentID, currentUserID, &req)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "comment updated", comment)
}

// Delete DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := parseObjectIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	comment, err := h.commentService.Delete(c.Request.Context(), commentID, currentUserID)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "comment deleted", comment)
}

func handleCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrCommentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNotOwner):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("Comment operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, please try again later")
	}
}
