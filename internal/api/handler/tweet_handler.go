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

type TweetHandler struct {
	tweetService *service.TweetService
}

func NewTweetHandler(tweetService *service.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

// Create POST /api/v1/tweets
func (h *TweetHandler) Create(c *gin.Context) {
	var req dto.TweetCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	tweet, err := h.tweetService.Create(c.Request.Context(), currentUserID, &req)
	if err != nil {
		handleTweetError(c, err)
		return
	}

	response.Created(c, "tweet posted", tweet)
}

// ListByUser GET /api/v1/tweets/user/:user_id
func (h *TweetHandler) ListByUser(c *gin.Context) {
	userID, err := parseObjectIDParam(c, "user_id")
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}
	page := parsePagination(c)

	data, err := h.tweetService.ListByUser(c.Request.Context(), userID, page)
	if err != nil {
		handleTweetError(c, err)
		return
	}

	response.OK(c, "tweets fetched", data)
}

// Update PATCH /api/v1/tweets/:id
func (h *TweetHandler) Update(c *gin.Context) {
	tweetID, err := parseObjectIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid tweet id")
		return
	}

	var req dto.TweetUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	tweet, err := h.tweetService.Update(c.Request.Context(), tweetID, currentUserID, &req)
	if err != nil {
		handleTweetError(c, err)
		return
	}

	response.OK(c, "tweet updated", tweet)
}

// Delete DELETE /api/v1/tweets/:id
func (h *TweetHandler) Delete(c *gin.Context) {
	tweetID, err := parseObjectIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid tweet id")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	tweet, err := h.tweetService.Delete(c.Request.Context(), tweetID, currentUserID)
	if err != nil {
		handleTweetError(c, err)
		return
	}

	response.OK(c, "tweet deleted", tweet)
}

func handleTweetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTweetNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNotOwner):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("Tweet operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, please try again later")
	}
}
