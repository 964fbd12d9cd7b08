package handler

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type PlaylistHandler struct {
	playlistService *service.PlaylistService
}

func NewPlaylistHandler(playlistService *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

// Create POST /api/v1/playlists
func (h *PlaylistHandler) Create(c *gin.Context) {
	var req dto.PlaylistCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	playlist, err := h.playlistService.Create(c.Request.Context(), currentUserID, &req)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.Created(c, "playlist created", playlist)
}

// ListByUser GET /api/v1/playlists/user/:user_id
func (h *PlaylistHandler) ListByUser(c *gin.Context) {
	userID, err := parseObjectIDParam(c, "user_id")
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}
	page := parsePagination(c)

	data, err := h.playlistService.ListByUser(c.Request.Context(), userID, page)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "playlists fetched", data)
}

// Get GET /api/v1/playlists/:id
func (h *PlaylistHandler) Get(c *gin.Context) {
	playlistID, err := parseObjectIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid playlist id")
		return
	}

	playlist, err := h.playlistService.GetByID(c.Request.Context(), playlistID)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "playlist fetched", playlist)
}

// Update PATCH /api/v1/playlists/:id
func (h *PlaylistHandler) Update(c *gin.Context) {
	playlistID, err := parseObjectIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid playlist id")
		return
	}

	var req dto.PlaylistUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	playlist, err := h.playlistService.Update(c.Request.Context(), currentUserID, playlistID, &req)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "playlist updated", playlist)
}

// Delete DELETE /api/v1/playlists/:id
func (h *PlaylistHandler) Delete(c *gin.Context) {
	playlistID, err := parseObjectIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid playlist id")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.playlistService.Delete(c.Request.Context(), currentUserID, playlistID); err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "playlist deleted", nil)
}

// AddVideo PATCH /api/v1/playlists/:id/videos/:video_id
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	playlistID, videoID, ok := h.parseVideoRef(c)
	if !ok {
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.playlistService.AddVideo(c.Request.Context(), currentUserID, playlistID, videoID); err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "video added to playlist", nil)
}

// RemoveVideo DELETE /api/v1/playlists/:id/videos/:video_id
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	playlistID, videoID, ok := h.parseVideoRef(c)
	if !ok {
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.playlistService.RemoveVideo(c.Request.Context(), currentUserID, playlistID, videoID); err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "video removed from playlist", nil)
}

func (h *PlaylistHandler) parseVideoRef(c *gin.Context) (playlistID, videoID primitive.ObjectID, ok bool) {
	playlistID, err := parseObjectIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid playlist id")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	videoID, err = parseObjectIDParam(c, "video_id")
	if err != nil {
		response.BadRequest(c, "invalid video id")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	return playlistID, videoID, true
}

func handlePlaylistError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlaylistNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNotOwner):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrVideoAlreadyInPlaylist),
		errors.Is(err, service.ErrVideoNotInPlaylist):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Playlist operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, please try again later")
	}
}
