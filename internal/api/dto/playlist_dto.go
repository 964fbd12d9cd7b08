package dto

import "vidtube/internal/model"

// PlaylistCreateRequest is the payload for creating a playlist.
type PlaylistCreateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"required,min=1,max=500"`
}

// PlaylistUpdateRequest is the payload for renaming a playlist.
type PlaylistUpdateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"required,min=1,max=500"`
}

// PlaylistListData is a page of a user's playlists.
type PlaylistListData struct {
	Playlists []model.Playlist `json:"playlists"`
	Page      int              `json:"page"`
	Limit     int              `json:"limit"`
}
