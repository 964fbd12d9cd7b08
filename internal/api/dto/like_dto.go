package dto

import "vidtube/internal/model"

// LikeToggleData reports the state after a toggle, carrying the
// created record or the removed record's representation.
type LikeToggleData struct {
	Liked bool        `json:"liked"`
	Like  *model.Like `json:"like"`
}

// LikedVideosData is a page of the acting user's liked videos.
type LikedVideosData struct {
	TotalReturned int                `json:"totalReturned"`
	Videos        []model.LikedVideo `json:"videos"`
	Page          int                `json:"page"`
	Limit         int                `json:"limit"`
}
