package dto

import "vidtube/internal/model"

// CommentCreateRequest is the payload for posting a comment.
type CommentCreateRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

// CommentUpdateRequest is the payload for editing a comment.
type CommentUpdateRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

// CommentListData is a page of a video's comments.
type CommentListData struct {
	Comments []model.CommentWithAuthor `json:"comments"`
	Page     int                       `json:"page"`
	Limit    int                       `json:"limit"`
}
