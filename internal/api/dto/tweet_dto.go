package dto

import "vidtube/internal/model"

// TweetCreateRequest is the payload for posting a tweet.
type TweetCreateRequest struct {
	Content string `json:"content" binding:"required,min=1,max=280"`
}

// TweetUpdateRequest is the payload for editing a tweet.
type TweetUpdateRequest struct {
	Content string `json:"content" binding:"required,min=1,max=280"`
}

// TweetListData is a page of a user's tweets.
type TweetListData struct {
	Tweets []model.Tweet `json:"tweets"`
	Page   int           `json:"page"`
	Limit  int           `json:"limit"`
}
