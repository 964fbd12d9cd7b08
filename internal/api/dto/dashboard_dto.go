package dto

import "vidtube/internal/model"

// ChannelStats aggregates a channel's public counters. All counts are
// "received" metrics: likes and comments on the channel's own content.
type ChannelStats struct {
	TotalViews        int64 `json:"totalViews"`
	TotalVideos       int64 `json:"totalVideos"`
	TotalSubscribers  int64 `json:"totalSubscribers"`
	TotalTweets       int64 `json:"totalTweets"`
	TotalComments     int64 `json:"totalComments"`
	TotalVideoLikes   int64 `json:"totalVideoLikes"`
	TotalCommentLikes int64 `json:"totalCommentLikes"`
	TotalTweetLikes   int64 `json:"totalTweetLikes"`
}

// ChannelVideosData is a page of a channel's published videos.
type ChannelVideosData struct {
	Videos []model.VideoWithChannel `json:"videos"`
	Page   int                      `json:"page"`
	Limit  int                      `json:"limit"`
}
