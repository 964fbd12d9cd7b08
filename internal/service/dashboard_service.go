package service

import (
	"context"
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/pipeline"
	"vidtube/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var ErrChannelNotFound = errors.New("channel not found")

type DashboardService struct {
	users    UserStore
	videos   VideoStore
	tweets   TweetStore
	comments CommentStore
	likes    LikeStore
	subs     SubscriptionStore
	cache    StatsCache
}

func NewDashboardService(users UserStore, videos VideoStore, tweets TweetStore, comments CommentStore, likes LikeStore, subs SubscriptionStore, cache StatsCache) *DashboardService {
	return &DashboardService{
		users:    users,
		videos:   videos,
		tweets:   tweets,
		comments: comments,
		likes:    likes,
		subs:     subs,
		cache:    cache,
	}
}

// Stats computes a channel's counters. All figures are "received"
// metrics: comments and likes counted here are those left on the
// channel's own content, not those the channel owner made elsewhere.
// A channel with no content reports zeros, not an error. Results are
// served from the cache when present.
func (s *DashboardService) Stats(ctx context.Context, actorID primitive.ObjectID, username string) (*dto.ChannelStats, error) {
	channelID, err := s.resolveChannel(ctx, actorID, username)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if stats, ok := s.cache.GetStats(ctx, channelID.Hex()); ok {
			return stats, nil
		}
	}

	stats := &dto.ChannelStats{}

	stats.TotalViews, stats.TotalVideos, err = s.videos.StatsByOwner(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if stats.TotalSubscribers, err = s.subs.CountByChannel(ctx, channelID); err != nil {
		return nil, err
	}
	if stats.TotalTweets, err = s.tweets.CountByOwner(ctx, channelID); err != nil {
		return nil, err
	}
	if stats.TotalComments, err = s.comments.CountReceivedByChannel(ctx, channelID); err != nil {
		return nil, err
	}
	if stats.TotalVideoLikes, err = s.likes.CountReceivedByChannel(ctx, model.TargetVideo, channelID); err != nil {
		return nil, err
	}
	if stats.TotalCommentLikes, err = s.likes.CountReceivedByChannel(ctx, model.TargetComment, channelID); err != nil {
		return nil, err
	}
	if stats.TotalTweetLikes, err = s.likes.CountReceivedByChannel(ctx, model.TargetTweet, channelID); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetStats(ctx, channelID.Hex(), stats)
	}
	return stats, nil
}

// Videos lists the channel's uploads, newest first.
func (s *DashboardService) Videos(ctx context.Context, actorID primitive.ObjectID, username string, page pipeline.Page) (*dto.ChannelVideosData, error) {
	channelID, err := s.resolveChannel(ctx, actorID, username)
	if err != nil {
		return nil, err
	}

	videos, err := s.videos.ListByChannel(ctx, channelID, page)
	if err != nil {
		return nil, err
	}
	return &dto.ChannelVideosData{
		Videos: videos,
		Page:   page.Number,
		Limit:  page.Size,
	}, nil
}

// resolveChannel maps an optional username query to a channel id,
// defaulting to the acting user's own channel.
func (s *DashboardService) resolveChannel(ctx context.Context, actorID primitive.ObjectID, username string) (primitive.ObjectID, error) {
	if username == "" {
		return actorID, nil
	}
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return primitive.NilObjectID, ErrChannelNotFound
		}
		logger.Error("resolve channel failed", zap.String("username", username), zap.Error(err))
		return primitive.NilObjectID, err
	}
	return user.ID, nil
}
