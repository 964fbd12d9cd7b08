// Package service holds the business rules. Services depend on small
// store interfaces so the mongo repositories can be swapped for fakes
// in tests; the concrete implementations live in internal/repository.
package service

import (
	"context"
	"io"

	"vidtube/internal/api/dto"
	"vidtube/internal/infra/kafka"
	"vidtube/internal/model"
	"vidtube/internal/pipeline"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore persists user identities.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// VideoStore reads the videos collection. Video lifecycle is owned by
// the video management service.
type VideoStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Video, error)
	ListByChannel(ctx context.Context, channelID primitive.ObjectID, page pipeline.Page) ([]model.VideoWithChannel, error)
	StatsByOwner(ctx context.Context, channelID primitive.ObjectID) (totalViews, totalVideos int64, err error)
}

// CommentStore persists comments.
type CommentStore interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*model.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByVideo(ctx context.Context, videoID primitive.ObjectID, page pipeline.Page) ([]model.CommentWithAuthor, error)
	CountReceivedByChannel(ctx context.Context, channelID primitive.ObjectID) (int64, error)
	DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) (int64, error)
}

// TweetStore persists tweets.
type TweetStore interface {
	Create(ctx context.Context, tweet *model.Tweet) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Tweet, error)
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID, page pipeline.Page) ([]model.Tweet, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*model.Tweet, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error)
}

// PlaylistStore persists playlists.
type PlaylistStore interface {
	Create(ctx context.Context, playlist *model.Playlist) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Playlist, error)
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID, page pipeline.Page) ([]model.Playlist, error)
	UpdateDetails(ctx context.Context, id primitive.ObjectID, name, description string) (*model.Playlist, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddVideo(ctx context.Context, id, videoID primitive.ObjectID) (bool, error)
	RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) (bool, error)
	GetByIDWithVideos(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	PullVideoFromAll(ctx context.Context, videoID primitive.ObjectID) (int64, error)
}

// LikeStore persists like marker records.
type LikeStore interface {
	DeleteByTarget(ctx context.Context, likedBy primitive.ObjectID, kind model.TargetKind, targetID primitive.ObjectID) (*model.Like, error)
	Insert(ctx context.Context, like *model.Like) error
	GetByTarget(ctx context.Context, likedBy primitive.ObjectID, kind model.TargetKind, targetID primitive.ObjectID) (*model.Like, error)
	ListLikedVideos(ctx context.Context, likedBy primitive.ObjectID, page pipeline.Page) ([]model.LikedVideo, error)
	CountReceivedByChannel(ctx context.Context, kind model.TargetKind, channelID primitive.ObjectID) (int64, error)
	DeleteAllForTarget(ctx context.Context, kind model.TargetKind, targetID primitive.ObjectID) (int64, error)
}

// SubscriptionStore counts channel subscriptions.
type SubscriptionStore interface {
	CountByChannel(ctx context.Context, channelID primitive.ObjectID) (int64, error)
}

// StatsCache caches dashboard stats per channel.
type StatsCache interface {
	GetStats(ctx context.Context, channelID string) (*dto.ChannelStats, bool)
	SetStats(ctx context.Context, channelID string, stats *dto.ChannelStats)
}

// MediaUploader stores user images on the external media host and
// returns their public URL.
type MediaUploader interface {
	UploadImage(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error)
}

// EventPublisher announces deletions for asynchronous cascade cleanup.
type EventPublisher interface {
	PublishCleanup(ctx context.Context, ev *kafka.CleanupEvent) error
}
