package service

import (
	"context"
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/pipeline"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrInvalidLikeTarget = errors.New("invalid like target")

type LikeService struct {
	likes    LikeStore
	videos   VideoStore
	comments CommentStore
	tweets   TweetStore
}

func NewLikeService(likes LikeStore, videos VideoStore, comments CommentStore, tweets TweetStore) *LikeService {
	return &LikeService{likes: likes, videos: videos, comments: comments, tweets: tweets}
}

// Toggle flips the like state for (actor, target). NotLiked becomes
// Liked by inserting the marker record, Liked becomes NotLiked by
// removing it. Both arms are single atomic store operations; the
// unique index prevents a double-create when two toggles race.
func (s *LikeService) Toggle(ctx context.Context, actorID primitive.ObjectID, kind model.TargetKind, targetID primitive.ObjectID) (*dto.LikeToggleData, error) {
	if err := s.checkTargetExists(ctx, kind, targetID); err != nil {
		return nil, err
	}

	removed, err := s.likes.DeleteByTarget(ctx, actorID, kind, targetID)
	if err == nil {
		return &dto.LikeToggleData{Liked: false, Like: removed}, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	like := &model.Like{
		LikedBy:    actorID,
		TargetKind: kind,
		TargetID:   targetID,
	}

	if err := s.likes.Insert(ctx, like); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost the race against a concurrent toggle that already
			// created the record; report the existing state.
			existing, getErr := s.likes.GetByTarget(ctx, actorID, kind, targetID)
			if getErr != nil {
				return nil, getErr
			}
			return &dto.LikeToggleData{Liked: true, Like: existing}, nil
		}
		return nil, err
	}

	return &dto.LikeToggleData{Liked: true, Like: like}, nil
}

// ListLikedVideos returns the videos the acting user has liked.
func (s *LikeService) ListLikedVideos(ctx context.Context, actorID primitive.ObjectID, page pipeline.Page) (*dto.LikedVideosData, error) {
	videos, err := s.likes.ListLikedVideos(ctx, actorID, page)
	if err != nil {
		return nil, err
	}

	return &dto.LikedVideosData{
		TotalReturned: len(videos),
		Videos:        videos,
		Page:          page.Number,
		Limit:         page.Size,
	}, nil
}

func (s *LikeService) checkTargetExists(ctx context.Context, kind model.TargetKind, targetID primitive.ObjectID) error {
	var err error
	var notFound error

	switch kind {
	case model.TargetVideo:
		_, err = s.videos.GetByID(ctx, targetID)
		notFound = ErrVideoNotFound
	case model.TargetComment:
		_, err = s.comments.GetByID(ctx, targetID)
		notFound = ErrCommentNotFound
	case model.TargetTweet:
		_, err = s.tweets.GetByID(ctx, targetID)
		notFound = ErrTweetNotFound
	default:
		return ErrInvalidLikeTarget
	}

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return notFound
		}
		return err
	}
	return nil
}
