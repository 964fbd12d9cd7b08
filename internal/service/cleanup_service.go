package service

import (
	"context"
	"fmt"

	"vidtube/internal/infra/kafka"
	"vidtube/internal/model"
	"vidtube/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CleanupService removes the records that reference a deleted
// resource. It runs in the worker process, consuming the cleanup
// events published when a comment, tweet or video is deleted. Every
// store call is idempotent, so a redelivered event is harmless.
type CleanupService struct {
	comments  CommentStore
	likes     LikeStore
	playlists PlaylistStore
}

func NewCleanupService(comments CommentStore, likes LikeStore, playlists PlaylistStore) *CleanupService {
	return &CleanupService{comments: comments, likes: likes, playlists: playlists}
}

// Handle applies the cascade for one cleanup event.
func (s *CleanupService) Handle(ctx context.Context, ev *kafka.CleanupEvent) error {
	id, err := primitive.ObjectIDFromHex(ev.ID)
	if err != nil {
		return fmt.Errorf("cleanup event with bad id %q: %w", ev.ID, err)
	}

	switch model.TargetKind(ev.Resource) {
	case model.TargetComment:
		return s.cleanTarget(ctx, model.TargetComment, id)
	case model.TargetTweet:
		return s.cleanTarget(ctx, model.TargetTweet, id)
	case model.TargetVideo:
		return s.cleanVideo(ctx, id)
	default:
		return fmt.Errorf("unknown cleanup resource %q", ev.Resource)
	}
}

func (s *CleanupService) cleanTarget(ctx context.Context, kind model.TargetKind, id primitive.ObjectID) error {
	deleted, err := s.likes.DeleteAllForTarget(ctx, kind, id)
	if err != nil {
		return err
	}
	logger.Info("cleaned likes for deleted target",
		zap.String("kind", string(kind)),
		zap.String("id", id.Hex()),
		zap.Int64("deleted", deleted))
	return nil
}

// cleanVideo removes a deleted video's comments, likes and playlist
// references.
func (s *CleanupService) cleanVideo(ctx context.Context, id primitive.ObjectID) error {
	comments, err := s.comments.DeleteByVideo(ctx, id)
	if err != nil {
		return err
	}
	likes, err := s.likes.DeleteAllForTarget(ctx, model.TargetVideo, id)
	if err != nil {
		return err
	}
	pulled, err := s.playlists.PullVideoFromAll(ctx, id)
	if err != nil {
		return err
	}
	logger.Info("cleaned up deleted video",
		zap.String("id", id.Hex()),
		zap.Int64("comments", comments),
		zap.Int64("likes", likes),
		zap.Int64("playlists", pulled))
	return nil
}
