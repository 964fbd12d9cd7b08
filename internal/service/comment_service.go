package service

import (
	"context"
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/infra/kafka"
	"vidtube/internal/model"
	"vidtube/internal/pipeline"
	"vidtube/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	ErrVideoNotFound   = errors.New("video not found")
	ErrCommentNotFound = errors.New("comment not found")
)

type CommentService struct {
	comments CommentStore
	videos   VideoStore
	events   EventPublisher
}

func NewCommentService(comments CommentStore, videos VideoStore, events EventPublisher) *CommentService {
	return &CommentService{comments: comments, videos: videos, events: events}
}

// ListByVideo returns a page of a video's comments with the author
// projection embedded.
func (s *CommentService) ListByVideo(ctx context.Context, videoID primitive.ObjectID, page pipeline.Page) (*dto.CommentListData, error) {
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comments, err := s.comments.ListByVideo(ctx, videoID, page)
	if err != nil {
		return nil, err
	}

	return &dto.CommentListData{
		Comments: comments,
		Page:     page.Number,
		Limit:    page.Size,
	}, nil
}

// Create posts a comment on a video.
func (s *CommentService) Create(ctx context.Context, actorID, videoID primitive.ObjectID, req *dto.CommentCreateRequest) (*model.Comment, error) {
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		Video:   videoID,
		Owner:   actorID,
		Content: req.Content,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// Update edits a comment. Owner only.
func (s *CommentService) Update(ctx context.Context, commentID, actorID primitive.ObjectID, req *dto.CommentUpdateRequest) (*model.Comment, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if err := requireOwner(comment, actorID); err != nil {
		return nil, err
	}

	return s.comments.UpdateContent(ctx, commentID, req.Content)
}

// Delete removes a comment and announces it for like cleanup. Owner
// only.
func (s *CommentService) Delete(ctx context.Context, commentID, actorID primitive.ObjectID) (*model.Comment, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if err := requireOwner(comment, actorID); err != nil {
		return nil, err
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return nil, err
	}

	if err := s.events.PublishCleanup(ctx, &kafka.CleanupEvent{
		Resource: string(model.TargetComment),
		ID:       commentID.Hex(),
	}); err != nil {
		// The comment is gone; stale likes are pruned on the next
		// event for this target or by a periodic sweep.
		logger.Warn("Failed to publish comment cleanup event",
			zap.String("comment_id", commentID.Hex()),
			zap.Error(err),
		)
	}

	return comment, nil
}
