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

var ErrTweetNotFound = errors.New("tweet not found")

type TweetService struct {
	tweets TweetStore
	users  UserStore
	events EventPublisher
}

func NewTweetService(tweets TweetStore, users UserStore, events EventPublisher) *TweetService {
	return &TweetService{tweets: tweets, users: users, events: events}
}

// Create posts a tweet.
func (s *TweetService) Create(ctx context.Context, actorID primitive.ObjectID, req *dto.TweetCreateRequest) (*model.Tweet, error) {
	tweet := &model.Tweet{
		Owner:   actorID,
		Content: req.Content,
	}

	if err := s.tweets.Create(ctx, tweet); err != nil {
		return nil, err
	}

	return tweet, nil
}

// ListByUser returns a page of a user's tweets.
func (s *TweetService) ListByUser(ctx context.Context, userID primitive.ObjectID, page pipeline.Page) (*dto.TweetListData, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	tweets, err := s.tweets.ListByOwner(ctx, userID, page)
	if err != nil {
		return nil, err
	}

	return &dto.TweetListData{
		Tweets: tweets,
		Page:   page.Number,
		Limit:  page.Size,
	}, nil
}

// Update edits a tweet. Owner only.
func (s *TweetService) Update(ctx context.Context, tweetID, actorID primitive.ObjectID, req *dto.TweetUpdateRequest) (*model.Tweet, error) {
	tweet, err := s.tweets.GetByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTweetNotFound
		}
		return nil, err
	}

	if err := requireOwner(tweet, actorID); err != nil {
		return nil, err
	}

	return s.tweets.UpdateContent(ctx, tweetID, req.Content)
}

// Delete removes a tweet and announces it for like cleanup. Owner
// only.
func (s *TweetService) Delete(ctx context.Context, tweetID, actorID primitive.ObjectID) (*model.Tweet, error) {
	tweet, err := s.tweets.GetByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTweetNotFound
		}
		return nil, err
	}

	if err := requireOwner(tweet, actorID); err != nil {
		return nil, err
	}

	if err := s.tweets.Delete(ctx, tweetID); err != nil {
		return nil, err
	}

	if err := s.events.PublishCleanup(ctx, &kafka.CleanupEvent{
		Resource: string(model.TargetTweet),
		ID:       tweetID.Hex(),
	}); err != nil {
		logger.Warn("Failed to publish tweet cleanup event",
			zap.String("tweet_id", tweetID.Hex()),
			zap.Error(err),
		)
	}

	return tweet, nil
}
