package service

import (
	"context"
	"errors"
	"testing"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/pipeline"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTweetListUnknownUser(t *testing.T) {
	svc := NewTweetService(newFakeTweetStore(), newFakeUserStore(), &fakeEventPublisher{})

	_, err := svc.ListByUser(context.Background(), primitive.NewObjectID(), pipeline.Page{Number: 1, Size: 10})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTweetUpdateByNonOwner(t *testing.T) {
	tweets := newFakeTweetStore()
	tweet := tweets.add(&model.Tweet{Owner: primitive.NewObjectID(), Content: "mine"})
	svc := NewTweetService(tweets, newFakeUserStore(), &fakeEventPublisher{})

	_, err := svc.Update(context.Background(), tweet.ID, primitive.NewObjectID(), &dto.TweetUpdateRequest{Content: "hijack"})
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if tweet.Content != "mine" {
		t.Fatalf("tweet mutated by non-owner: %q", tweet.Content)
	}
}

func TestTweetDeletePublishesCleanup(t *testing.T) {
	tweets := newFakeTweetStore()
	owner := primitive.NewObjectID()
	tweet := tweets.add(&model.Tweet{Owner: owner})
	events := &fakeEventPublisher{}
	svc := NewTweetService(tweets, newFakeUserStore(), events)

	if _, err := svc.Delete(context.Background(), tweet.ID, owner); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(events.events) != 1 || events.events[0].Resource != string(model.TargetTweet) {
		t.Fatalf("cleanup event wrong: %+v", events.events)
	}
}
