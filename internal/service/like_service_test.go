package service

import (
	"context"
	"errors"
	"testing"

	"vidtube/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func newLikeService(likes *fakeLikeStore, videos *fakeVideoStore) *LikeService {
	return NewLikeService(likes, videos, newFakeCommentStore(), newFakeTweetStore())
}

func TestLikeToggleRoundTrip(t *testing.T) {
	likes := newFakeLikeStore()
	videos := newFakeVideoStore()
	videoID := videos.add()
	actor := primitive.NewObjectID()
	svc := newLikeService(likes, videos)

	first, err := svc.Toggle(context.Background(), actor, model.TargetVideo, videoID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !first.Liked {
		t.Fatal("first toggle should end Liked")
	}
	if len(likes.likes) != 1 {
		t.Fatalf("expected 1 like record, got %d", len(likes.likes))
	}

	second, err := svc.Toggle(context.Background(), actor, model.TargetVideo, videoID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.Liked {
		t.Fatal("second toggle should end NotLiked")
	}
	if len(likes.likes) != 0 {
		t.Fatalf("expected 0 like records after round trip, got %d", len(likes.likes))
	}
}

func TestLikeToggleDuplicateKeyMeansLiked(t *testing.T) {
	likes := newFakeLikeStore()
	videos := newFakeVideoStore()
	videoID := videos.add()
	actor := primitive.NewObjectID()

	// Simulate losing the insert race: the delete arm misses, then
	// the unique index rejects the insert because a concurrent toggle
	// already created the record.
	winner := &model.Like{
		LikedBy:    actor,
		TargetKind: model.TargetVideo,
		TargetID:   videoID,
	}
	likes.likes[likeKey{actor, model.TargetVideo, videoID}] = winner
	likes.deleteMiss = true
	likes.insertErr = mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000}},
	}
	svc := newLikeService(likes, videos)

	got, err := svc.Toggle(context.Background(), actor, model.TargetVideo, videoID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !got.Liked {
		t.Fatal("duplicate-key insert must report Liked")
	}
	if got.Like != winner {
		t.Fatal("toggle should surface the winner's record")
	}
}

func TestLikeToggleUnknownTarget(t *testing.T) {
	svc := newLikeService(newFakeLikeStore(), newFakeVideoStore())

	_, err := svc.Toggle(context.Background(), primitive.NewObjectID(), model.TargetVideo, primitive.NewObjectID())
	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}

	_, err = svc.Toggle(context.Background(), primitive.NewObjectID(), model.TargetKind("channel"), primitive.NewObjectID())
	if !errors.Is(err, ErrInvalidLikeTarget) {
		t.Fatalf("expected ErrInvalidLikeTarget, got %v", err)
	}
}
