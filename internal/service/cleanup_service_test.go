package service

import (
	"context"
	"testing"

	"vidtube/internal/infra/kafka"
	"vidtube/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCleanupVideoCascade(t *testing.T) {
	comments := newFakeCommentStore()
	likes := newFakeLikeStore()
	playlists := newFakePlaylistStore()
	videoID := primitive.NewObjectID()

	comments.add(&model.Comment{Video: videoID})
	comments.add(&model.Comment{Video: primitive.NewObjectID()})
	actor := primitive.NewObjectID()
	likes.likes[likeKey{actor, model.TargetVideo, videoID}] = &model.Like{}
	playlists.add(&model.Playlist{Videos: []primitive.ObjectID{videoID}})

	svc := NewCleanupService(comments, likes, playlists)
	err := svc.Handle(context.Background(), &kafka.CleanupEvent{
		Resource: string(model.TargetVideo),
		ID:       videoID.Hex(),
	})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}

	if len(comments.comments) != 1 {
		t.Fatalf("expected only the unrelated comment to survive, got %d", len(comments.comments))
	}
	if len(likes.likes) != 0 {
		t.Fatal("video likes not removed")
	}
	for _, playlist := range playlists.playlists {
		for _, v := range playlist.Videos {
			if v == videoID {
				t.Fatal("video still referenced by a playlist")
			}
		}
	}
}

func TestCleanupCommentRemovesLikes(t *testing.T) {
	likes := newFakeLikeStore()
	commentID := primitive.NewObjectID()
	likes.likes[likeKey{primitive.NewObjectID(), model.TargetComment, commentID}] = &model.Like{}

	svc := NewCleanupService(newFakeCommentStore(), likes, newFakePlaylistStore())
	err := svc.Handle(context.Background(), &kafka.CleanupEvent{
		Resource: string(model.TargetComment),
		ID:       commentID.Hex(),
	})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(likes.likes) != 0 {
		t.Fatal("comment likes not removed")
	}
}

func TestCleanupRejectsBadEvents(t *testing.T) {
	svc := NewCleanupService(newFakeCommentStore(), newFakeLikeStore(), newFakePlaylistStore())

	if err := svc.Handle(context.Background(), &kafka.CleanupEvent{Resource: "video", ID: "not-hex"}); err == nil {
		t.Fatal("bad id accepted")
	}
	if err := svc.Handle(context.Background(), &kafka.CleanupEvent{Resource: "channel", ID: primitive.NewObjectID().Hex()}); err == nil {
		t.Fatal("unknown resource accepted")
	}
}
