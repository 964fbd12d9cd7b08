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

func TestCommentListUnknownVideo(t *testing.T) {
	svc := NewCommentService(newFakeCommentStore(), newFakeVideoStore(), &fakeEventPublisher{})

	_, err := svc.ListByVideo(context.Background(), primitive.NewObjectID(), pipeline.Page{Number: 1, Size: 10})
	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestCommentCreate(t *testing.T) {
	comments := newFakeCommentStore()
	videos := newFakeVideoStore()
	videoID := videos.add()
	actor := primitive.NewObjectID()
	svc := NewCommentService(comments, videos, &fakeEventPublisher{})

	comment, err := svc.Create(context.Background(), actor, videoID, &dto.CommentCreateRequest{Content: "first"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if comment.Owner != actor || comment.Video != videoID {
		t.Fatalf("comment refs wrong: %+v", comment)
	}
	if len(comments.comments) != 1 {
		t.Fatalf("expected 1 stored comment, got %d", len(comments.comments))
	}
}

func TestCommentUpdateByNonOwner(t *testing.T) {
	comments := newFakeCommentStore()
	videos := newFakeVideoStore()
	owner := primitive.NewObjectID()
	comment := comments.add(&model.Comment{Video: videos.add(), Owner: owner, Content: "mine"})
	svc := NewCommentService(comments, videos, &fakeEventPublisher{})

	_, err := svc.Update(context.Background(), comment.ID, primitive.NewObjectID(), &dto.CommentUpdateRequest{Content: "hijack"})
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if comment.Content != "mine" {
		t.Fatalf("comment mutated by non-owner: %q", comment.Content)
	}
	if len(comments.updated) != 0 {
		t.Fatal("store update ran for a rejected edit")
	}
}

func TestCommentUpdateMissingIsNotForbidden(t *testing.T) {
	svc := NewCommentService(newFakeCommentStore(), newFakeVideoStore(), &fakeEventPublisher{})

	_, err := svc.Update(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), &dto.CommentUpdateRequest{Content: "x"})
	if !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
	if errors.Is(err, ErrNotOwner) {
		t.Fatal("missing comment reported as ownership failure")
	}
}

func TestCommentDeletePublishesCleanup(t *testing.T) {
	comments := newFakeCommentStore()
	videos := newFakeVideoStore()
	owner := primitive.NewObjectID()
	comment := comments.add(&model.Comment{Video: videos.add(), Owner: owner, Content: "bye"})
	events := &fakeEventPublisher{}
	svc := NewCommentService(comments, videos, events)

	if _, err := svc.Delete(context.Background(), comment.ID, owner); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(comments.deleted) != 1 {
		t.Fatalf("expected 1 deletion, got %d", len(comments.deleted))
	}
	if len(events.events) != 1 {
		t.Fatalf("expected 1 cleanup event, got %d", len(events.events))
	}
	ev := events.events[0]
	if ev.Resource != string(model.TargetComment) || ev.ID != comment.ID.Hex() {
		t.Fatalf("wrong cleanup event: %+v", ev)
	}
}

func TestCommentDeleteSurvivesPublishFailure(t *testing.T) {
	comments := newFakeCommentStore()
	videos := newFakeVideoStore()
	owner := primitive.NewObjectID()
	comment := comments.add(&model.Comment{Video: videos.add(), Owner: owner})
	svc := NewCommentService(comments, videos, &fakeEventPublisher{err: errors.New("broker down")})

	if _, err := svc.Delete(context.Background(), comment.ID, owner); err != nil {
		t.Fatalf("delete failed on publish error: %v", err)
	}
	if len(comments.comments) != 0 {
		t.Fatal("comment not deleted")
	}
}
