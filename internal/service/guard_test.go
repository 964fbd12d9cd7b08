package service

import (
	"errors"
	"testing"

	"vidtube/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRequireOwner(t *testing.T) {
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()
	tweet := &model.Tweet{ID: primitive.NewObjectID(), Owner: owner}

	if err := requireOwner(tweet, owner); err != nil {
		t.Fatalf("owner rejected: %v", err)
	}
	if err := requireOwner(tweet, other); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("non-owner allowed, got %v", err)
	}
}
