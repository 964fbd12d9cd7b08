package service

import (
	"context"
	"errors"
	"testing"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPlaylistCreateTrimsFields(t *testing.T) {
	playlists := newFakePlaylistStore()
	actor := primitive.NewObjectID()
	svc := NewPlaylistService(playlists, newFakeVideoStore())

	playlist, err := svc.Create(context.Background(), actor, &dto.PlaylistCreateRequest{
		Name:        "  watch later  ",
		Description: " queue ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if playlist.Name != "watch later" || playlist.Description != "queue" {
		t.Fatalf("fields not trimmed: %q %q", playlist.Name, playlist.Description)
	}
	if playlist.Owner != actor {
		t.Fatal("owner not set from actor")
	}
	if playlist.Videos == nil || len(playlist.Videos) != 0 {
		t.Fatal("videos must start as an empty list")
	}
}

func TestPlaylistAddVideo(t *testing.T) {
	playlists := newFakePlaylistStore()
	videos := newFakeVideoStore()
	owner := primitive.NewObjectID()
	playlist := playlists.add(&model.Playlist{Owner: owner})
	videoID := videos.add()
	svc := NewPlaylistService(playlists, videos)

	if err := svc.AddVideo(context.Background(), owner, playlist.ID, videoID); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(playlist.Videos) != 1 {
		t.Fatalf("expected 1 video, got %d", len(playlist.Videos))
	}

	err := svc.AddVideo(context.Background(), owner, playlist.ID, videoID)
	if !errors.Is(err, ErrVideoAlreadyInPlaylist) {
		t.Fatalf("duplicate add: expected ErrVideoAlreadyInPlaylist, got %v", err)
	}
	if len(playlist.Videos) != 1 {
		t.Fatalf("duplicate add grew the list to %d", len(playlist.Videos))
	}
}

func TestPlaylistAddUnknownVideo(t *testing.T) {
	playlists := newFakePlaylistStore()
	owner := primitive.NewObjectID()
	playlist := playlists.add(&model.Playlist{Owner: owner})
	svc := NewPlaylistService(playlists, newFakeVideoStore())

	err := svc.AddVideo(context.Background(), owner, playlist.ID, primitive.NewObjectID())
	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestPlaylistRemoveAbsentVideo(t *testing.T) {
	playlists := newFakePlaylistStore()
	owner := primitive.NewObjectID()
	playlist := playlists.add(&model.Playlist{Owner: owner})
	svc := NewPlaylistService(playlists, newFakeVideoStore())

	err := svc.RemoveVideo(context.Background(), owner, playlist.ID, primitive.NewObjectID())
	if !errors.Is(err, ErrVideoNotInPlaylist) {
		t.Fatalf("expected ErrVideoNotInPlaylist, got %v", err)
	}
}

func TestPlaylistMutationsByNonOwner(t *testing.T) {
	playlists := newFakePlaylistStore()
	videos := newFakeVideoStore()
	playlist := playlists.add(&model.Playlist{Owner: primitive.NewObjectID()})
	videoID := videos.add()
	stranger := primitive.NewObjectID()
	svc := NewPlaylistService(playlists, videos)

	if err := svc.AddVideo(context.Background(), stranger, playlist.ID, videoID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("add by stranger: expected ErrNotOwner, got %v", err)
	}
	if err := svc.Delete(context.Background(), stranger, playlist.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("delete by stranger: expected ErrNotOwner, got %v", err)
	}
	if _, ok := playlists.playlists[playlist.ID]; !ok {
		t.Fatal("playlist deleted by stranger")
	}
}

func TestPlaylistMissingBeforeOwnership(t *testing.T) {
	svc := NewPlaylistService(newFakePlaylistStore(), newFakeVideoStore())

	err := svc.Delete(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	if !errors.Is(err, ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
	}
}
