package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/pipeline"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrPlaylistNotFound       = errors.New("playlist not found")
	ErrVideoAlreadyInPlaylist = errors.New("video already in playlist")
	ErrVideoNotInPlaylist     = errors.New("video not in playlist")
)

type PlaylistService struct {
	playlists PlaylistStore
	videos    VideoStore
}

func NewPlaylistService(playlists PlaylistStore, videos VideoStore) *PlaylistService {
	return &PlaylistService{playlists: playlists, videos: videos}
}

func (s *PlaylistService) Create(ctx context.Context, actorID primitive.ObjectID, req *dto.PlaylistCreateRequest) (*model.Playlist, error) {
	now := time.Now()
	playlist := &model.Playlist{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Videos:      []primitive.ObjectID{},
		Owner:       actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// ListByUser lists any user's playlists; playlists are public, so no
// ownership check applies here.
func (s *PlaylistService) ListByUser(ctx context.Context, userID primitive.ObjectID, page pipeline.Page) (*dto.PlaylistListData, error) {
	playlists, err := s.playlists.ListByOwner(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return &dto.PlaylistListData{
		Playlists: playlists,
		Page:      page.Number,
		Limit:     page.Size,
	}, nil
}

// GetByID returns the playlist with its video documents resolved.
func (s *PlaylistService) GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	playlist, err := s.playlists.GetByIDWithVideos(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) Update(ctx context.Context, actorID, id primitive.ObjectID, req *dto.PlaylistUpdateRequest) (*model.Playlist, error) {
	playlist, err := s.getOwned(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	updated, err := s.playlists.UpdateDetails(ctx, playlist.ID, strings.TrimSpace(req.Name), strings.TrimSpace(req.Description))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *PlaylistService) Delete(ctx context.Context, actorID, id primitive.ObjectID) error {
	if _, err := s.getOwned(ctx, actorID, id); err != nil {
		return err
	}
	if err := s.playlists.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPlaylistNotFound
		}
		return err
	}
	return nil
}

// AddVideo appends a video to an owned playlist. The store update is
// conditional on the video being absent, so a duplicate add reports
// ErrVideoAlreadyInPlaylist instead of silently growing the list.
func (s *PlaylistService) AddVideo(ctx context.Context, actorID, id, videoID primitive.ObjectID) error {
	if _, err := s.getOwned(ctx, actorID, id); err != nil {
		return err
	}
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrVideoNotFound
		}
		return err
	}
	added, err := s.playlists.AddVideo(ctx, id, videoID)
	if err != nil {
		return err
	}
	if !added {
		return ErrVideoAlreadyInPlaylist
	}
	return nil
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, actorID, id, videoID primitive.ObjectID) error {
	if _, err := s.getOwned(ctx, actorID, id); err != nil {
		return err
	}
	removed, err := s.playlists.RemoveVideo(ctx, id, videoID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrVideoNotInPlaylist
	}
	return nil
}

// getOwned loads the playlist and verifies the actor owns it. A
// missing playlist is reported before ownership is considered.
func (s *PlaylistService) getOwned(ctx context.Context, actorID, id primitive.ObjectID) (*model.Playlist, error) {
	playlist, err := s.playlists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	if err := requireOwner(playlist, actorID); err != nil {
		return nil, err
	}
	return playlist, nil
}
