package repository

import (
	"context"
	"time"

	"vidtube/internal/model"
	"vidtube/internal/pipeline"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PlaylistRepository struct {
	col *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) *PlaylistRepository {
	return &PlaylistRepository{col: db.Collection(model.Playlist{}.CollectionName())}
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	now := time.Now()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.Videos == nil {
		playlist.Videos = []primitive.ObjectID{}
	}

	res, err := r.col.InsertOne(ctx, playlist)
	if err != nil {
		return err
	}
	playlist.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&playlist)
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// ListByOwner returns a page of a user's playlists, newest first.
func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID, page pipeline.Page) ([]model.Playlist, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(page.Offset()).
		SetLimit(page.Limit())

	cursor, err := r.col.Find(ctx, bson.D{{Key: "owner", Value: ownerID}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	playlists := make([]model.Playlist, 0)
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

// UpdateDetails renames a playlist and returns the updated document.
func (r *PlaylistRepository) UpdateDetails(ctx context.Context, id primitive.ObjectID, name, description string) (*model.Playlist, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: name},
		{Key: "description", Value: description},
		{Key: "updatedAt", Value: time.Now()},
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var playlist model.Playlist
	err := r.col.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&playlist)
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AddVideo appends a video in one conditional update: the filter
// excludes playlists already containing it, so the check and the push
// cannot interleave with a concurrent add. Returns false when the
// video was already present.
func (r *PlaylistRepository) AddVideo(ctx context.Context, id, videoID primitive.ObjectID) (bool, error) {
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "videos", Value: bson.D{{Key: "$ne", Value: videoID}}},
	}
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now()}}},
	}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// RemoveVideo pulls a video in one conditional update. Returns false
// when the video was not in the playlist.
func (r *PlaylistRepository) RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) (bool, error) {
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "videos", Value: videoID},
	}
	update := bson.D{
		{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now()}}},
	}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// GetByIDWithVideos returns a playlist with its video documents joined
// in, trimmed to the public projection.
func (r *PlaylistRepository) GetByIDWithVideos(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	stages := pipeline.New().
		Match(bson.D{{Key: "_id", Value: id}}).
		LookupMany(pipeline.Lookup{
			From:         model.Video{}.CollectionName(),
			LocalField:   "videos",
			ForeignField: "_id",
			As:           "videos",
			Fields:       []string{"title", "thumbnail", "duration", "views", "owner", "createdAt"},
		}).
		Project("name", "description", "owner", "videos", "createdAt", "updatedAt").
		Build()

	cursor, err := r.col.Aggregate(ctx, stages)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return results[0], nil
}

// PullVideoFromAll removes a deleted video from every playlist.
func (r *PlaylistRepository) PullVideoFromAll(ctx context.Context, videoID primitive.ObjectID) (int64, error) {
	update := bson.D{
		{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}},
	}

	res, err := r.col.UpdateMany(ctx, bson.D{{Key: "videos", Value: videoID}}, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
