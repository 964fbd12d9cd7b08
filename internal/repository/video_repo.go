package repository

import (
	"context"

	"vidtube/internal/model"
	"vidtube/internal/pipeline"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type VideoRepository struct {
	col *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{col: db.Collection(model.Video{}.CollectionName())}
}

func (r *VideoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Video, error) {
	var video model.Video
	err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video)
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// ListByChannel returns a channel's published videos with the owner
// joined in and trimmed to the public projection.
func (r *VideoRepository) ListByChannel(ctx context.Context, channelID primitive.ObjectID, page pipeline.Page) ([]model.VideoWithChannel, error) {
	stages := pipeline.New().
		Match(bson.D{
			{Key: "owner", Value: channelID},
			{Key: "isPublished", Value: true},
		}).
		LookupOne(pipeline.Lookup{
			From:         model.User{}.CollectionName(),
			LocalField:   "owner",
			ForeignField: "_id",
			As:           "channel",
			Fields:       model.SummaryFields(),
		}).
		Project("title", "thumbnail", "duration", "views", "createdAt", "channel").
		Sort(pipeline.Desc("createdAt")).
		Paginate(page).
		Build()

	cursor, err := r.col.Aggregate(ctx, stages)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	videos := make([]model.VideoWithChannel, 0)
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// StatsByOwner sums views over a channel's published videos and counts
// them. A channel with no published videos yields zeros.
func (r *VideoRepository) StatsByOwner(ctx context.Context, channelID primitive.ObjectID) (totalViews, totalVideos int64, err error) {
	stages := pipeline.New().
		Match(bson.D{
			{Key: "owner", Value: channelID},
			{Key: "isPublished", Value: true},
		}).
		GroupSum("totalVideos", map[string]string{"totalViews": "views"}).
		Build()

	cursor, err := r.col.Aggregate(ctx, stages)
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalViews  int64 `bson:"totalViews"`
		TotalVideos int64 `bson:"totalVideos"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, nil
	}
	return results[0].TotalViews, results[0].TotalVideos, nil
}
