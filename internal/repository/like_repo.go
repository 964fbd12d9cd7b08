package repository

import (
	"context"
	"time"

	"vidtube/internal/model"
	"vidtube/internal/pipeline"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type LikeRepository struct {
	col *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{col: db.Collection(model.Like{}.CollectionName())}
}

func targetFilter(likedBy primitive.ObjectID, kind model.TargetKind, targetID primitive.ObjectID) bson.D {
	return bson.D{
		{Key: "likedBy", Value: likedBy},
		{Key: "targetKind", Value: kind},
		{Key: "targetId", Value: targetID},
	}
}

// DeleteByTarget atomically removes the like for (actor, target) and
// returns it. mongo.ErrNoDocuments means there was nothing to remove.
func (r *LikeRepository) DeleteByTarget(ctx context.Context, likedBy primitive.ObjectID, kind model.TargetKind, targetID primitive.ObjectID) (*model.Like, error) {
	var like model.Like
	err := r.col.FindOneAndDelete(ctx, targetFilter(likedBy, kind, targetID)).Decode(&like)
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// Insert creates a like record. The unique (likedBy, targetKind,
// targetId) index rejects a concurrent duplicate with a duplicate-key
// error, which callers must treat as already-liked.
func (r *LikeRepository) Insert(ctx context.Context, like *model.Like) error {
	like.CreatedAt = time.Now()

	res, err := r.col.InsertOne(ctx, like)
	if err != nil {
		return err
	}
	like.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *LikeRepository) GetByTarget(ctx context.Context, likedBy primitive.ObjectID, kind model.TargetKind, targetID primitive.ObjectID) (*model.Like, error) {
	var like model.Like
	err := r.col.FindOne(ctx, targetFilter(likedBy, kind, targetID)).Decode(&like)
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// ListLikedVideos returns the videos an actor has liked, joined from
// the videos collection. Likes whose video has since been deleted are
// dropped by the inner join.
func (r *LikeRepository) ListLikedVideos(ctx context.Context, likedBy primitive.ObjectID, page pipeline.Page) ([]model.LikedVideo, error) {
	stages := pipeline.New().
		Match(bson.D{
			{Key: "likedBy", Value: likedBy},
			{Key: "targetKind", Value: model.TargetVideo},
		}).
		LookupOne(pipeline.Lookup{
			From:         model.Video{}.CollectionName(),
			LocalField:   "targetId",
			ForeignField: "_id",
			As:           "video",
			Fields:       []string{"title", "description", "thumbnail", "duration", "views", "owner", "createdAt"},
		}).
		Project("createdAt", "video").
		Sort(pipeline.Desc("createdAt")).
		Paginate(page).
		Build()

	cursor, err := r.col.Aggregate(ctx, stages)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	videos := make([]model.LikedVideo, 0)
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// CountReceivedByChannel counts likes on the channel's content of one
// kind, resolved through the target collection's owner field.
func (r *LikeRepository) CountReceivedByChannel(ctx context.Context, kind model.TargetKind, channelID primitive.ObjectID) (int64, error) {
	var from string
	switch kind {
	case model.TargetVideo:
		from = model.Video{}.CollectionName()
	case model.TargetComment:
		from = model.Comment{}.CollectionName()
	case model.TargetTweet:
		from = model.Tweet{}.CollectionName()
	}

	stages := pipeline.New().
		Match(bson.D{{Key: "targetKind", Value: kind}}).
		LookupOne(pipeline.Lookup{
			From:         from,
			LocalField:   "targetId",
			ForeignField: "_id",
			As:           "target",
			Fields:       []string{"owner"},
		}).
		Match(bson.D{{Key: "target.owner", Value: channelID}}).
		CountAs("count").
		Build()

	return aggregateCount(ctx, r.col, stages)
}

// DeleteAllForTarget removes every like pointing at a deleted
// resource.
func (r *LikeRepository) DeleteAllForTarget(ctx context.Context, kind model.TargetKind, targetID primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.D{
		{Key: "targetKind", Value: kind},
		{Key: "targetId", Value: targetID},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
