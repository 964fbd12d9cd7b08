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

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection(model.Comment{}.CollectionName())}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, comment)
	if err != nil {
		return err
	}
	comment.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	var comment model.Comment
	err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&comment)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateContent replaces a comment's content and returns the updated
// document.
func (r *CommentRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*model.Comment, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: time.Now()},
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment model.Comment
	err := r.col.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&comment)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListByVideo returns a page of a video's comments with the author
// joined in. Comments whose author no longer exists are excluded by
// the inner-join lookup.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID primitive.ObjectID, page pipeline.Page) ([]model.CommentWithAuthor, error) {
	stages := pipeline.New().
		Match(bson.D{{Key: "video", Value: videoID}}).
		LookupOne(pipeline.Lookup{
			From:         model.User{}.CollectionName(),
			LocalField:   "owner",
			ForeignField: "_id",
			As:           "createdBy",
			Fields:       model.SummaryFields(),
		}).
		Project("content", "createdAt", "createdBy").
		Sort(pipeline.Desc("createdAt")).
		Paginate(page).
		Build()

	cursor, err := r.col.Aggregate(ctx, stages)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := make([]model.CommentWithAuthor, 0)
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CountReceivedByChannel counts comments left on the channel's videos.
func (r *CommentRepository) CountReceivedByChannel(ctx context.Context, channelID primitive.ObjectID) (int64, error) {
	stages := pipeline.New().
		LookupOne(pipeline.Lookup{
			From:         model.Video{}.CollectionName(),
			LocalField:   "video",
			ForeignField: "_id",
			As:           "video",
			Fields:       []string{"owner"},
		}).
		Match(bson.D{{Key: "video.owner", Value: channelID}}).
		CountAs("count").
		Build()

	return aggregateCount(ctx, r.col, stages)
}

// DeleteByVideo removes every comment of a deleted video.
func (r *CommentRepository) DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.D{{Key: "video", Value: videoID}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
