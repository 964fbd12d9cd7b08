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

type TweetRepository struct {
	col *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) *TweetRepository {
	return &TweetRepository{col: db.Collection(model.Tweet{}.CollectionName())}
}

func (r *TweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
	now := time.Now()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, tweet)
	if err != nil {
		return err
	}
	tweet.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Tweet, error) {
	var tweet model.Tweet
	err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&tweet)
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

// ListByOwner returns a page of a user's tweets, newest first.
func (r *TweetRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID, page pipeline.Page) ([]model.Tweet, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(page.Offset()).
		SetLimit(page.Limit())

	cursor, err := r.col.Find(ctx, bson.D{{Key: "owner", Value: ownerID}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tweets := make([]model.Tweet, 0)
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

// UpdateContent replaces a tweet's content and returns the updated
// document.
func (r *TweetRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*model.Tweet, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: time.Now()},
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var tweet model.Tweet
	err := r.col.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&tweet)
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (r *TweetRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *TweetRepository) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.D{{Key: "owner", Value: ownerID}})
}
