package repository

import (
	"context"

	"vidtube/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SubscriptionRepository reads the subscriptions collection.
// Subscriptions are written by the channel-management service; the
// dashboard only counts them.
type SubscriptionRepository struct {
	col *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) *SubscriptionRepository {
	return &SubscriptionRepository{col: db.Collection(model.Subscription{}.CollectionName())}
}

func (r *SubscriptionRepository) CountByChannel(ctx context.Context, channelID primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.D{{Key: "channel", Value: channelID}})
}
