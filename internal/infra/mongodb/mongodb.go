package mongodb

import (
	"context"
	"fmt"

	"vidtube/internal/config"
	"vidtube/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// Init connects to the document store and pings it.
func Init(cfg *config.MongoConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.TimeoutDuration())
	defer cancel()

	var err error
	client, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db = client.Database(cfg.Database)

	logger.Info("MongoDB connected",
		zap.String("database", cfg.Database),
	)

	return nil
}

// Close disconnects the client.
func Close() error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), config.GetMongo().TimeoutDuration())
	defer cancel()
	logger.Info("MongoDB connection closed")
	return client.Disconnect(ctx)
}

// Get returns the application database handle.
func Get() *mongo.Database {
	return db
}

// EnsureIndexes creates the indexes the query layer depends on. The
// unique like index is the structural guard against duplicate like
// records under concurrent toggles.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		"users": {
			{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		"likes": {
			{
				Keys: bson.D{
					{Key: "likedBy", Value: 1},
					{Key: "targetKind", Value: 1},
					{Key: "targetId", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "likedBy", Value: 1}, {Key: "targetKind", Value: 1}}},
		},
		"comments": {
			{Keys: bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "owner", Value: 1}}},
		},
		"tweets": {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		"playlists": {
			{Keys: bson.D{{Key: "owner", Value: 1}}},
		},
		"videos": {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "isPublished", Value: 1}}},
		},
		"subscriptions": {
			{Keys: bson.D{{Key: "channel", Value: 1}}},
		},
	}

	for collection, models := range specs {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", collection, err)
		}
	}

	logger.Info("MongoDB indexes ensured", zap.Int("collections", len(specs)))
	return nil
}
