// Package repository adapts the document store's collections to the
// service layer. Not-found conditions surface as mongo.ErrNoDocuments;
// services translate them into their own sentinel errors.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// aggregateCount runs a count-terminated pipeline and returns the
// total. An empty result set means zero, not an error.
func aggregateCount(ctx context.Context, col *mongo.Collection, stages mongo.Pipeline) (int64, error) {
	cursor, err := col.Aggregate(ctx, stages)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Count, nil
}
