package services

import (
	"context"
	"fmt"

	"github.com/contaplena/site-api/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NextSequence atomically increments and returns the named counter.
// Concurrent callers never observe the same value, unlike the
// max-plus-one scheme this replaces.
func NextSequence(ctx context.Context, database *mongo.Database, name string) (int64, error) {
	collection := database.Collection(config.AppConfig.CountersCollection)

	var counter struct {
		Value int64 `bson:"value"`
	}

	err := collection.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to advance %s sequence: %w", name, err)
	}

	return counter.Value, nil
}
