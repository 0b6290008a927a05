package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/contaplena/site-api/internal/config"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestContainers holds references to test containers
type TestContainers struct {
	MongoContainer *mongodb.MongoDBContainer
	RedisContainer *redis.RedisContainer
	MongoDB        *mongo.Database
	Cleanup        func()
}

// SetupTestContainers starts MongoDB and Redis containers for testing
func SetupTestContainers(t *testing.T) *TestContainers {
	ctx := context.Background()

	// Start MongoDB container
	mongoContainer, err := mongodb.Run(ctx,
		"mongo:7.0",
		mongodb.WithUsername("root"),
		mongodb.WithPassword("password"),
	)
	require.NoError(t, err, "Failed to start MongoDB container")

	// Start Redis container
	redisContainer, err := redis.Run(ctx,
		"redis:7-alpine",
	)
	require.NoError(t, err, "Failed to start Redis container")

	// Get MongoDB connection string
	mongoURI, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err, "Failed to get MongoDB connection string")

	// Get Redis connection string
	redisURI, err := redisContainer.ConnectionString(ctx)
	require.NoError(t, err, "Failed to get Redis connection string")

	// Connect to MongoDB
	clientOptions := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(ctx, clientOptions)
	require.NoError(t, err, "Failed to connect to MongoDB")

	// Ping MongoDB
	err = mongoClient.Ping(ctx, nil)
	require.NoError(t, err, "Failed to ping MongoDB")

	// Get test database
	database := mongoClient.Database("site_test")

	// Initialize config for tests
	if config.AppConfig == nil {
		config.AppConfig = &config.Config{}
	}

	// Set test configuration
	config.AppConfig.MongoURI = mongoURI
	config.AppConfig.MongoDatabase = "site_test"
	config.AppConfig.RedisURI = redisURI
	config.AppConfig.RedisPassword = ""
	config.AppConfig.RedisDB = 0
	config.AppConfig.RedisTTL = 60 * time.Minute
	config.AppConfig.CNAECollection = "cnae_data"
	config.AppConfig.ContactCollection = "contact_submissions"
	config.AppConfig.BlogCollection = "blog_posts"
	config.AppConfig.CountersCollection = "counters"
	config.AppConfig.CNAESearchCacheTTL = 10 * time.Minute
	config.AppConfig.BlogCacheTTL = 30 * time.Minute
	config.AppConfig.IBGEBaseURL = "https://servicodados.ibge.gov.br"
	config.AppConfig.IBGETimeout = 10 * time.Second

	// Set global MongoDB reference
	config.MongoDB = database

	cleanup := func() {
		// Disconnect MongoDB
		if mongoClient != nil {
			ctx := context.Background()
			mongoClient.Disconnect(ctx)
		}

		// Terminate containers
		if mongoContainer != nil {
			mongoContainer.Terminate(ctx)
		}
		if redisContainer != nil {
			redisContainer.Terminate(ctx)
		}
	}

	return &TestContainers{
		MongoContainer: mongoContainer,
		RedisContainer: redisContainer,
		MongoDB:        database,
		Cleanup:        cleanup,
	}
}

// CleanupDatabase drops all collections in the test database
func CleanupDatabase(t *testing.T, db *mongo.Database) {
	ctx := context.Background()
	collections, err := db.ListCollectionNames(ctx, map[string]interface{}{})
	require.NoError(t, err, "Failed to list collections")

	for _, collection := range collections {
		err := db.Collection(collection).Drop(ctx)
		require.NoError(t, err, fmt.Sprintf("Failed to drop collection %s", collection))
	}
}
