package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/contaplena/site-api/internal/config"
	"github.com/contaplena/site-api/internal/logging"
	"github.com/contaplena/site-api/internal/models"
	"github.com/contaplena/site-api/internal/observability"
	"github.com/contaplena/site-api/internal/redisclient"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// BlogService serves the read-only blog collection
type BlogService struct {
	database *mongo.Database
	cache    *redisclient.Client
	logger   *logging.SafeLogger
}

// NewBlogService creates a new blog service instance. cache may be nil.
func NewBlogService(database *mongo.Database, cache *redisclient.Client, logger *logging.SafeLogger) *BlogService {
	return &BlogService{
		database: database,
		cache:    cache,
		logger:   logger,
	}
}

// ListPosts returns all published posts, newest first
func (s *BlogService) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	const cacheKey = "blog:posts"
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var posts []models.BlogPost
			if err := json.Unmarshal([]byte(cached), &posts); err == nil {
				observability.CacheHits.WithLabelValues("blog_posts").Inc()
				return posts, nil
			}
		}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}})

	cursor, err := s.collection().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		s.logger.Error("failed to list blog posts", zap.Error(err))
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []models.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode blog posts: %w", err)
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(posts); err == nil {
			s.cache.Set(ctx, cacheKey, encoded, config.AppConfig.BlogCacheTTL)
		}
	}

	return posts, nil
}

// GetPostBySlug returns a single post, or models.ErrPostNotFound
func (s *BlogService) GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	cacheKey := "blog:post:" + slug
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var post models.BlogPost
			if err := json.Unmarshal([]byte(cached), &post); err == nil {
				observability.CacheHits.WithLabelValues("blog_post").Inc()
				return &post, nil
			}
		}
	}

	var post models.BlogPost
	err := s.collection().FindOne(ctx, bson.M{"slug": slug}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrPostNotFound
		}
		s.logger.Error("failed to get blog post", zap.String("slug", slug), zap.Error(err))
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(post); err == nil {
			s.cache.Set(ctx, cacheKey, encoded, config.AppConfig.BlogCacheTTL)
		}
	}

	return &post, nil
}

func (s *BlogService) collection() *mongo.Collection {
	return s.database.Collection(config.AppConfig.BlogCollection)
}
