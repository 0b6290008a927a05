package services

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/contaplena/site-api/internal/config"
	"github.com/contaplena/site-api/internal/logging"
	"github.com/contaplena/site-api/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func setupBlogServiceTest(t *testing.T) (*BlogService, *mongo.Database, func()) {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		t.Skip("Skipping blog service tests: MONGODB_URI not set")
	}

	logging.InitLogger()

	if config.AppConfig == nil {
		config.AppConfig = &config.Config{}
	}
	config.AppConfig.BlogCollection = "test_blog_posts"

	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := client.Database("site_test")
	config.MongoDB = database

	service := NewBlogService(database, nil, logging.Logger)

	return service, database, func() {
		database.Drop(ctx)
		client.Disconnect(ctx)
	}
}

func insertPost(t *testing.T, database *mongo.Database, post models.BlogPost) {
	t.Helper()
	_, err := database.Collection(config.AppConfig.BlogCollection).InsertOne(context.Background(), post)
	if err != nil {
		t.Fatalf("failed to insert fixture post: %v", err)
	}
}

func TestListPosts_Empty(t *testing.T) {
	service, _, cleanup := setupBlogServiceTest(t)
	defer cleanup()

	posts, err := service.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("ListPosts() error = %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("ListPosts() returned %d posts, want 0", len(posts))
	}
}

func TestListPosts_NewestFirst(t *testing.T) {
	service, database, cleanup := setupBlogServiceTest(t)
	defer cleanup()

	now := time.Now().UTC().Truncate(time.Millisecond)
	insertPost(t, database, models.BlogPost{
		ID: 1, Title: "Simples Nacional 2024", Slug: "simples-nacional-2024",
		Excerpt: "Mudanças no regime", Content: "...", Category: "Tributos",
		PublishedAt: now.Add(-24 * time.Hour), CreatedAt: now.Add(-24 * time.Hour),
	})
	insertPost(t, database, models.BlogPost{
		ID: 2, Title: "MEI: guia completo", Slug: "mei-guia-completo",
		Excerpt: "Tudo sobre MEI", Content: "...", Category: "MEI",
		PublishedAt: now, CreatedAt: now,
	})

	posts, err := service.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("ListPosts() error = %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("ListPosts() returned %d posts, want 2", len(posts))
	}
	if posts[0].Slug != "mei-guia-completo" {
		t.Errorf("first post = %q, want newest", posts[0].Slug)
	}
}

func TestGetPostBySlug(t *testing.T) {
	service, database, cleanup := setupBlogServiceTest(t)
	defer cleanup()

	insertPost(t, database, models.BlogPost{
		ID: 1, Title: "Fator R explicado", Slug: "fator-r-explicado",
		Excerpt: "Como funciona", Content: "...", Category: "Tributos",
		PublishedAt: time.Now().UTC(), CreatedAt: time.Now().UTC(),
	})

	post, err := service.GetPostBySlug(context.Background(), "fator-r-explicado")
	if err != nil {
		t.Fatalf("GetPostBySlug() error = %v", err)
	}
	if post.Title != "Fator R explicado" {
		t.Errorf("Title = %q, want 'Fator R explicado'", post.Title)
	}
}

func TestGetPostBySlug_NotFound(t *testing.T) {
	service, _, cleanup := setupBlogServiceTest(t)
	defer cleanup()

	_, err := service.GetPostBySlug(context.Background(), "nao-existe")
	if !errors.Is(err, models.ErrPostNotFound) {
		t.Errorf("GetPostBySlug() error = %v, want ErrPostNotFound", err)
	}
}
