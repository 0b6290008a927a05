package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/contaplena/site-api/internal/config"
	"github.com/contaplena/site-api/internal/logging"
	"github.com/contaplena/site-api/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func setupContactServiceTest(t *testing.T) (*ContactService, func()) {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		t.Skip("Skipping contact service tests: MONGODB_URI not set")
	}

	logging.InitLogger()

	if config.AppConfig == nil {
		config.AppConfig = &config.Config{}
	}
	config.AppConfig.ContactCollection = "test_contact_submissions"
	config.AppConfig.CountersCollection = "test_counters"

	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := client.Database("site_test")
	config.MongoDB = database

	service := NewContactService(database, logging.Logger)

	return service, func() {
		database.Drop(ctx)
		client.Disconnect(ctx)
	}
}

func TestRecordSubmission_RoundTrip(t *testing.T) {
	service, cleanup := setupContactServiceTest(t)
	defer cleanup()

	ctx := context.Background()
	before := time.Now().UTC().Add(-time.Second)

	stored, validation, err := service.RecordSubmission(ctx, models.ContactSubmissionInput{
		Name:  "Ana Silva",
		Email: "ana@example.com",
		Phone: "11999998888",
	})
	if err != nil {
		t.Fatalf("RecordSubmission() error = %v", err)
	}
	if !validation.IsValid {
		t.Fatalf("RecordSubmission() validation errors = %v", validation.Errors)
	}

	if stored.ID == 0 {
		t.Error("stored submission has no id")
	}
	if stored.SubmittedAt.Before(before) {
		t.Errorf("SubmittedAt = %v, want server-set recent timestamp", stored.SubmittedAt)
	}

	// Re-reading the submission returns identical field values
	reread, err := service.GetSubmission(ctx, stored.ID)
	if err != nil {
		t.Fatalf("GetSubmission() error = %v", err)
	}
	if reread.Name != stored.Name || reread.Email != stored.Email || reread.Phone != stored.Phone {
		t.Errorf("re-read submission differs: %+v vs %+v", reread, stored)
	}
	if !reread.SubmittedAt.Equal(stored.SubmittedAt.Truncate(time.Millisecond)) {
		t.Errorf("SubmittedAt changed on re-read: %v vs %v", reread.SubmittedAt, stored.SubmittedAt)
	}
}

func TestRecordSubmission_ValidationFailure(t *testing.T) {
	service, cleanup := setupContactServiceTest(t)
	defer cleanup()

	ctx := context.Background()

	stored, validation, err := service.RecordSubmission(ctx, models.ContactSubmissionInput{
		Name:  "A",
		Email: "not-an-email",
		Phone: "123",
	})
	if err != nil {
		t.Fatalf("RecordSubmission() error = %v, want nil with validation result", err)
	}
	if stored != nil {
		t.Error("RecordSubmission() stored a record despite invalid input")
	}
	if validation.IsValid {
		t.Fatal("validation passed, want failure")
	}
	if len(validation.Errors) != 3 {
		t.Errorf("validation reported %d field errors, want 3: %v", len(validation.Errors), validation.Errors)
	}

	// Nothing was persisted
	submissions, err := service.ListSubmissions(ctx)
	if err != nil {
		t.Fatalf("ListSubmissions() error = %v", err)
	}
	if len(submissions) != 0 {
		t.Errorf("found %d submissions after rejected input, want 0", len(submissions))
	}
}

func TestRecordSubmission_MonotonicIDs(t *testing.T) {
	service, cleanup := setupContactServiceTest(t)
	defer cleanup()

	ctx := context.Background()

	var lastID int64
	for i := 0; i < 3; i++ {
		stored, _, err := service.RecordSubmission(ctx, models.ContactSubmissionInput{
			Name:  "Ana Silva",
			Email: "ana@example.com",
			Phone: "11999998888",
		})
		if err != nil {
			t.Fatalf("RecordSubmission() error = %v", err)
		}
		if stored.ID <= lastID {
			t.Errorf("id %d not greater than previous %d", stored.ID, lastID)
		}
		lastID = stored.ID
	}
}

func TestListSubmissions_NewestFirst(t *testing.T) {
	service, cleanup := setupContactServiceTest(t)
	defer cleanup()

	ctx := context.Background()

	for _, name := range []string{"Primeira Pessoa", "Segunda Pessoa"} {
		if _, _, err := service.RecordSubmission(ctx, models.ContactSubmissionInput{
			Name:  name,
			Email: "contato@example.com",
			Phone: "11999998888",
		}); err != nil {
			t.Fatalf("RecordSubmission() error = %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	submissions, err := service.ListSubmissions(ctx)
	if err != nil {
		t.Fatalf("ListSubmissions() error = %v", err)
	}
	if len(submissions) != 2 {
		t.Fatalf("ListSubmissions() returned %d, want 2", len(submissions))
	}
	if submissions[0].Name != "Segunda Pessoa" {
		t.Errorf("first listed submission = %q, want newest", submissions[0].Name)
	}
}
