package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/contaplena/site-api/internal/config"
	"github.com/contaplena/site-api/internal/logging"
	"github.com/contaplena/site-api/internal/models"
	"github.com/contaplena/site-api/internal/observability"
	"github.com/contaplena/site-api/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ContactService handles contact-form submissions
type ContactService struct {
	database *mongo.Database
	logger   *logging.SafeLogger
}

// NewContactService creates a new contact service instance
func NewContactService(database *mongo.Database, logger *logging.SafeLogger) *ContactService {
	return &ContactService{
		database: database,
		logger:   logger,
	}
}

// RecordSubmission validates and persists one contact-form inquiry.
// The id is assigned from an atomic counter and the timestamp is set
// server-side; the stored record is returned.
func (s *ContactService) RecordSubmission(ctx context.Context, input models.ContactSubmissionInput) (*models.ContactSubmission, *utils.ValidationResult, error) {
	validation := utils.ValidateContactSubmission(input)
	if !validation.IsValid {
		return nil, validation, nil
	}

	id, err := NextSequence(ctx, s.database, "contact_submissions")
	if err != nil {
		return nil, nil, err
	}

	submission := models.ContactSubmission{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		Phone:       utils.NormalizePhone(input.Phone),
		Service:     strings.TrimSpace(input.Service),
		Message:     strings.TrimSpace(input.Message),
		SubmittedAt: time.Now().UTC(),
	}

	if _, err := s.collection().InsertOne(ctx, submission); err != nil {
		s.logger.Error("failed to record contact submission",
			zap.String("email", observability.MaskEmail(submission.Email)),
			zap.Error(err))
		return nil, nil, fmt.Errorf("failed to record contact submission: %w", err)
	}

	s.logger.Info("contact submission recorded",
		zap.Int64("id", submission.ID),
		zap.String("email", observability.MaskEmail(submission.Email)),
		zap.String("phone", observability.MaskPhone(submission.Phone)))

	return &submission, validation, nil
}

// GetSubmission retrieves one submission by id
func (s *ContactService) GetSubmission(ctx context.Context, id int64) (*models.ContactSubmission, error) {
	var submission models.ContactSubmission
	err := s.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&submission)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, mongo.ErrNoDocuments
		}
		return nil, fmt.Errorf("failed to get contact submission: %w", err)
	}
	return &submission, nil
}

// ListSubmissions returns all submissions, newest first. Kept for the
// future admin surface; not exposed over HTTP yet.
func (s *ContactService) ListSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})

	cursor, err := s.collection().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	defer cursor.Close(ctx)

	submissions := []models.ContactSubmission{}
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, fmt.Errorf("failed to decode contact submissions: %w", err)
	}

	return submissions, nil
}

func (s *ContactService) collection() *mongo.Collection {
	return s.database.Collection(config.AppConfig.ContactCollection)
}
