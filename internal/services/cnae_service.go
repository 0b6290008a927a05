package services

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/contaplena/site-api/internal/config"
	"github.com/contaplena/site-api/internal/logging"
	"github.com/contaplena/site-api/internal/models"
	"github.com/contaplena/site-api/internal/redisclient"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// searchResultLimit caps how many records a single search returns
const searchResultLimit = 20

//go:embed data/cnae_seed.json
var cnaeSeedData []byte

// CNAEService handles the classification catalog
type CNAEService struct {
	database *mongo.Database
	cache    *redisclient.Client
	logger   *logging.SafeLogger
}

// NewCNAEService creates a new CNAE service instance. cache may be nil,
// in which case search results are not cached.
func NewCNAEService(database *mongo.Database, cache *redisclient.Client, logger *logging.SafeLogger) *CNAEService {
	return &CNAEService{
		database: database,
		cache:    cache,
		logger:   logger,
	}
}

// Search returns the catalog records whose description, code or keyword
// blob contains query as a case-insensitive substring, in storage order,
// capped at 20 results. Queries shorter than 2 characters yield an empty
// result; rejecting them with a 400 is the HTTP boundary's job.
func (s *CNAEService) Search(ctx context.Context, query string) ([]models.CNAE, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < 2 {
		return []models.CNAE{}, nil
	}

	cacheKey := "cnae:search:" + strings.ToLower(query)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var results []models.CNAE
			if err := json.Unmarshal([]byte(cached), &results); err == nil {
				return results, nil
			}
		}
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"description": pattern},
		{"code": pattern},
		{"keywords": pattern},
	}}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(searchResultLimit)

	cursor, err := s.collection().Find(ctx, filter, findOptions)
	if err != nil {
		s.logger.Error("failed to search CNAEs", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("failed to search CNAEs: %w", err)
	}
	defer cursor.Close(ctx)

	results := []models.CNAE{}
	if err := cursor.All(ctx, &results); err != nil {
		s.logger.Error("failed to decode CNAE search results", zap.Error(err))
		return nil, fmt.Errorf("failed to decode CNAE search results: %w", err)
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(results); err == nil {
			s.cache.Set(ctx, cacheKey, encoded, config.AppConfig.CNAESearchCacheTTL)
		}
	}

	return results, nil
}

// GetAll returns every catalog record in storage order
func (s *CNAEService) GetAll(ctx context.Context) ([]models.CNAE, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := s.collection().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		s.logger.Error("failed to list CNAEs", zap.Error(err))
		return nil, fmt.Errorf("failed to list CNAEs: %w", err)
	}
	defer cursor.Close(ctx)

	results := []models.CNAE{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode CNAEs: %w", err)
	}

	return results, nil
}

// Create inserts a single catalog record. Omitted optional fields keep
// their zero values. Fails with models.ErrCNAECodeExists when the code
// is already present.
func (s *CNAEService) Create(ctx context.Context, input models.CNAEInput) (*models.CNAE, error) {
	var existing models.CNAE
	err := s.collection().FindOne(ctx, bson.M{"code": input.Code}).Decode(&existing)
	if err == nil {
		return nil, models.ErrCNAECodeExists
	} else if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to check existing CNAE: %w", err)
	}

	id, err := NextSequence(ctx, s.database, "cnae_data")
	if err != nil {
		return nil, err
	}

	record := models.CNAE{
		ID:                   id,
		Code:                 input.Code,
		Description:          input.Description,
		CanBeMEI:             input.CanBeMEI,
		IsFatorR:             input.IsFatorR,
		AllowedActivities:    input.AllowedActivities,
		RestrictedActivities: input.RestrictedActivities,
		Observations:         input.Observations,
		Keywords:             input.Keywords,
	}
	if record.AllowedActivities == nil {
		record.AllowedActivities = []string{}
	}
	if record.RestrictedActivities == nil {
		record.RestrictedActivities = []string{}
	}
	if record.Keywords == "" {
		record.Keywords = DeriveKeywords(record.Description)
	}

	if _, err := s.collection().InsertOne(ctx, record); err != nil {
		// The unique index catches the race the pre-check cannot
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrCNAECodeExists
		}
		s.logger.Error("failed to create CNAE", zap.String("code", input.Code), zap.Error(err))
		return nil, fmt.Errorf("failed to create CNAE: %w", err)
	}

	return &record, nil
}

// Seed populates an empty catalog from the embedded dataset, deriving
// the eligibility metadata for each entry. It is idempotent: a catalog
// that already holds at least one record is left untouched. The seed is
// all-or-nothing; a failed insert rolls back what was written.
func (s *CNAEService) Seed(ctx context.Context) error {
	err := s.collection().FindOne(ctx, bson.M{}).Err()
	if err == nil {
		s.logger.Info("CNAE catalog already seeded, skipping")
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return fmt.Errorf("failed to check catalog state: %w", err)
	}

	var entries []models.SeedEntry
	if err := json.Unmarshal(cnaeSeedData, &entries); err != nil {
		return fmt.Errorf("failed to parse CNAE seed dataset: %w", err)
	}

	// Validate the whole dataset before writing anything
	seen := make(map[string]bool, len(entries))
	for i, entry := range entries {
		if strings.TrimSpace(entry.Code) == "" || strings.TrimSpace(entry.Description) == "" {
			return fmt.Errorf("seed entry %d is missing code or description", i)
		}
		if seen[entry.Code] {
			return fmt.Errorf("seed dataset contains duplicate code %s", entry.Code)
		}
		seen[entry.Code] = true
	}

	records := make([]interface{}, 0, len(entries))
	ids := make([]int64, 0, len(entries))
	for _, entry := range entries {
		id, err := NextSequence(ctx, s.database, "cnae_data")
		if err != nil {
			return err
		}

		c := Classify(entry.Code, entry.Description)
		records = append(records, models.CNAE{
			ID:                   id,
			Code:                 entry.Code,
			Description:          entry.Description,
			CanBeMEI:             c.CanBeMEI,
			IsFatorR:             c.IsFatorR,
			AllowedActivities:    c.AllowedActivities,
			RestrictedActivities: c.RestrictedActivities,
			Observations:         c.Observations,
			Keywords:             c.Keywords,
		})
		ids = append(ids, id)
	}

	if _, err := s.collection().InsertMany(ctx, records); err != nil {
		// Roll back any partial insert so the guard stays meaningful
		if _, cleanupErr := s.collection().DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); cleanupErr != nil {
			s.logger.Error("failed to roll back partial seed", zap.Error(cleanupErr))
		}
		s.logger.Error("failed to seed CNAE catalog", zap.Error(err))
		return fmt.Errorf("failed to seed CNAE catalog: %w", err)
	}

	s.logger.Info("seeded CNAE catalog", zap.Int("records", len(records)))
	return nil
}

func (s *CNAEService) collection() *mongo.Collection {
	return s.database.Collection(config.AppConfig.CNAECollection)
}
