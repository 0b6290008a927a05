package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Redis configuration
	RedisURI      string        `json:"redis_uri"`
	RedisPassword string        `json:"redis_password"`
	RedisDB       int           `json:"redis_db"`
	RedisTTL      time.Duration `json:"redis_ttl"`

	// Collection names
	CNAECollection     string `json:"mongo_cnae_collection"`
	ContactCollection  string `json:"mongo_contact_collection"`
	BlogCollection     string `json:"mongo_blog_collection"`
	CountersCollection string `json:"mongo_counters_collection"`

	// Cache TTLs
	CNAESearchCacheTTL time.Duration `json:"cnae_search_cache_ttl"`
	BlogCacheTTL       time.Duration `json:"blog_cache_ttl"`

	// IBGE registry passthrough
	IBGEBaseURL string        `json:"ibge_base_url"`
	IBGETimeout time.Duration `json:"ibge_timeout"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	redisTTL, err := time.ParseDuration(getEnvOrDefault("REDIS_TTL", "60m"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_TTL: %w", err)
	}

	searchCacheTTL, err := time.ParseDuration(getEnvOrDefault("CNAE_SEARCH_CACHE_TTL", "10m"))
	if err != nil {
		return fmt.Errorf("invalid CNAE_SEARCH_CACHE_TTL: %w", err)
	}

	blogCacheTTL, err := time.ParseDuration(getEnvOrDefault("BLOG_CACHE_TTL", "30m"))
	if err != nil {
		return fmt.Errorf("invalid BLOG_CACHE_TTL: %w", err)
	}

	ibgeTimeout, err := time.ParseDuration(getEnvOrDefault("IBGE_TIMEOUT", "10s"))
	if err != nil {
		return fmt.Errorf("invalid IBGE_TIMEOUT: %w", err)
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// MongoDB configuration
		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "site"),

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		RedisTTL:      redisTTL,

		// Collection names
		CNAECollection:     getEnvOrDefault("MONGODB_CNAE_COLLECTION", "cnae_data"),
		ContactCollection:  getEnvOrDefault("MONGODB_CONTACT_COLLECTION", "contact_submissions"),
		BlogCollection:     getEnvOrDefault("MONGODB_BLOG_COLLECTION", "blog_posts"),
		CountersCollection: getEnvOrDefault("MONGODB_COUNTERS_COLLECTION", "counters"),

		// Cache TTLs
		CNAESearchCacheTTL: searchCacheTTL,
		BlogCacheTTL:       blogCacheTTL,

		// IBGE registry passthrough
		IBGEBaseURL: getEnvOrDefault("IBGE_BASE_URL", "https://servicodados.ibge.gov.br"),
		IBGETimeout: ibgeTimeout,

		// Tracing configuration
		TracingEnabled:  getEnvOrDefault("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
