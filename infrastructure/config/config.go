package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Wikipedia API configuration
	WikipediaAPIURL string
	UserAgent       string
	LinkLimit       int // max outbound links fetched per article

	// Search configuration
	SearchDeadline time.Duration // global wall-clock budget per search
	MaxDepth       int           // expansion depth per direction
	FetchBatchSize int           // concurrent link fetches per round batch

	// Cache configuration
	LinkCacheTTL time.Duration

	// Logging and features
	LogLevel      string
	EnableMetrics bool
	EnableCORS    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		WikipediaAPIURL: getEnv("WIKIPEDIA_API_URL", "https://en.wikipedia.org/w/api.php"),
		UserAgent:       getEnv("USER_AGENT", "wikipedia-solver/1.0"),
		LinkLimit:       getEnvInt("LINK_LIMIT", 500),

		SearchDeadline: getEnvDuration("SEARCH_DEADLINE", 15*time.Second),
		MaxDepth:       getEnvInt("MAX_DEPTH", 2),
		FetchBatchSize: getEnvInt("FETCH_BATCH_SIZE", 5),

		LinkCacheTTL: getEnvDuration("LINK_CACHE_TTL", time.Hour),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present and sane
func (c *Config) Validate() error {
	if c.WikipediaAPIURL == "" {
		return fmt.Errorf("WIKIPEDIA_API_URL is required")
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("MAX_DEPTH must be at least 1, got %d", c.MaxDepth)
	}
	if c.FetchBatchSize < 1 {
		return fmt.Errorf("FETCH_BATCH_SIZE must be at least 1, got %d", c.FetchBatchSize)
	}
	if c.SearchDeadline <= 0 {
		return fmt.Errorf("SEARCH_DEADLINE must be positive, got %s", c.SearchDeadline)
	}
	if c.LinkLimit < 1 || c.LinkLimit > 500 {
		return fmt.Errorf("LINK_LIMIT must be between 1 and 500, got %d", c.LinkLimit)
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value.
// Accepts Go duration syntax ("15s") or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
