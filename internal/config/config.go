package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                  string
	DBPath                string
	UploadDir             string
	LogLevel              string
	ExtractionWorkerCount int
	ExtractionQueueSize   int
	MaxWordsPerFile       int
	MinWordLength         int
	DueCardLimit          int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                  envOr("ADDR", ":8080"),
		DBPath:                envOr("DB_PATH", "file:vocabflash.db"),
		UploadDir:             envOr("UPLOAD_DIR", "uploads"),
		LogLevel:              envOr("LOG_LEVEL", "INFO"),
		ExtractionWorkerCount: envIntOr("EXTRACTION_WORKER_COUNT", 3),
		ExtractionQueueSize:   envIntOr("EXTRACTION_QUEUE_SIZE", 64),
		MaxWordsPerFile:       envIntOr("MAX_WORDS_PER_FILE", 500),
		MinWordLength:         envIntOr("MIN_WORD_LENGTH", 3),
		DueCardLimit:          envIntOr("DUE_CARD_LIMIT", 20),
	}
}

// Validate checks the configuration for values that would make the server
// unusable. All problems are reported at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	if c.UploadDir == "" {
		problems = append(problems, "UPLOAD_DIR cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}
	if c.ExtractionWorkerCount < 1 {
		problems = append(problems, "EXTRACTION_WORKER_COUNT must be at least 1")
	}
	if c.ExtractionQueueSize < 1 {
		problems = append(problems, "EXTRACTION_QUEUE_SIZE must be at least 1")
	}
	if c.MaxWordsPerFile < 1 {
		problems = append(problems, "MAX_WORDS_PER_FILE must be at least 1")
	}
	if c.MinWordLength < 1 {
		problems = append(problems, "MIN_WORD_LENGTH must be at least 1")
	}
	if c.DueCardLimit < 1 {
		problems = append(problems, "DUE_CARD_LIMIT must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
