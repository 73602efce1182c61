package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanvir/vocabflash/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:                  ":8080",
		DBPath:                "test.db",
		UploadDir:             "uploads",
		LogLevel:              "INFO",
		ExtractionWorkerCount: 3,
		ExtractionQueueSize:   64,
		MaxWordsPerFile:       500,
		MinWordLength:         3,
		DueCardLimit:          20,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = "VERBOSE"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")

	// Lowercase valid levels are accepted.
	cfg.LogLevel = "debug"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_InvalidWorkerSettings(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*config.Config)
		expectedError string
	}{
		{
			name:          "zero workers",
			mutate:        func(c *config.Config) { c.ExtractionWorkerCount = 0 },
			expectedError: "EXTRACTION_WORKER_COUNT",
		},
		{
			name:          "negative workers",
			mutate:        func(c *config.Config) { c.ExtractionWorkerCount = -1 },
			expectedError: "EXTRACTION_WORKER_COUNT",
		},
		{
			name:          "zero queue",
			mutate:        func(c *config.Config) { c.ExtractionQueueSize = 0 },
			expectedError: "EXTRACTION_QUEUE_SIZE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestValidate_InvalidPipelineSettings(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*config.Config)
		expectedError string
	}{
		{
			name:          "zero word cap",
			mutate:        func(c *config.Config) { c.MaxWordsPerFile = 0 },
			expectedError: "MAX_WORDS_PER_FILE",
		},
		{
			name:          "zero min length",
			mutate:        func(c *config.Config) { c.MinWordLength = 0 },
			expectedError: "MIN_WORD_LENGTH",
		},
		{
			name:          "zero due limit",
			mutate:        func(c *config.Config) { c.DueCardLimit = 0 },
			expectedError: "DUE_CARD_LIMIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "UPLOAD_DIR cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "EXTRACTION_WORKER_COUNT")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("MAX_WORDS_PER_FILE", "250")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, 250, cfg.MaxWordsPerFile)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("EXTRACTION_WORKER_COUNT", "many")

	cfg := config.Load()
	assert.Equal(t, 3, cfg.ExtractionWorkerCount)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ADDR", "DB_PATH", "UPLOAD_DIR", "LOG_LEVEL",
		"EXTRACTION_WORKER_COUNT", "EXTRACTION_QUEUE_SIZE",
		"MAX_WORDS_PER_FILE", "MIN_WORD_LENGTH", "DUE_CARD_LIMIT",
	} {
		if v := os.Getenv(key); v != "" {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}

	cfg := config.Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 500, cfg.MaxWordsPerFile)
	assert.Equal(t, 3, cfg.MinWordLength)
	assert.NoError(t, cfg.Validate())
}
