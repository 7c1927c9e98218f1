package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Storage backends
const (
	BackendSQL    = "sql"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds application configuration
type Config struct {
	ServerPort      string        `env:"PORT"             env-default:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	LogLevel        string        `env:"LOG_LEVEL"        env-default:"info"`

	// Document storage
	StorageBackend string `env:"STORAGE_BACKEND" env-default:"sql"`
	StorageKey     string `env:"STORAGE_KEY"     env-default:"spellingTrainerData"`
	DatabaseType   string `env:"DATABASE_TYPE"   env-default:"sqlite"`
	DatabasePath   string `env:"DB_PATH"         env-default:"./spellingtrainer.db"`
	DatabaseURL    string `env:"DATABASE_URL"`
	RedisURL       string `env:"REDIS_URL"       env-default:"redis://localhost:6379/0"`

	// Speech
	AudioDir    string `env:"AUDIO_DIR"    env-default:"./audio"`
	TTSEnabled  bool   `env:"TTS_ENABLED"  env-default:"true"`
	TTSLanguage string `env:"TTS_LANGUAGE" env-default:"en"`
	TTSBaseURL  string `env:"TTS_BASE_URL" env-default:"https://translate.google.com/translate_tts"`

	// Practice
	CorrectAdvanceDelay time.Duration `env:"CORRECT_ADVANCE_DELAY" env-default:"1500ms"`

	UploadMaxSize int64 `env:"UPLOAD_MAX_SIZE" env-default:"5242880"` // 5MB
}

// Load reads configuration from an optional .env file and the environment.
// Variables already set in the environment win over the .env file.
func Load() (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the selected backends have what they need
func (c *Config) Validate() error {
	var errs []error

	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	c.DatabaseType = strings.ToLower(strings.TrimSpace(c.DatabaseType))

	switch c.StorageBackend {
	case BackendSQL:
		switch c.DatabaseType {
		case "sqlite", "sqlite3":
			if c.DatabasePath == "" {
				errs = append(errs, errors.New("DB_PATH is required for sqlite"))
			}
		case "postgres", "postgresql", "mysql":
			if c.DatabaseURL == "" {
				errs = append(errs, fmt.Errorf("DATABASE_URL is required for %s", c.DatabaseType))
			}
		default:
			errs = append(errs, fmt.Errorf("unsupported DATABASE_TYPE: %s", c.DatabaseType))
		}
	case BackendRedis:
		if c.RedisURL == "" {
			errs = append(errs, errors.New("REDIS_URL is required for the redis backend"))
		}
	case BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("unsupported STORAGE_BACKEND: %s", c.StorageBackend))
	}

	if c.StorageKey == "" {
		errs = append(errs, errors.New("STORAGE_KEY must not be empty"))
	}
	if c.CorrectAdvanceDelay < 0 {
		errs = append(errs, errors.New("CORRECT_ADVANCE_DELAY must not be negative"))
	}
	if c.UploadMaxSize <= 0 {
		errs = append(errs, errors.New("UPLOAD_MAX_SIZE must be positive"))
	}
	if c.TTSEnabled && c.TTSBaseURL == "" {
		errs = append(errs, errors.New("TTS_BASE_URL is required when TTS is enabled"))
	}

	return errors.Join(errs...)
}
