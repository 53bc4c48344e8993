package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"tonotes/utils"

	"github.com/joho/godotenv"
)

const (
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type ServerConfig struct {
	Port            string
	Mode            string // gin mode: debug, release, test
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
	AllowedOrigins  []string
	Version         string
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

type AnalysisConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	Language   string
	LabelsFile string
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Analysis  AnalysisConfig
	RateLimit RateLimitConfig
	// Storage selects the note store: mongo, redis or memory.
	Storage string
}

// LoadEnvFile loads .env when present. A missing file is not an error.
func LoadEnvFile(paths ...string) {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error loading .env file: %v", err)
	}
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            utils.GetEnvAsString("PORT", "8080"),
			Mode:            utils.GetEnvAsString("GIN_MODE", "release"),
			ShutdownTimeout: utils.GetEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			MaxBodyBytes:    utils.GetEnvAsInt64("MAX_BODY_BYTES", 1<<20),
			AllowedOrigins:  utils.GetEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			Version:         utils.GetEnvAsString("APP_VERSION", "1.0.0"),
		},
		Database: LoadDatabaseConfig(),
		Redis:    LoadRedisConfig(),
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET_KEY"),
			Issuer:    utils.GetEnvAsString("JWT_ISSUER", "toNotes"),
		},
		Analysis: AnalysisConfig{
			APIKey:     os.Getenv("GEMINI_API_KEY"),
			BaseURL:    utils.GetEnvAsString("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			Model:      utils.GetEnvAsString("GEMINI_MODEL", "gemini-2.0-flash"),
			Timeout:    utils.GetEnvAsDuration("GEMINI_TIMEOUT", 30*time.Second),
			Language:   utils.GetEnvAsString("ANALYSIS_LANGUAGE", "tr"),
			LabelsFile: os.Getenv("ANALYSIS_LABELS_FILE"),
		},
		RateLimit: RateLimitConfig{
			Enabled: utils.GetEnvAsBool("RATE_LIMIT_ENABLED", true),
			RPS:     utils.GetEnvAsFloat("RATE_LIMIT_RPS", 5),
			Burst:   utils.GetEnvAsInt("RATE_LIMIT_BURST", 20),
		},
		Storage: strings.ToLower(utils.GetEnvAsString("NOTES_BACKEND", BackendMongo)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("required environment variable JWT_SECRET_KEY is not set")
	}
	switch c.Storage {
	case BackendMongo, BackendMemory:
	case BackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("NOTES_BACKEND=redis requires REDIS_URL")
		}
	default:
		return fmt.Errorf("unknown NOTES_BACKEND %q", c.Storage)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	return nil
}
