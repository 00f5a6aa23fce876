package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"bantora-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AiConfig holds everything the completion gateway needs to reach the
// text-generation provider.
type AiConfig struct {
	GeminiURL      string
	GeminiAPIKey   string
	RequestTimeout time.Duration
}

// PollGenerationConfig drives the idea-to-poll pipeline.
type PollGenerationConfig struct {
	MaxIdeasPerHashtag int
	TopHashtagsPerRun  int
	PollDurationDays   int
	DefaultScope       models.PollScope
	ApprovalRequired   bool
	ProcessInterval    time.Duration
}

type Config struct {
	Port           string
	Ai             AiConfig
	PollGeneration PollGenerationConfig
}

// Load reads the application configuration from environment variables with
// documented defaults.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),
		Ai: AiConfig{
			GeminiURL:      getEnv("GEMINI_URL", "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"),
			GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
			RequestTimeout: getEnvDuration("AI_REQUEST_TIMEOUT", 60*time.Second),
		},
		PollGeneration: PollGenerationConfig{
			MaxIdeasPerHashtag: getEnvInt("POLL_MAX_IDEAS_PER_HASHTAG", 20),
			TopHashtagsPerRun:  getEnvInt("POLL_TOP_HASHTAGS_PER_RUN", 2),
			PollDurationDays:   getEnvInt("POLL_DURATION_DAYS", 7),
			DefaultScope:       models.PollScope(getEnv("POLL_DEFAULT_SCOPE", string(models.ScopeNational))),
			ApprovalRequired:   getEnvBool("POLL_APPROVAL_REQUIRED", false),
			ProcessInterval:    getEnvDuration("IDEA_PROCESS_INTERVAL", 24*time.Hour),
		},
	}
}

func InitDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "bantora"),
		getEnv("DB_PASSWORD", "bantora"),
		getEnv("DB_NAME", "bantora_db"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}

// AutoMigrate creates/updates the schema, including the uniqueness
// backstops on hashtags.tag and votes(poll_id, voter_key).
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Country{},
		&models.Category{},
		&models.Hashtag{},
		&models.Idea{},
		&models.IdeaHashtag{},
		&models.Poll{},
		&models.PollOption{},
		&models.PollHashtag{},
		&models.PollSourceIdea{},
		&models.Vote{},
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("Invalid integer for %s, using default %d", key, fallback)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("Invalid boolean for %s, using default %t", key, fallback)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using default %s", key, fallback)
	}
	return fallback
}
