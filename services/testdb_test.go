package services

import (
	"strings"
	"testing"
	"time"

	"bantora-api/config"
	"bantora-api/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test. A single
// connection keeps concurrent goroutines serialized the way a real
// database would with row locks.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := "file:" + name + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.AutoMigrate(db))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{ID: uuid.New(), Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedCountry(t *testing.T, db *gorm.DB, code string, registrationEnabled bool) models.Country {
	t.Helper()
	country := models.Country{Code: code, Name: code, RegistrationEnabled: registrationEnabled}
	require.NoError(t, db.Create(&country).Error)
	// GORM replaces a zero bool with the column's default:true on create, so a
	// closed country must be persisted with an explicit column update.
	require.NoError(t, db.Model(&models.Country{}).Where("code = ?", code).
		UpdateColumn("registration_enabled", registrationEnabled).Error)
	return country
}

func seedHashtag(t *testing.T, db *gorm.DB, tag string) models.Hashtag {
	t.Helper()
	hashtag := models.Hashtag{ID: uuid.New(), Tag: tag}
	require.NoError(t, db.Create(&hashtag).Error)
	return hashtag
}

func seedIdea(t *testing.T, db *gorm.DB, categoryID uuid.UUID, createdAt time.Time, hashtagIDs ...uuid.UUID) models.Idea {
	t.Helper()
	idea := models.Idea{
		ID:         uuid.New(),
		UserPhone:  "+254700000001",
		Content:    "seeded idea",
		CategoryID: categoryID,
		Status:     models.IdeaStatusPending,
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(&idea).Error)
	for _, hashtagID := range hashtagIDs {
		link := models.IdeaHashtag{IdeaID: idea.ID, HashtagID: hashtagID}
		require.NoError(t, db.Create(&link).Error)
	}
	return idea
}

func seedActivePoll(t *testing.T, db *gorm.DB, categoryID uuid.UUID, allowMultipleVotes bool, optionTexts ...string) (models.Poll, []models.PollOption) {
	t.Helper()
	now := time.Now()
	poll := models.Poll{
		ID:                 uuid.New(),
		Title:              "seeded poll",
		CreatorPhone:       "+254700000001",
		CategoryID:         categoryID,
		Scope:              models.ScopeNational,
		Status:             models.PollStatusActive,
		StartTime:          now.Add(-time.Hour),
		EndTime:            now.Add(24 * time.Hour),
		AllowAnonymous:     true,
		AllowMultipleVotes: allowMultipleVotes,
	}
	require.NoError(t, db.Create(&poll).Error)

	options := make([]models.PollOption, 0, len(optionTexts))
	for order, text := range optionTexts {
		option := models.PollOption{
			ID:          uuid.New(),
			PollID:      poll.ID,
			OptionText:  text,
			OptionOrder: order,
		}
		require.NoError(t, db.Create(&option).Error)
		options = append(options, option)
	}
	return poll, options
}
