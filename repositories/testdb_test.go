package repositories

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

func mustCreateHashtag(t *testing.T, db *gorm.DB, id uuid.UUID, tag string) models.Hashtag {
	t.Helper()
	hashtag := models.Hashtag{ID: id, Tag: tag}
	require.NoError(t, db.Create(&hashtag).Error)
	return hashtag
}

func mustCreateIdea(t *testing.T, db *gorm.DB, status models.IdeaStatus, createdAt time.Time, hashtagIDs ...uuid.UUID) models.Idea {
	t.Helper()
	idea := models.Idea{
		ID:         uuid.New(),
		UserPhone:  "+254700000001",
		Content:    "test idea",
		CategoryID: uuid.New(),
		Status:     status,
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(&idea).Error)
	for _, hashtagID := range hashtagIDs {
		require.NoError(t, db.Create(&models.IdeaHashtag{IdeaID: idea.ID, HashtagID: hashtagID}).Error)
	}
	return idea
}
