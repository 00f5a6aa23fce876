package repositories

import (
	"testing"
	"time"

	"bantora-api/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFindPendingByHashtagNewestFirstWithLimit(t *testing.T) {
	db := newTestDB(t)
	repo := NewIdeaRepository(db)

	hashtag := mustCreateHashtag(t, db, uuid.New(), "solar")
	other := mustCreateHashtag(t, db, uuid.New(), "water")

	now := time.Now()
	oldest := mustCreateIdea(t, db, models.IdeaStatusPending, now.Add(-3*time.Hour), hashtag.ID)
	middle := mustCreateIdea(t, db, models.IdeaStatusPending, now.Add(-2*time.Hour), hashtag.ID)
	newest := mustCreateIdea(t, db, models.IdeaStatusPending, now.Add(-time.Hour), hashtag.ID)

	// Noise: different hashtag, and already-processed ideas on ours.
	mustCreateIdea(t, db, models.IdeaStatusPending, now, other.ID)
	mustCreateIdea(t, db, models.IdeaStatusConvertedToPoll, now, hashtag.ID)
	mustCreateIdea(t, db, models.IdeaStatusRejected, now, hashtag.ID)

	ideas, err := repo.FindPendingByHashtag(hashtag.ID, 2)
	require.NoError(t, err)
	require.Len(t, ideas, 2)
	assert.Equal(t, newest.ID, ideas[0].ID)
	assert.Equal(t, middle.ID, ideas[1].ID)

	all, err := repo.FindPendingByHashtag(hashtag.ID, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, oldest.ID, all[2].ID)
}

func TestFindPendingByHashtagNonPositiveLimit(t *testing.T) {
	db := newTestDB(t)
	repo := NewIdeaRepository(db)

	hashtag := mustCreateHashtag(t, db, uuid.New(), "solar")
	mustCreateIdea(t, db, models.IdeaStatusPending, time.Now(), hashtag.ID)

	ideas, err := repo.FindPendingByHashtag(hashtag.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, ideas)
}

func TestMarkProcessedFlipsStatusAndTimestamp(t *testing.T) {
	db := newTestDB(t)
	repo := NewIdeaRepository(db)

	now := time.Now()
	converted := mustCreateIdea(t, db, models.IdeaStatusPending, now)
	untouched := mustCreateIdea(t, db, models.IdeaStatusPending, now)

	processedAt := now.Truncate(time.Second)
	require.NoError(t, repo.MarkProcessed([]uuid.UUID{converted.ID}, models.IdeaStatusConvertedToPoll, processedAt))

	var reloaded models.Idea
	require.NoError(t, db.First(&reloaded, "id = ?", converted.ID).Error)
	assert.Equal(t, models.IdeaStatusConvertedToPoll, reloaded.Status)
	require.NotNil(t, reloaded.ProcessedAt)
	assert.WithinDuration(t, processedAt, *reloaded.ProcessedAt, time.Second)

	var reloadedUntouched models.Idea
	require.NoError(t, db.First(&reloadedUntouched, "id = ?", untouched.ID).Error)
	assert.Equal(t, models.IdeaStatusPending, reloadedUntouched.Status)
	assert.Nil(t, reloadedUntouched.ProcessedAt)
}

func TestMarkProcessedEmptyIDList(t *testing.T) {
	db := newTestDB(t)
	repo := NewIdeaRepository(db)

	require.NoError(t, repo.MarkProcessed(nil, models.IdeaStatusRejected, time.Now()))
}

func TestIncrementUpvotes(t *testing.T) {
	db := newTestDB(t)
	repo := NewIdeaRepository(db)

	idea := mustCreateIdea(t, db, models.IdeaStatusPending, time.Now())

	require.NoError(t, repo.IncrementUpvotes(idea.ID))
	require.NoError(t, repo.IncrementUpvotes(idea.ID))

	var reloaded models.Idea
	require.NoError(t, db.First(&reloaded, "id = ?", idea.ID).Error)
	assert.EqualValues(t, 2, reloaded.Upvotes)
}

func TestIncrementUpvotesUnknownIdea(t *testing.T) {
	db := newTestDB(t)
	repo := NewIdeaRepository(db)

	err := repo.IncrementUpvotes(uuid.New())

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
