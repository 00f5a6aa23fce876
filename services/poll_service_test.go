package services

import (
	"testing"
	"time"

	"bantora-api/models"
	"bantora-api/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPollFixture(t *testing.T) (*gorm.DB, PollService) {
	db := newTestDB(t)
	svc := NewPollService(repositories.NewPollRepository(db))
	return db, svc
}

func TestGetActivePollsExcludesClosedAndOutOfWindow(t *testing.T) {
	db, svc := newPollFixture(t)
	category := seedCategory(t, db, "Infrastructure")

	active, _ := seedActivePoll(t, db, category.ID, false, "Yes", "No")

	now := time.Now()
	expired := models.Poll{
		ID: uuid.New(), Title: "expired", CreatorPhone: "+254700000001",
		CategoryID: category.ID, Scope: models.ScopeNational, Status: models.PollStatusActive,
		StartTime: now.Add(-48 * time.Hour), EndTime: now.Add(-time.Hour),
	}
	require.NoError(t, db.Create(&expired).Error)

	closed := models.Poll{
		ID: uuid.New(), Title: "closed", CreatorPhone: "+254700000001",
		CategoryID: category.ID, Scope: models.ScopeNational, Status: models.PollStatusClosed,
		StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour),
	}
	require.NoError(t, db.Create(&closed).Error)

	polls, err := svc.GetActivePolls(models.PollListParams{})
	require.NoError(t, err)
	require.Len(t, polls, 1)
	assert.Equal(t, active.ID, polls[0].ID)
}

func TestGetActivePollsFiltersByHashtag(t *testing.T) {
	db, svc := newPollFixture(t)
	category := seedCategory(t, db, "Infrastructure")
	hashtag := seedHashtag(t, db, "solar")

	tagged, _ := seedActivePoll(t, db, category.ID, false, "Yes", "No")
	require.NoError(t, db.Create(&models.PollHashtag{PollID: tagged.ID, HashtagID: hashtag.ID}).Error)
	seedActivePoll(t, db, category.ID, false, "A", "B")

	polls, err := svc.GetActivePolls(models.PollListParams{Hashtag: "#Solar"})
	require.NoError(t, err)
	require.Len(t, polls, 1)
	assert.Equal(t, tagged.ID, polls[0].ID)
}

func TestGetPopularPollsOrdersByVotes(t *testing.T) {
	db, svc := newPollFixture(t)
	category := seedCategory(t, db, "Infrastructure")

	quiet, _ := seedActivePoll(t, db, category.ID, false, "Yes", "No")
	busy, _ := seedActivePoll(t, db, category.ID, false, "Yes", "No")
	require.NoError(t, db.Model(&models.Poll{}).Where("id = ?", busy.ID).UpdateColumn("total_votes", 42).Error)

	polls, err := svc.GetPopularPolls()
	require.NoError(t, err)
	require.Len(t, polls, 2)
	assert.Equal(t, busy.ID, polls[0].ID)
	assert.Equal(t, quiet.ID, polls[1].ID)
}

func TestGetPollByIDLoadsOrderedOptions(t *testing.T) {
	db, svc := newPollFixture(t)
	category := seedCategory(t, db, "Infrastructure")
	poll, _ := seedActivePoll(t, db, category.ID, false, "First", "Second", "Third")

	loaded, err := svc.GetPollByID(poll.ID)
	require.NoError(t, err)

	require.Len(t, loaded.Options, 3)
	assert.Equal(t, "First", loaded.Options[0].OptionText)
	assert.Equal(t, "Second", loaded.Options[1].OptionText)
	assert.Equal(t, "Third", loaded.Options[2].OptionText)
}

func TestGetPollByIDNotFound(t *testing.T) {
	_, svc := newPollFixture(t)

	_, err := svc.GetPollByID(uuid.New())

	require.Error(t, err)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestGetSourceIdeaIDs(t *testing.T) {
	db, svc := newPollFixture(t)
	category := seedCategory(t, db, "Infrastructure")
	poll, _ := seedActivePoll(t, db, category.ID, false, "Yes", "No")

	idea := seedIdea(t, db, category.ID, time.Now())
	require.NoError(t, db.Create(&models.PollSourceIdea{PollID: poll.ID, IdeaID: idea.ID}).Error)

	ids, err := svc.GetSourceIdeaIDs(poll.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{idea.ID}, ids)

	_, err = svc.GetSourceIdeaIDs(uuid.New())
	require.Error(t, err)
	assert.IsType(t, models.ErrorNotFound{}, err)
}
