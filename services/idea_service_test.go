package services

import (
	"strings"
	"sync"
	"testing"

	"bantora-api/models"
	"bantora-api/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newIdeaFixture(t *testing.T) (*gorm.DB, IdeaService) {
	db := newTestDB(t)
	svc := NewIdeaService(
		db,
		repositories.NewIdeaRepository(db),
		repositories.NewHashtagRepository(db),
		repositories.NewCategoryRepository(db),
	)
	return db, svc
}

func TestCreateIdeaNormalizesHashtags(t *testing.T) {
	db, svc := newIdeaFixture(t)
	category := seedCategory(t, db, "Environment")

	idea, err := svc.CreateIdea("+254700000001", models.CreateIdeaRequest{
		Content:    "Community composting sites",
		CategoryID: category.ID,
		Hashtags:   []string{"#Recycling ", "recycling", "  WASTE"},
	})
	require.NoError(t, err)

	require.Len(t, idea.Hashtags, 2)
	tags := []string{idea.Hashtags[0].Tag, idea.Hashtags[1].Tag}
	assert.ElementsMatch(t, []string{"recycling", "waste"}, tags)
	assert.Equal(t, models.IdeaStatusPending, idea.Status)
	assert.Equal(t, "+254700000001", idea.UserPhone)
}

func TestCreateIdeaReusesExistingHashtagRow(t *testing.T) {
	db, svc := newIdeaFixture(t)
	category := seedCategory(t, db, "Environment")

	for i := 0; i < 2; i++ {
		_, err := svc.CreateIdea("+254700000001", models.CreateIdeaRequest{
			Content:    "another idea",
			CategoryID: category.ID,
			Hashtags:   []string{"solar"},
		})
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&models.Hashtag{}).Where("tag = ?", "solar").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateIdeaValidation(t *testing.T) {
	db, svc := newIdeaFixture(t)
	category := seedCategory(t, db, "Environment")

	cases := []struct {
		name string
		req  models.CreateIdeaRequest
	}{
		{"blank content", models.CreateIdeaRequest{Content: "  ", CategoryID: category.ID, Hashtags: []string{"a"}}},
		{"missing category", models.CreateIdeaRequest{Content: "x", Hashtags: []string{"a"}}},
		{"unknown category", models.CreateIdeaRequest{Content: "x", CategoryID: uuid.New(), Hashtags: []string{"a"}}},
		{"no usable hashtags", models.CreateIdeaRequest{Content: "x", CategoryID: category.ID, Hashtags: []string{" # ", ""}}},
		{"hashtag too long", models.CreateIdeaRequest{Content: "x", CategoryID: category.ID, Hashtags: []string{strings.Repeat("a", 65)}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateIdea("+254700000001", tc.req)
			require.Error(t, err)
			assert.IsType(t, models.ErrorInvalidArgument{}, err)
		})
	}
}

func TestCreateIdeaConcurrentSameHashtag(t *testing.T) {
	db, svc := newIdeaFixture(t)
	category := seedCategory(t, db, "Environment")

	const writers = 4
	var wg sync.WaitGroup
	errs := make([]error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateIdea("+254700000001", models.CreateIdeaRequest{
				Content:    "same tag from many writers",
				CategoryID: category.ID,
				Hashtags:   []string{"borehole"},
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&models.Hashtag{}).Where("tag = ?", "borehole").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetIdeasRejectsUnknownStatus(t *testing.T) {
	_, svc := newIdeaFixture(t)

	_, err := svc.GetIdeas(models.IdeaListParams{Status: "SHIPPED"})

	require.Error(t, err)
	assert.IsType(t, models.ErrorInvalidArgument{}, err)
}

func TestGetIdeasFiltersByHashtag(t *testing.T) {
	db, svc := newIdeaFixture(t)
	category := seedCategory(t, db, "Environment")

	_, err := svc.CreateIdea("+254700000001", models.CreateIdeaRequest{
		Content: "solar one", CategoryID: category.ID, Hashtags: []string{"solar"},
	})
	require.NoError(t, err)
	_, err = svc.CreateIdea("+254700000001", models.CreateIdeaRequest{
		Content: "water one", CategoryID: category.ID, Hashtags: []string{"water"},
	})
	require.NoError(t, err)

	ideas, err := svc.GetIdeas(models.IdeaListParams{Status: "PENDING", Hashtag: "#Solar"})
	require.NoError(t, err)
	require.Len(t, ideas, 1)
	assert.Equal(t, "solar one", ideas[0].Content)
}

func TestGetIdeaByIDNotFound(t *testing.T) {
	_, svc := newIdeaFixture(t)

	_, err := svc.GetIdeaByID(uuid.New())

	require.Error(t, err)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestUpvoteIdea(t *testing.T) {
	db, svc := newIdeaFixture(t)
	category := seedCategory(t, db, "Environment")

	idea, err := svc.CreateIdea("+254700000001", models.CreateIdeaRequest{
		Content: "plant trees along the highway", CategoryID: category.ID, Hashtags: []string{"trees"},
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := svc.UpvoteIdea(idea.ID)
		require.NoError(t, err)
	}

	reloaded, err := svc.GetIdeaByID(idea.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, reloaded.Upvotes)
}

func TestUpvoteIdeaNotFound(t *testing.T) {
	_, svc := newIdeaFixture(t)

	_, err := svc.UpvoteIdea(uuid.New())

	require.Error(t, err)
	assert.IsType(t, models.ErrorNotFound{}, err)
}
