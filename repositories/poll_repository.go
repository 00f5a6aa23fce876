package repositories

import (
	"time"

	"bantora-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PollRepository interface {
	WithTx(tx *gorm.DB) PollRepository
	Create(poll *models.Poll) error
	CreateOptions(options []models.PollOption) error
	LinkHashtag(pollID, hashtagID uuid.UUID) error
	LinkSourceIdea(pollID, ideaID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Poll, error)
	GetOptionByID(id uuid.UUID) (*models.PollOption, error)
	GetActiveList(params models.PollListParams, now time.Time) ([]models.Poll, error)
	GetSourceIdeaIDs(pollID uuid.UUID) ([]uuid.UUID, error)
	IncrementVoteCounters(pollID, optionID uuid.UUID) error
}

type pollRepository struct {
	db *gorm.DB
}

func NewPollRepository(db *gorm.DB) PollRepository {
	return &pollRepository{db: db}
}

func (r *pollRepository) WithTx(tx *gorm.DB) PollRepository {
	return &pollRepository{db: tx}
}

func (r *pollRepository) Create(poll *models.Poll) error {
	return r.db.Create(poll).Error
}

func (r *pollRepository) CreateOptions(options []models.PollOption) error {
	if len(options) == 0 {
		return nil
	}
	return r.db.Create(&options).Error
}

func (r *pollRepository) LinkHashtag(pollID, hashtagID uuid.UUID) error {
	return r.db.Create(&models.PollHashtag{PollID: pollID, HashtagID: hashtagID}).Error
}

func (r *pollRepository) LinkSourceIdea(pollID, ideaID uuid.UUID) error {
	return r.db.Create(&models.PollSourceIdea{PollID: pollID, IdeaID: ideaID}).Error
}

func (r *pollRepository) GetByID(id uuid.UUID) (*models.Poll, error) {
	var poll models.Poll
	err := r.db.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("option_order asc")
		}).
		First(&poll, "id = ?", id).Error
	return &poll, err
}

func (r *pollRepository) GetOptionByID(id uuid.UUID) (*models.PollOption, error) {
	var option models.PollOption
	err := r.db.First(&option, "id = ?", id).Error
	return &option, err
}

func (r *pollRepository) GetActiveList(params models.PollListParams, now time.Time) ([]models.Poll, error) {
	query := r.db.Model(&models.Poll{}).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("option_order asc")
		}).
		Where("polls.status = ?", models.PollStatusActive).
		Where("polls.start_time <= ? AND polls.end_time > ?", now, now)

	if params.CategoryID != "" {
		query = query.Where("polls.category_id = ?", params.CategoryID)
	}
	if params.Hashtag != "" {
		query = query.Joins("JOIN poll_hashtags ON poll_hashtags.poll_id = polls.id").
			Joins("JOIN hashtags ON hashtags.id = poll_hashtags.hashtag_id").
			Where("hashtags.tag = ?", params.Hashtag)
	}

	if params.Sort == "votes" {
		query = query.Order("polls.total_votes desc")
	} else {
		query = query.Order("polls.created_at desc")
	}

	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}

	var polls []models.Poll
	err := query.Find(&polls).Error
	return polls, err
}

func (r *pollRepository) GetSourceIdeaIDs(pollID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.PollSourceIdea{}).
		Where("poll_id = ?", pollID).
		Pluck("idea_id", &ids).Error
	return ids, err
}

// IncrementVoteCounters applies both denormalized counters in the database
// (`votes_count + 1`, `total_votes + 1`) so concurrent voters on the same
// poll cannot lose updates.
func (r *pollRepository) IncrementVoteCounters(pollID, optionID uuid.UUID) error {
	result := r.db.Model(&models.PollOption{}).
		Where("id = ? AND poll_id = ?", optionID, pollID).
		UpdateColumn("votes_count", gorm.Expr("votes_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return r.db.Model(&models.Poll{}).
		Where("id = ?", pollID).
		UpdateColumns(map[string]interface{}{
			"total_votes": gorm.Expr("total_votes + 1"),
			"updated_at":  time.Now(),
		}).Error
}
