package repositories

import (
	"time"

	"bantora-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IdeaRepository interface {
	WithTx(tx *gorm.DB) IdeaRepository
	Create(idea *models.Idea) error
	GetByID(id uuid.UUID) (*models.Idea, error)
	GetList(params models.IdeaListParams) ([]models.Idea, error)
	FindPendingByHashtag(hashtagID uuid.UUID, limit int) ([]models.Idea, error)
	MarkProcessed(ids []uuid.UUID, status models.IdeaStatus, processedAt time.Time) error
	IncrementUpvotes(id uuid.UUID) error
}

type ideaRepository struct {
	db *gorm.DB
}

func NewIdeaRepository(db *gorm.DB) IdeaRepository {
	return &ideaRepository{db: db}
}

func (r *ideaRepository) WithTx(tx *gorm.DB) IdeaRepository {
	return &ideaRepository{db: tx}
}

func (r *ideaRepository) Create(idea *models.Idea) error {
	return r.db.Create(idea).Error
}

func (r *ideaRepository) GetByID(id uuid.UUID) (*models.Idea, error) {
	var idea models.Idea
	err := r.db.Preload("Hashtags").First(&idea, "id = ?", id).Error
	return &idea, err
}

func (r *ideaRepository) GetList(params models.IdeaListParams) ([]models.Idea, error) {
	query := r.db.Model(&models.Idea{}).Preload("Hashtags")

	if params.Status != "" {
		query = query.Where("ideas.status = ?", params.Status)
	}
	if params.CategoryID != "" {
		query = query.Where("ideas.category_id = ?", params.CategoryID)
	}
	if params.Hashtag != "" {
		query = query.Joins("JOIN idea_hashtags ON idea_hashtags.idea_id = ideas.id").
			Joins("JOIN hashtags ON hashtags.id = idea_hashtags.hashtag_id").
			Where("hashtags.tag = ?", params.Hashtag)
	}

	var ideas []models.Idea
	err := query.Order("ideas.created_at desc").Find(&ideas).Error
	return ideas, err
}

// FindPendingByHashtag loads one batch for the generation pipeline: up to
// limit PENDING ideas linked to the hashtag, newest first.
func (r *ideaRepository) FindPendingByHashtag(hashtagID uuid.UUID, limit int) ([]models.Idea, error) {
	if limit <= 0 {
		return []models.Idea{}, nil
	}

	var ideas []models.Idea
	err := r.db.
		Joins("JOIN idea_hashtags ON idea_hashtags.idea_id = ideas.id").
		Where("idea_hashtags.hashtag_id = ? AND ideas.status = ?", hashtagID, models.IdeaStatusPending).
		Order("ideas.created_at desc").
		Limit(limit).
		Find(&ideas).Error
	return ideas, err
}

func (r *ideaRepository) MarkProcessed(ids []uuid.UUID, status models.IdeaStatus, processedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&models.Idea{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":       status,
			"processed_at": processedAt,
		}).Error
}

// IncrementUpvotes bumps the counter in the database so concurrent upvotes
// never lose updates.
func (r *ideaRepository) IncrementUpvotes(id uuid.UUID) error {
	result := r.db.Model(&models.Idea{}).
		Where("id = ?", id).
		UpdateColumn("upvotes", gorm.Expr("upvotes + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
