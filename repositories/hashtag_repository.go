package repositories

import (
	"bantora-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HashtagRepository interface {
	WithTx(tx *gorm.DB) HashtagRepository
	Create(hashtag *models.Hashtag) error
	GetByTag(tag string) (*models.Hashtag, error)
	GetByID(id uuid.UUID) (*models.Hashtag, error)
	TopByPendingIdeaCount(limit int) ([]models.HashtagPendingCount, error)
}

type hashtagRepository struct {
	db *gorm.DB
}

func NewHashtagRepository(db *gorm.DB) HashtagRepository {
	return &hashtagRepository{db: db}
}

func (r *hashtagRepository) WithTx(tx *gorm.DB) HashtagRepository {
	return &hashtagRepository{db: tx}
}

func (r *hashtagRepository) Create(hashtag *models.Hashtag) error {
	return r.db.Create(hashtag).Error
}

func (r *hashtagRepository) GetByTag(tag string) (*models.Hashtag, error) {
	var hashtag models.Hashtag
	err := r.db.Where("tag = ?", tag).First(&hashtag).Error
	return &hashtag, err
}

func (r *hashtagRepository) GetByID(id uuid.UUID) (*models.Hashtag, error) {
	var hashtag models.Hashtag
	err := r.db.First(&hashtag, "id = ?", id).Error
	return &hashtag, err
}

// TopByPendingIdeaCount ranks hashtags by how many PENDING ideas are linked
// to them, highest first. Ties resolve by hashtag id so repeated runs see
// the same order.
func (r *hashtagRepository) TopByPendingIdeaCount(limit int) ([]models.HashtagPendingCount, error) {
	if limit <= 0 {
		return []models.HashtagPendingCount{}, nil
	}

	query := `
		SELECT h.id AS hashtag_id,
		       h.tag AS tag,
		       COUNT(*) AS pending_idea_count
		FROM hashtags h
		JOIN idea_hashtags ih ON ih.hashtag_id = h.id
		JOIN ideas i ON i.id = ih.idea_id
		WHERE i.status = ?
		GROUP BY h.id, h.tag
		ORDER BY pending_idea_count DESC, h.id ASC
		LIMIT ?
	`

	var results []models.HashtagPendingCount
	err := r.db.Raw(query, models.IdeaStatusPending, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
