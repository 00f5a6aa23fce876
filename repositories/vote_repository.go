package repositories

import (
	"bantora-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VoteRepository interface {
	WithTx(tx *gorm.DB) VoteRepository
	Create(vote *models.Vote) error
	ExistsByPollAndPhone(pollID uuid.UUID, phone string) (bool, error)
	FindByPoll(pollID uuid.UUID) ([]models.Vote, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) WithTx(tx *gorm.DB) VoteRepository {
	return &voteRepository{db: tx}
}

func (r *voteRepository) Create(vote *models.Vote) error {
	return r.db.Create(vote).Error
}

func (r *voteRepository) ExistsByPollAndPhone(pollID uuid.UUID, phone string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).
		Where("poll_id = ? AND user_phone = ?", pollID, phone).
		Count(&count).Error
	return count > 0, err
}

func (r *voteRepository) FindByPoll(pollID uuid.UUID) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.Where("poll_id = ?", pollID).Order("voted_at asc").Find(&votes).Error
	return votes, err
}
