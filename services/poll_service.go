package services

import (
	"errors"
	"strings"
	"time"

	"bantora-api/models"
	"bantora-api/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PollService interface {
	GetActivePolls(params models.PollListParams) ([]models.Poll, error)
	GetPopularPolls() ([]models.Poll, error)
	GetPollByID(id uuid.UUID) (*models.Poll, error)
	GetSourceIdeaIDs(pollID uuid.UUID) ([]uuid.UUID, error)
}

type pollService struct {
	pollRepo repositories.PollRepository
}

func NewPollService(pollRepo repositories.PollRepository) PollService {
	return &pollService{pollRepo: pollRepo}
}

func (s *pollService) GetActivePolls(params models.PollListParams) ([]models.Poll, error) {
	if params.Hashtag != "" {
		tag, err := normalizeSingleHashtag(params.Hashtag)
		if err != nil {
			return nil, err
		}
		params.Hashtag = tag
	}
	params.Sort = strings.ToLower(params.Sort)
	return s.pollRepo.GetActiveList(params, time.Now())
}

func (s *pollService) GetPopularPolls() ([]models.Poll, error) {
	return s.pollRepo.GetActiveList(models.PollListParams{Sort: "votes", Limit: 10}, time.Now())
}

func (s *pollService) GetPollByID(id uuid.UUID) (*models.Poll, error) {
	poll, err := s.pollRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "poll not found"}
		}
		return nil, err
	}
	return poll, nil
}

func (s *pollService) GetSourceIdeaIDs(pollID uuid.UUID) ([]uuid.UUID, error) {
	if _, err := s.GetPollByID(pollID); err != nil {
		return nil, err
	}
	return s.pollRepo.GetSourceIdeaIDs(pollID)
}
