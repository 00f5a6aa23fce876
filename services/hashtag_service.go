package services

import (
	"bantora-api/models"
	"bantora-api/repositories"
)

type HashtagService interface {
	GetTrendingHashtags(limit int) ([]models.HashtagPendingCount, error)
}

type hashtagService struct {
	hashtagRepo repositories.HashtagRepository
}

func NewHashtagService(hashtagRepo repositories.HashtagRepository) HashtagService {
	return &hashtagService{hashtagRepo: hashtagRepo}
}

// GetTrendingHashtags surfaces the same demand ranking the pipeline uses:
// hashtags with the most pending ideas first.
func (s *hashtagService) GetTrendingHashtags(limit int) ([]models.HashtagPendingCount, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.hashtagRepo.TopByPendingIdeaCount(limit)
}
