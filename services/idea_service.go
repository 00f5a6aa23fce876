package services

import (
	"errors"
	"strings"

	"bantora-api/models"
	"bantora-api/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxHashtagLength = 64

type IdeaService interface {
	CreateIdea(userPhone string, req models.CreateIdeaRequest) (*models.Idea, error)
	GetIdeas(params models.IdeaListParams) ([]models.Idea, error)
	GetIdeaByID(id uuid.UUID) (*models.Idea, error)
	UpvoteIdea(id uuid.UUID) (*models.Idea, error)
}

type ideaService struct {
	db           *gorm.DB
	ideaRepo     repositories.IdeaRepository
	hashtagRepo  repositories.HashtagRepository
	categoryRepo repositories.CategoryRepository
}

func NewIdeaService(
	db *gorm.DB,
	ideaRepo repositories.IdeaRepository,
	hashtagRepo repositories.HashtagRepository,
	categoryRepo repositories.CategoryRepository,
) IdeaService {
	return &ideaService{
		db:           db,
		ideaRepo:     ideaRepo,
		hashtagRepo:  hashtagRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *ideaService) CreateIdea(userPhone string, req models.CreateIdeaRequest) (*models.Idea, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, models.ErrorInvalidArgument{Message: "missing required field: content"}
	}
	if req.CategoryID == uuid.Nil {
		return nil, models.ErrorInvalidArgument{Message: "missing required field: category_id"}
	}

	hashtags, err := normalizeHashtags(req.Hashtags)
	if err != nil {
		return nil, err
	}
	if len(hashtags) == 0 {
		return nil, models.ErrorInvalidArgument{Message: "missing required field: hashtags"}
	}

	if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorInvalidArgument{Message: "invalid category_id"}
		}
		return nil, err
	}

	idea := &models.Idea{
		ID:         uuid.New(),
		UserPhone:  userPhone,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		Status:     models.IdeaStatusPending,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.ideaRepo.WithTx(tx).Create(idea); err != nil {
			return err
		}
		for _, tag := range hashtags {
			hashtag, err := s.getOrCreateHashtag(tx, tag)
			if err != nil {
				return err
			}
			link := &models.IdeaHashtag{IdeaID: idea.ID, HashtagID: hashtag.ID}
			if err := tx.Create(link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.ideaRepo.GetByID(idea.ID)
}

func (s *ideaService) GetIdeas(params models.IdeaListParams) ([]models.Idea, error) {
	if params.Status != "" {
		switch models.IdeaStatus(strings.ToUpper(strings.TrimSpace(params.Status))) {
		case models.IdeaStatusPending, models.IdeaStatusConvertedToPoll, models.IdeaStatusRejected:
			params.Status = strings.ToUpper(strings.TrimSpace(params.Status))
		default:
			return nil, models.ErrorInvalidArgument{Message: "invalid status"}
		}
	}
	if params.Hashtag != "" {
		tag, err := normalizeSingleHashtag(params.Hashtag)
		if err != nil {
			return nil, err
		}
		params.Hashtag = tag
	}
	return s.ideaRepo.GetList(params)
}

func (s *ideaService) GetIdeaByID(id uuid.UUID) (*models.Idea, error) {
	idea, err := s.ideaRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "idea not found"}
		}
		return nil, err
	}
	return idea, nil
}

// UpvoteIdea bumps the counter atomically. Upvotes are low-stakes signals
// and are deliberately not deduplicated per user, unlike poll votes.
func (s *ideaService) UpvoteIdea(id uuid.UUID) (*models.Idea, error) {
	if err := s.ideaRepo.IncrementUpvotes(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "idea not found"}
		}
		return nil, err
	}
	return s.ideaRepo.GetByID(id)
}

// getOrCreateHashtag tolerates the uniqueness race: if two transactions
// insert the same normalized tag, the loser re-reads the winner's row.
func (s *ideaService) getOrCreateHashtag(tx *gorm.DB, tag string) (*models.Hashtag, error) {
	repo := s.hashtagRepo.WithTx(tx)

	hashtag, err := repo.GetByTag(tag)
	if err == nil {
		return hashtag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &models.Hashtag{ID: uuid.New(), Tag: tag}
	if err := repo.Create(created); err != nil {
		if isDuplicateKeyError(err) {
			return repo.GetByTag(tag)
		}
		return nil, err
	}
	return created, nil
}

func normalizeHashtags(hashtags []string) ([]string, error) {
	seen := make(map[string]bool)
	normalized := make([]string, 0, len(hashtags))
	for _, raw := range hashtags {
		tag := strings.TrimSpace(raw)
		tag = strings.TrimPrefix(tag, "#")
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if len(tag) > maxHashtagLength {
			return nil, models.ErrorInvalidArgument{Message: "hashtag too long (max 64)"}
		}
		if !seen[tag] {
			seen[tag] = true
			normalized = append(normalized, tag)
		}
	}
	return normalized, nil
}

func normalizeSingleHashtag(hashtag string) (string, error) {
	tags, err := normalizeHashtags([]string{hashtag})
	if err != nil {
		return "", err
	}
	if len(tags) == 0 {
		return "", nil
	}
	return tags[0], nil
}
