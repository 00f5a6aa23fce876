package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"bantora-api/config"
	"bantora-api/models"
	"bantora-api/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// CompletionGateway is the text-generation boundary. The implementation
// lives in the ai package; tests substitute a fake.
type CompletionGateway interface {
	GeneratePolls(ctx context.Context, prompt string) (*models.AiResponse, error)
}

type AiService interface {
	// RunPipelineOnce ranks the most demanded hashtags and materializes
	// polls for each, one transaction per hashtag. Safe to trigger from
	// a schedule or an admin endpoint; overlapping triggers are skipped.
	RunPipelineOnce(ctx context.Context) error
	ProcessHashtag(ctx context.Context, stat models.HashtagPendingCount) error
}

type aiService struct {
	db          *gorm.DB
	hashtagRepo repositories.HashtagRepository
	ideaRepo    repositories.IdeaRepository
	pollRepo    repositories.PollRepository
	gateway     CompletionGateway
	cfg         config.PollGenerationConfig
	logger      zerolog.Logger
	runMu       sync.Mutex
}

func NewAiService(
	db *gorm.DB,
	hashtagRepo repositories.HashtagRepository,
	ideaRepo repositories.IdeaRepository,
	pollRepo repositories.PollRepository,
	gateway CompletionGateway,
	cfg config.PollGenerationConfig,
	logger zerolog.Logger,
) AiService {
	return &aiService{
		db:          db,
		hashtagRepo: hashtagRepo,
		ideaRepo:    ideaRepo,
		pollRepo:    pollRepo,
		gateway:     gateway,
		cfg:         cfg,
		logger:      logger.With().Str("component", "ai_pipeline").Logger(),
	}
}

func (s *aiService) RunPipelineOnce(ctx context.Context) error {
	if !s.runMu.TryLock() {
		s.logger.Warn().Msg("pipeline run already in progress, skipping")
		return nil
	}
	defer s.runMu.Unlock()

	stats, err := s.hashtagRepo.TopByPendingIdeaCount(s.cfg.TopHashtagsPerRun)
	if err != nil {
		return err
	}

	for _, stat := range stats {
		if err := s.ProcessHashtag(ctx, stat); err != nil {
			// One hashtag's failure never aborts the run; its ideas stay
			// PENDING and are retried on the next schedule.
			s.logger.Error().Err(err).
				Str("hashtag", stat.Tag).
				Str("hashtag_id", stat.HashtagID.String()).
				Msg("failed to process hashtag")
		}
	}

	return nil
}

func (s *aiService) ProcessHashtag(ctx context.Context, stat models.HashtagPendingCount) error {
	if stat.PendingIdeaCount <= 0 {
		return nil
	}

	if _, err := s.hashtagRepo.GetByID(stat.HashtagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorInvalidArgument{Message: "hashtag not found: " + stat.HashtagID.String()}
		}
		return err
	}

	ideas, err := s.ideaRepo.FindPendingByHashtag(stat.HashtagID, s.cfg.MaxIdeasPerHashtag)
	if err != nil {
		return err
	}
	if len(ideas) == 0 {
		return nil
	}

	ideaByID := make(map[uuid.UUID]models.Idea, len(ideas))
	for _, idea := range ideas {
		ideaByID[idea.ID] = idea
	}

	prompt, err := BuildPollPrompt(stat.Tag, ideas)
	if err != nil {
		return err
	}

	response, err := s.gateway.GeneratePolls(ctx, prompt)
	if err != nil {
		return err
	}

	if err := ValidateAiResponse(ideaByID, response); err != nil {
		return err
	}

	created, err := s.materialize(stat.HashtagID, ideaByID, response)
	if err != nil {
		return err
	}

	s.logger.Info().
		Str("hashtag", stat.Tag).
		Int("ideas", len(ideas)).
		Int("polls_created", created).
		Int("ideas_rejected", len(response.RejectedIdeaIDs)).
		Msg("hashtag processed")
	return nil
}

// materialize turns one validated response into durable rows. Everything
// for the hashtag happens in a single transaction: poll rows in request
// order, options with explicit order fields, hashtag and source-idea links,
// then the idea status flips. Ideas mentioned nowhere keep PENDING.
func (s *aiService) materialize(
	hashtagID uuid.UUID,
	ideaByID map[uuid.UUID]models.Idea,
	response *models.AiResponse,
) (int, error) {
	now := time.Now()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		pollRepo := s.pollRepo.WithTx(tx)
		usedIdeaIDs := make(map[uuid.UUID]bool)

		for _, generated := range response.Polls {
			if err := s.createPoll(pollRepo, hashtagID, ideaByID, generated, now); err != nil {
				return err
			}
			for _, sourceID := range generated.SourceIdeaIDs {
				usedIdeaIDs[sourceID] = true
			}
		}

		converted := make([]uuid.UUID, 0, len(usedIdeaIDs))
		for id := range usedIdeaIDs {
			converted = append(converted, id)
		}

		ideaRepo := s.ideaRepo.WithTx(tx)
		if err := ideaRepo.MarkProcessed(converted, models.IdeaStatusConvertedToPoll, now); err != nil {
			return err
		}
		return ideaRepo.MarkProcessed(response.RejectedIdeaIDs, models.IdeaStatusRejected, now)
	})
	if err != nil {
		return 0, err
	}
	return len(response.Polls), nil
}

func (s *aiService) createPoll(
	pollRepo repositories.PollRepository,
	hashtagID uuid.UUID,
	ideaByID map[uuid.UUID]models.Idea,
	generated models.AiGeneratedPoll,
	now time.Time,
) error {
	// The validator guarantees the first source idea exists in the batch.
	firstIdea := ideaByID[generated.SourceIdeaIDs[0]]

	status := models.PollStatusActive
	if s.cfg.ApprovalRequired {
		status = models.PollStatusPending
	}

	poll := &models.Poll{
		ID:           uuid.New(),
		Title:        generated.Title,
		Description:  generated.Description,
		CreatorPhone: firstIdea.UserPhone,
		CategoryID:   generated.CategoryID,
		Scope:        s.cfg.DefaultScope,
		Status:       status,
		StartTime:    now,
		EndTime:      now.AddDate(0, 0, s.cfg.PollDurationDays),
	}
	if err := pollRepo.Create(poll); err != nil {
		return err
	}

	options := make([]models.PollOption, 0, len(generated.Options))
	for order, text := range generated.Options {
		options = append(options, models.PollOption{
			ID:          uuid.New(),
			PollID:      poll.ID,
			OptionText:  strings.TrimSpace(text),
			OptionOrder: order,
		})
	}
	if err := pollRepo.CreateOptions(options); err != nil {
		return err
	}

	if err := pollRepo.LinkHashtag(poll.ID, hashtagID); err != nil {
		return err
	}
	for _, ideaID := range generated.SourceIdeaIDs {
		if err := pollRepo.LinkSourceIdea(poll.ID, ideaID); err != nil {
			return err
		}
	}
	return nil
}
