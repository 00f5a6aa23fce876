package services

import (
	"errors"
	"time"

	"bantora-api/models"
	"bantora-api/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoteMetadata is diagnostic context recorded with a ballot, never used for
// vote logic.
type VoteMetadata struct {
	IPAddress string
	UserAgent string
}

type VoteService interface {
	SubmitVote(pollID, optionID uuid.UUID, userPhone string, anonymous bool, meta VoteMetadata) (*models.Poll, error)
}

type voteService struct {
	db       *gorm.DB
	pollRepo repositories.PollRepository
	voteRepo repositories.VoteRepository
}

func NewVoteService(db *gorm.DB, pollRepo repositories.PollRepository, voteRepo repositories.VoteRepository) VoteService {
	return &voteService{db: db, pollRepo: pollRepo, voteRepo: voteRepo}
}

// SubmitVote records one ballot and keeps the denormalized counters
// consistent: the vote row, the option's votes_count and the poll's
// total_votes all change in a single transaction, with the counter bumps
// executed in the database. The existence check for identified voters is
// racy on its own, so the unique index on (poll_id, voter_key) backstops it;
// a duplicate-key failure surfaces as the same conflict.
func (s *voteService) SubmitVote(pollID, optionID uuid.UUID, userPhone string, anonymous bool, meta VoteMetadata) (*models.Poll, error) {
	poll, err := s.pollRepo.GetByID(pollID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "poll not found"}
		}
		return nil, err
	}

	option, err := s.pollRepo.GetOptionByID(optionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "option not found"}
		}
		return nil, err
	}

	if option.PollID != poll.ID {
		return nil, models.ErrorInvalidArgument{Message: "option does not belong to poll"}
	}

	if userPhone != "" {
		alreadyVoted, err := s.voteRepo.ExistsByPollAndPhone(pollID, userPhone)
		if err != nil {
			return nil, err
		}
		if alreadyVoted && !poll.AllowMultipleVotes {
			return nil, models.ErrorConflict{Message: "user has already voted"}
		}
	}

	vote := &models.Vote{
		ID:        uuid.New(),
		PollID:    pollID,
		OptionID:  optionID,
		Anonymous: anonymous,
		VotedAt:   time.Now(),
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	}
	if userPhone != "" {
		vote.UserPhone = &userPhone
		if !poll.AllowMultipleVotes {
			vote.VoterKey = &userPhone
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.voteRepo.WithTx(tx).Create(vote); err != nil {
			return err
		}
		return s.pollRepo.WithTx(tx).IncrementVoteCounters(pollID, optionID)
	})
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, models.ErrorConflict{Message: "user has already voted"}
		}
		return nil, err
	}

	return s.pollRepo.GetByID(pollID)
}
