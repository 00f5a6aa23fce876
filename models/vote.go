package models

import (
	"time"

	"github.com/google/uuid"
)

// Vote is one ballot. VoterKey duplicates UserPhone only when the poll
// disallows multiple votes, so the unique index on (poll_id, voter_key)
// backstops the application-level duplicate check without blocking polls
// that allow repeat voting (NULL keys never collide).
type Vote struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primarykey"`
	PollID    uuid.UUID `json:"poll_id" gorm:"type:uuid;not null;uniqueIndex:uniq_votes_poll_voter,priority:1;index"`
	OptionID  uuid.UUID `json:"option_id" gorm:"type:uuid;not null"`
	UserPhone *string   `json:"user_phone,omitempty" gorm:"size:20"`
	VoterKey  *string   `json:"-" gorm:"size:20;uniqueIndex:uniq_votes_poll_voter,priority:2"`
	Anonymous bool      `json:"anonymous" gorm:"not null;default:false"`
	VotedAt   time.Time `json:"voted_at" gorm:"not null"`
	IPAddress string    `json:"-" gorm:"size:45"`
	UserAgent string    `json:"-" gorm:"size:500"`
}
