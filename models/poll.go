package models

import (
	"time"

	"github.com/google/uuid"
)

type PollScope string

const (
	ScopeNational    PollScope = "NATIONAL"
	ScopeRegional    PollScope = "REGIONAL"
	ScopeContinental PollScope = "CONTINENTAL"
	ScopeGlobal      PollScope = "GLOBAL"
)

type PollStatus string

const (
	PollStatusPending PollStatus = "PENDING"
	PollStatusActive  PollStatus = "ACTIVE"
	PollStatusClosed  PollStatus = "CLOSED"
)

type Poll struct {
	ID                 uuid.UUID    `json:"id" gorm:"type:uuid;primarykey"`
	Title              string       `json:"title" gorm:"not null"`
	Description        string       `json:"description" gorm:"type:text"`
	CreatorPhone       string       `json:"creator_phone" gorm:"size:20;not null"`
	CategoryID         uuid.UUID    `json:"category_id" gorm:"type:uuid;not null"`
	Scope              PollScope    `json:"scope" gorm:"size:20;not null"`
	Status             PollStatus   `json:"status" gorm:"size:20;not null;default:'PENDING';index"`
	StartTime          time.Time    `json:"start_time" gorm:"not null"`
	EndTime            time.Time    `json:"end_time" gorm:"not null"`
	AllowAnonymous     bool         `json:"allow_anonymous" gorm:"not null;default:true"`
	AllowMultipleVotes bool         `json:"allow_multiple_votes" gorm:"not null;default:false"`
	TotalVotes         int64        `json:"total_votes" gorm:"not null;default:0"`
	Options            []PollOption `json:"options,omitempty" gorm:"foreignKey:PollID"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// PollOption keeps its display position in OptionOrder; storage order is
// never relied on.
type PollOption struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primarykey"`
	PollID     uuid.UUID `json:"poll_id" gorm:"type:uuid;not null;index"`
	OptionText string    `json:"option_text" gorm:"size:500;not null"`
	OptionOrder int      `json:"option_order" gorm:"not null"`
	VotesCount int64     `json:"votes_count" gorm:"not null;default:0"`
}

// PollHashtag records which hashtag's batch generated the poll.
type PollHashtag struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	PollID    uuid.UUID `json:"poll_id" gorm:"type:uuid;index"`
	HashtagID uuid.UUID `json:"hashtag_id" gorm:"type:uuid;index"`
	CreatedAt time.Time `json:"created_at"`
}

// PollSourceIdea records provenance; every poll has at least one row.
type PollSourceIdea struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	PollID    uuid.UUID `json:"poll_id" gorm:"type:uuid;index"`
	IdeaID    uuid.UUID `json:"idea_id" gorm:"type:uuid;index"`
	CreatedAt time.Time `json:"created_at"`
}
