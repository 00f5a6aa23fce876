package models

import (
	"time"

	"github.com/google/uuid"
)

type IdeaStatus string

const (
	IdeaStatusPending         IdeaStatus = "PENDING"
	IdeaStatusConvertedToPoll IdeaStatus = "CONVERTED_TO_POLL"
	IdeaStatusRejected        IdeaStatus = "REJECTED"
)

// Idea is a raw user suggestion. Status moves from PENDING to exactly one of
// CONVERTED_TO_POLL or REJECTED when the generation pipeline consumes it.
type Idea struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primarykey"`
	UserPhone   string     `json:"user_phone" gorm:"size:20;not null"`
	Content     string     `json:"content" gorm:"type:text;not null"`
	CategoryID  uuid.UUID  `json:"category_id" gorm:"type:uuid;not null"`
	Status      IdeaStatus `json:"status" gorm:"size:20;not null;default:'PENDING';index"`
	AiSummary   string     `json:"ai_summary,omitempty" gorm:"type:text"`
	Hashtags    []Hashtag  `json:"hashtags,omitempty" gorm:"many2many:idea_hashtags;"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	Upvotes     int64      `json:"upvotes" gorm:"not null;default:0"`
}

type IdeaHashtag struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	IdeaID    uuid.UUID `json:"idea_id" gorm:"type:uuid;index"`
	HashtagID uuid.UUID `json:"hashtag_id" gorm:"type:uuid;index"`
	CreatedAt time.Time `json:"created_at"`
}
