package models

import (
	"time"

	"github.com/google/uuid"
)

// Hashtag rows are created lazily the first time a tag is used and never
// deleted. Tag text is stored normalized (trimmed, lowercase, no leading #).
type Hashtag struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primarykey"`
	Tag       string    `json:"tag" gorm:"size:64;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// HashtagPendingCount is one row of the hashtag demand ranking: how many
// PENDING ideas are currently linked to the hashtag.
type HashtagPendingCount struct {
	HashtagID        uuid.UUID `json:"hashtag_id"`
	Tag              string    `json:"tag"`
	PendingIdeaCount int64     `json:"pending_idea_count"`
}
