package models

import "github.com/google/uuid"

// AiGeneratedPoll is one poll proposal parsed out of a completion. The
// generator contract: categoryId must match the category of every source
// idea, options are at least two, sourceIdeaIds at least one.
type AiGeneratedPoll struct {
	Title         string
	Description   string
	CategoryID    uuid.UUID
	Options       []string
	SourceIdeaIDs []uuid.UUID
}

// AiResponse is the typed form of the generator's output for one hashtag
// batch. Ideas may appear in a poll's sources or in RejectedIdeaIDs, never
// both; ideas in neither stay pending.
type AiResponse struct {
	Polls           []AiGeneratedPoll
	RejectedIdeaIDs []uuid.UUID
}
