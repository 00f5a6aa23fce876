package services

import (
	"fmt"
	"strings"

	"bantora-api/models"

	"github.com/google/uuid"
)

// ValidateAiResponse enforces the generator contract against the idea batch
// before anything touches storage. Violations are never coerced; the whole
// hashtag's response is refused so its ideas stay pending for the next run.
func ValidateAiResponse(ideaByID map[uuid.UUID]models.Idea, response *models.AiResponse) error {
	if response == nil {
		return models.ErrorInvalidArgument{Message: "response is required"}
	}

	usedIdeaIDs := make(map[uuid.UUID]bool)

	for i, poll := range response.Polls {
		if strings.TrimSpace(poll.Title) == "" {
			return models.ErrorInvalidArgument{Message: fmt.Sprintf("polls[%d].title must not be blank", i)}
		}
		if poll.CategoryID == uuid.Nil {
			return models.ErrorInvalidArgument{Message: fmt.Sprintf("polls[%d].categoryId is required", i)}
		}
		if len(poll.Options) < 2 {
			return models.ErrorInvalidArgument{Message: fmt.Sprintf("polls[%d].options must have at least 2 entries", i)}
		}
		for j, option := range poll.Options {
			if strings.TrimSpace(option) == "" {
				return models.ErrorInvalidArgument{Message: fmt.Sprintf("polls[%d].options[%d] must not be blank", i, j)}
			}
		}
		if len(poll.SourceIdeaIDs) == 0 {
			return models.ErrorInvalidArgument{Message: fmt.Sprintf("polls[%d].sourceIdeaIds must not be empty", i)}
		}
		for _, sourceID := range poll.SourceIdeaIDs {
			idea, ok := ideaByID[sourceID]
			if !ok {
				return models.ErrorInvalidArgument{
					Message: fmt.Sprintf("polls[%d].sourceIdeaIds references unknown idea %s", i, sourceID),
				}
			}
			if idea.CategoryID != poll.CategoryID {
				return models.ErrorInvalidArgument{
					Message: fmt.Sprintf("polls[%d].categoryId must match the category of source idea %s", i, sourceID),
				}
			}
			usedIdeaIDs[sourceID] = true
		}
	}

	for _, rejectedID := range response.RejectedIdeaIDs {
		if _, ok := ideaByID[rejectedID]; !ok {
			return models.ErrorInvalidArgument{
				Message: fmt.Sprintf("rejectedIdeaIds references unknown idea %s", rejectedID),
			}
		}
		if usedIdeaIDs[rejectedID] {
			return models.ErrorInvalidArgument{
				Message: fmt.Sprintf("idea %s is both used by a poll and rejected", rejectedID),
			}
		}
	}

	return nil
}
