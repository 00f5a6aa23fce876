package services

import (
	"encoding/json"
	"strings"

	"bantora-api/models"
)

type promptIdea struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId"`
	UserPhone  string `json:"userPhone"`
	Content    string `json:"content"`
}

// BuildPollPrompt renders the structured-generation request for one hashtag
// batch. Pure function: same tag and ideas always produce the same text.
// The natural-language wording is free to change; the JSON schema in the
// instructions is the contract the validator enforces.
func BuildPollPrompt(tag string, ideas []models.Idea) (string, error) {
	var builder strings.Builder
	builder.WriteString("You are generating polls for the hashtag '")
	builder.WriteString(tag)
	builder.WriteString("'.\n\n")
	builder.WriteString("Input ideas are JSON objects with fields: id, categoryId, userPhone, content.\n")
	builder.WriteString("Return STRICT JSON (no markdown) with this schema:\n")
	builder.WriteString("{\n")
	builder.WriteString("  \"polls\": [\n")
	builder.WriteString("    {\n")
	builder.WriteString("      \"title\": \"...\",\n")
	builder.WriteString("      \"description\": \"...\",\n")
	builder.WriteString("      \"categoryId\": \"<uuid-from-input>\",\n")
	builder.WriteString("      \"options\": [\"...\", \"...\"],\n")
	builder.WriteString("      \"sourceIdeaIds\": [\"<uuid>\", ...]\n")
	builder.WriteString("    }\n")
	builder.WriteString("  ],\n")
	builder.WriteString("  \"rejectedIdeaIds\": [\"<uuid>\", ...]\n")
	builder.WriteString("}\n\n")
	builder.WriteString("Rules:\n")
	builder.WriteString("- Deduplicate similar ideas into one poll when appropriate.\n")
	builder.WriteString("- Reject infeasible or unclear ideas by listing their IDs in rejectedIdeaIds.\n")
	builder.WriteString("- Every poll must have at least 2 options.\n")
	builder.WriteString("- Every poll must reference at least 1 source idea ID from the input list.\n")
	builder.WriteString("- categoryId for each poll MUST be one of the categoryIds from its source ideas.\n\n")
	builder.WriteString("Input ideas:\n")

	payload := make([]promptIdea, 0, len(ideas))
	for _, idea := range ideas {
		payload = append(payload, promptIdea{
			ID:         idea.ID.String(),
			CategoryID: idea.CategoryID.String(),
			UserPhone:  idea.UserPhone,
			Content:    idea.Content,
		})
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	builder.Write(encoded)

	return builder.String(), nil
}
