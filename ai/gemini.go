// Package ai owns all knowledge of the Gemini REST wire format. Callers
// hand it a prompt and get back a typed models.AiResponse; raw provider
// JSON never leaves this package.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"bantora-api/config"
	"bantora-api/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
	logger     zerolog.Logger
}

func NewClient(cfg config.AiConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		url:        cfg.GeminiURL,
		apiKey:     cfg.GeminiAPIKey,
		logger:     logger.With().Str("component", "gemini").Logger(),
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeneratePolls submits the prompt and parses the completion into the poll
// response schema. Transport and HTTP failures come back as
// ErrorGatewayUnavailable; anything unparseable as ErrorMalformedCompletion.
// No retry happens here; the orchestrator isolates failures per hashtag.
func (c *Client) GeneratePolls(ctx context.Context, prompt string) (*models.AiResponse, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, models.ErrorInvalidArgument{Message: "prompt is required"}
	}
	if c.apiKey == "" {
		return nil, models.ErrorGatewayUnavailable{Message: "missing Gemini API key configuration"}
	}
	if c.url == "" {
		return nil, models.ErrorGatewayUnavailable{Message: "missing Gemini URL configuration"}
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"?key="+c.apiKey, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.ErrorGatewayUnavailable{Message: "Gemini API call failed: " + err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.ErrorGatewayUnavailable{Message: "failed to read Gemini response body"}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error().Int("status", resp.StatusCode).Msg("Gemini API returned error")
		return nil, models.ErrorGatewayUnavailable{
			Message:    "Gemini API call failed",
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	text, err := extractCandidateText(respBody)
	if err != nil {
		return nil, err
	}

	return parseAiResponse(stripCodeFences(text))
}

func extractCandidateText(raw []byte) (string, error) {
	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", models.ErrorMalformedCompletion{Message: "failed to parse Gemini response: " + err.Error()}
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", models.ErrorMalformedCompletion{Message: "Gemini response missing candidates"}
	}
	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", models.ErrorMalformedCompletion{Message: "Gemini response missing text"}
	}
	return text, nil
}

// stripCodeFences removes a surrounding markdown fence (``` or ```json)
// that models sometimes wrap strict-JSON answers in.
func stripCodeFences(text string) string {
	cleaned := text
	if strings.HasPrefix(cleaned, "```") {
		if idx := strings.IndexByte(cleaned, '\n'); idx > 0 {
			cleaned = cleaned[idx+1:]
		}
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}

type aiPollJSON struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	CategoryID    string   `json:"categoryId"`
	Options       []string `json:"options"`
	SourceIdeaIDs []string `json:"sourceIdeaIds"`
}

type aiResponseJSON struct {
	Polls           *[]aiPollJSON `json:"polls"`
	RejectedIdeaIDs *[]string     `json:"rejectedIdeaIds"`
}

func parseAiResponse(text string) (*models.AiResponse, error) {
	var parsed aiResponseJSON
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, models.ErrorMalformedCompletion{Message: "completion is not valid JSON: " + err.Error()}
	}
	if parsed.Polls == nil {
		return nil, models.ErrorMalformedCompletion{Message: "completion missing polls array"}
	}
	if parsed.RejectedIdeaIDs == nil {
		return nil, models.ErrorMalformedCompletion{Message: "completion missing rejectedIdeaIds array"}
	}

	response := &models.AiResponse{
		Polls:           make([]models.AiGeneratedPoll, 0, len(*parsed.Polls)),
		RejectedIdeaIDs: make([]uuid.UUID, 0, len(*parsed.RejectedIdeaIDs)),
	}

	for i, poll := range *parsed.Polls {
		categoryID, err := uuid.Parse(poll.CategoryID)
		if err != nil {
			return nil, models.ErrorMalformedCompletion{
				Message: fmt.Sprintf("polls[%d].categoryId is not a valid id", i),
			}
		}
		sourceIDs := make([]uuid.UUID, 0, len(poll.SourceIdeaIDs))
		for _, raw := range poll.SourceIdeaIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, models.ErrorMalformedCompletion{
					Message: fmt.Sprintf("polls[%d].sourceIdeaIds contains invalid id %q", i, raw),
				}
			}
			sourceIDs = append(sourceIDs, id)
		}
		response.Polls = append(response.Polls, models.AiGeneratedPoll{
			Title:         poll.Title,
			Description:   poll.Description,
			CategoryID:    categoryID,
			Options:       poll.Options,
			SourceIdeaIDs: sourceIDs,
		})
	}

	for _, raw := range *parsed.RejectedIdeaIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, models.ErrorMalformedCompletion{
				Message: fmt.Sprintf("rejectedIdeaIds contains invalid id %q", raw),
			}
		}
		response.RejectedIdeaIDs = append(response.RejectedIdeaIDs, id)
	}

	return response, nil
}
