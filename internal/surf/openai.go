package surf

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/arikatz123/SurfScout/internal/models"
)

var (
	// ErrMissingAPIKey is returned when Assess is called without a
	// configured credential. No outbound call is made in that case.
	ErrMissingAPIKey = errors.New("OpenAI API key not found. Please add it to your .env file as OPENAI_API_KEY")

	// ErrQuotaExceeded is returned when the provider rejects the call
	// because the account is out of quota or over its rate limit.
	ErrQuotaExceeded = errors.New("OpenAI API quota exceeded. Please check your billing details or try again later")
)

const systemPrompt = "You are a surf conditions expert focusing on Australian beaches."

// OpenAIAssessor asks an OpenAI chat model to rate surf conditions on a
// 0-10 scale with a one-paragraph justification.
type OpenAIAssessor struct {
	api    *openai.Client
	apiKey string
	model  string
}

// NewAssessor creates an assessor backed by the OpenAI chat completion API.
// An empty baseURL uses the public endpoint.
func NewAssessor(apiKey, baseURL, model string) *OpenAIAssessor {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}

	return &OpenAIAssessor{
		api:    openai.NewClientWithConfig(cfg),
		apiKey: apiKey,
		model:  model,
	}
}

// Assess sends one completion request and parses the JSON reply. Every
// failure mode returns an Assessment with an absent score and a fallback
// explanation; the error carries the diagnostic.
func (a *OpenAIAssessor) Assess(ctx context.Context, conditions models.Conditions, beachName string) (models.Assessment, error) {
	if strings.TrimSpace(a.apiKey) == "" {
		return models.Assessment{Explanation: ExplanationKeyRequired}, ErrMissingAPIKey
	}

	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(conditions, beachName)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := a.api.CreateChatCompletion(ctx, req)
	if err != nil {
		if isQuotaError(err) {
			return models.Assessment{Explanation: ExplanationAssessFailed}, fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
		}
		return models.Assessment{Explanation: ExplanationAssessFailed}, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.Assessment{Explanation: ExplanationAssessFailed}, errors.New("OpenAI API returned no choices")
	}

	assessment, err := parseAssessment(resp.Choices[0].Message.Content)
	if err != nil {
		return models.Assessment{Explanation: ExplanationAssessFailed}, fmt.Errorf("parsing assessment reply: %w", err)
	}

	return assessment, nil
}

func buildPrompt(conditions models.Conditions, beachName string) string {
	var b strings.Builder

	b.WriteString("You are an expert surfer with deep knowledge of Australian surf conditions. ")
	fmt.Fprintf(&b, "Please analyze the following surf conditions for %s:\n\n", beachName)
	fmt.Fprintf(&b, "Tide: %v meters, type: %s\n", conditions.Tide.Height, conditions.Tide.Type)
	fmt.Fprintf(&b, "Wind: %v km/h, direction: %v°\n", conditions.Wind.Speed, conditions.Wind.Direction)
	fmt.Fprintf(&b, "Swell: %v meters, direction: %v°\n\n", conditions.Swell.Height, conditions.Swell.Direction)
	b.WriteString("Based on these conditions, give me a surf quality score from 0-10 (0 being terrible, 10 being perfect) ")
	b.WriteString("and a one-paragraph explanation justifying the score. Consider how these conditions affect wave quality, ")
	b.WriteString("ride-ability, and overall surf experience. Reply in JSON format with keys 'score' and 'explanation'.")

	return b.String()
}

// assessmentReply is the two-key JSON structure the model is asked for.
// json.Number tolerates the score arriving as a bare number or a quoted one.
type assessmentReply struct {
	Score       json.Number `json:"score"`
	Explanation string      `json:"explanation"`
}

func parseAssessment(raw string) (models.Assessment, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var reply assessmentReply
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return models.Assessment{}, err
	}

	assessment := models.Assessment{Explanation: reply.Explanation}
	if reply.Score != "" {
		score, err := reply.Score.Float64()
		if err != nil {
			return models.Assessment{}, fmt.Errorf("invalid score %q: %w", reply.Score, err)
		}
		assessment.Score = &score
	}

	return assessment, nil
}

func isQuotaError(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "quota")
}
