package eligibility

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/Joshua4-0p/blood-donation-app/internal/config"
	"github.com/Joshua4-0p/blood-donation-app/internal/logger"
	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.3-70b-versatile"
	defaultTimeout = 30 * time.Second
)

// promptTemplate encodes the standard WHO/FDA screening heuristics the
// decision service is instructed to apply.
const promptTemplate = `Analyze this health questionnaire: %s
Donation history: Last donation on %s (or None if no history).
Evaluate eligibility based on WHO/FDA rules:
- Age 18-65
- Weight >50kg (assume from questionnaire)
- No recent illness, travel to high-risk areas, tattoos (<6 months), pregnancy, etc.
- Minimum 56 days since last donation.
Output JSON: {"eligible": bool, "reason": str}`

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GroqEvaluator asks a Groq-hosted model for an eligibility verdict over the
// OpenAI-compatible chat completions API.
type GroqEvaluator struct {
	httpClient *resty.Client
	model      string
}

func NewGroqEvaluator(cfg *config.EligibilityConfig) *GroqEvaluator {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &GroqEvaluator{
		httpClient: client,
		model:      model,
	}
}

func (e *GroqEvaluator) Evaluate(ctx context.Context, questionnaire map[string]interface{}, lastDonation *time.Time) (Verdict, error) {
	encoded, err := json.Marshal(questionnaire)
	if err != nil {
		return Verdict{}, fmt.Errorf("failed to encode questionnaire: %w", err)
	}

	lastDate := FormatLastDonation(lastDonation)
	prompt := fmt.Sprintf(promptTemplate, string(encoded), lastDate)

	var response chatResponse
	resp, err := e.httpClient.R().
		SetContext(ctx).
		SetBody(chatRequest{
			Model:    e.model,
			Messages: []chatMessage{{Role: "user", Content: prompt}},
		}).
		SetResult(&response).
		Post("/chat/completions")

	if err != nil {
		logger.Error("Eligibility service call failed", zap.Error(err))
		return Verdict{}, appErrors.ErrEligibilityService
	}
	if resp.IsError() {
		logger.Error("Eligibility service returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return Verdict{}, appErrors.ErrEligibilityService
	}
	if len(response.Choices) == 0 {
		logger.Error("Eligibility service returned no choices")
		return Verdict{}, appErrors.ErrEligibilityService
	}

	content := response.Choices[0].Message.Content

	verdict, ok := parseVerdict(content)
	if !ok {
		// Fail safe: an unreadable answer never defaults to eligible.
		logger.Warn("Eligibility response was not parsable, deferring donor",
			zap.String("raw_response", content),
		)
		return Verdict{
			Eligible: false,
			Reason:   "Invalid response: " + content,
		}, nil
	}

	logger.Info("Eligibility verdict received",
		zap.Bool("eligible", verdict.Eligible),
		zap.String("last_donation_date", lastDate),
	)

	return verdict, nil
}

// parseVerdict interprets the model's answer as the expected JSON shape.
func parseVerdict(content string) (Verdict, bool) {
	var verdict Verdict
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &verdict); err != nil {
		return Verdict{}, false
	}
	return verdict, true
}
