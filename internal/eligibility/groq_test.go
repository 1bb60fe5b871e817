package eligibility_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Joshua4-0p/blood-donation-app/internal/config"
	"github.com/Joshua4-0p/blood-donation-app/internal/eligibility"
	"github.com/Joshua4-0p/blood-donation-app/internal/logger"
	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.NotEmpty(t, body["model"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
}

func newEvaluator(baseURL string) *eligibility.GroqEvaluator {
	return eligibility.NewGroqEvaluator(&config.EligibilityConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
	})
}

func TestEvaluateEligibleVerdict(t *testing.T) {
	server := chatServer(t, `{"eligible": true, "reason": "All checks passed"}`)
	defer server.Close()

	verdict, err := newEvaluator(server.URL).Evaluate(context.Background(), map[string]interface{}{"age": 30}, nil)
	require.NoError(t, err)
	require.True(t, verdict.Eligible)
	require.Equal(t, "All checks passed", verdict.Reason)
}

func TestEvaluateIneligibleVerdict(t *testing.T) {
	server := chatServer(t, `{"eligible": false, "reason": "Recent tattoo"}`)
	defer server.Close()

	verdict, err := newEvaluator(server.URL).Evaluate(context.Background(), map[string]interface{}{"tattoo": true}, nil)
	require.NoError(t, err)
	require.False(t, verdict.Eligible)
	require.Equal(t, "Recent tattoo", verdict.Reason)
}

func TestEvaluateUnparsableAnswerFailsSafe(t *testing.T) {
	server := chatServer(t, "I cannot determine eligibility from this questionnaire.")
	defer server.Close()

	verdict, err := newEvaluator(server.URL).Evaluate(context.Background(), map[string]interface{}{"age": 30}, nil)
	require.NoError(t, err)
	require.False(t, verdict.Eligible)
	require.Equal(t, "Invalid response: I cannot determine eligibility from this questionnaire.", verdict.Reason)
}

func TestEvaluateServerErrorReturnsServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newEvaluator(server.URL).Evaluate(context.Background(), map[string]interface{}{"age": 30}, nil)
	require.ErrorIs(t, err, appErrors.ErrEligibilityService)
}

func TestEvaluateEmptyChoicesReturnsServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	_, err := newEvaluator(server.URL).Evaluate(context.Background(), map[string]interface{}{"age": 30}, nil)
	require.ErrorIs(t, err, appErrors.ErrEligibilityService)
}

func TestEvaluateSendsLastDonationDate(t *testing.T) {
	var prompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Messages, 1)
		prompt = body.Messages[0].Content

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "{\"eligible\": true, \"reason\": \"ok\"}"}}]}`))
	}))
	defer server.Close()

	last := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	_, err := newEvaluator(server.URL).Evaluate(context.Background(), map[string]interface{}{"age": 30}, &last)
	require.NoError(t, err)
	require.Contains(t, prompt, "2026-03-15")
}

func TestFormatLastDonation(t *testing.T) {
	require.Equal(t, "None", eligibility.FormatLastDonation(nil))

	last := time.Date(2025, 12, 1, 23, 59, 0, 0, time.UTC)
	require.Equal(t, "2025-12-01", eligibility.FormatLastDonation(&last))
}
