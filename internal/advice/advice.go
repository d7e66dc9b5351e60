// Package advice generates budget advice text from a dashboard snapshot via
// the Gemini API. The feature is strictly best effort: every failure class
// degrades to a fixed user-facing message, never to an HTTP error.
package advice

import (
	"context"
	"errors"
	"net/http"

	"github.com/budgetwise/backend/internal/logger"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	msgQuota       = "Our AI advisor is currently busy (Quota Exceeded). Please try again later."
	msgAPIError    = "Unable to generate advice at this time due to an API error."
	msgUnexpected  = "An unexpected error occurred while fetching advice."
	msgUnavailable = "AI advice is not configured on this server."
)

type Service struct {
	client *genai.Client
	model  string
}

var Default *Service

// Init builds the package-level service. A missing API key leaves the
// feature disabled rather than failing boot.
func Init(ctx context.Context, apiKey, model string) {
	if apiKey == "" {
		logger.Log.Warn("gemini api key not set, advice feature disabled")
		return
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Log.Error("failed to create gemini client, advice feature disabled", zap.Error(err))
		return
	}
	Default = &Service{client: client, model: model}
	logger.Log.Info("gemini client initialized", zap.String("model", model))
}

// BudgetAdvice asks the model to comment on the snapshot. The returned string
// is always safe to show to the user.
func (s *Service) BudgetAdvice(ctx context.Context, snap Snapshot) string {
	if s == nil || s.client == nil {
		return msgUnavailable
	}

	prompt := BuildPrompt(snap)
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			if apiErr.Code == http.StatusTooManyRequests {
				return msgQuota
			}
			logger.Log.Error("gemini api error", zap.Int("code", apiErr.Code), zap.Error(err))
			return msgAPIError
		}
		logger.Log.Error("advice generation failed", zap.Error(err))
		return msgUnexpected
	}

	text := resp.Text()
	if text == "" {
		return msgUnexpected
	}
	return text
}
