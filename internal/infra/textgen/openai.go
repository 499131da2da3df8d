// Package textgen implements the text-completion adapter over an
// OpenAI-compatible completions API. Every generation degrades to a
// deterministic fallback string when the backend is unreachable, misconfigured
// or returns an error, so callers never see a failure.
package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const (
	defaultTimeout = 15 * time.Second

	outlineMaxTokens     = 1500
	descriptionMaxTokens = 300
	answerMaxTokens      = 250
	completionTemp       = 0.7
)

type openAIGenerator struct {
	apiKey         string
	baseURL        string
	model          string
	supportContact string
	client         *http.Client
	logger         *slog.Logger
}

type completionRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
}

type completionError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewOpenAIGenerator constructs the text-completion adapter.
func NewOpenAIGenerator(cfg *config.Config, logger *slog.Logger) service.ContentGenerator {
	timeout := cfg.TextGen.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &openAIGenerator{
		apiKey:         cfg.TextGen.APIKey,
		baseURL:        strings.TrimSuffix(cfg.TextGen.BaseURL, "/"),
		model:          cfg.TextGen.Model,
		supportContact: cfg.TextGen.SupportContact,
		client:         &http.Client{Timeout: timeout},
		logger:         logger,
	}
}

// AnswerCustomerQuestion produces a support answer for a free-form question.
func (g *openAIGenerator) AnswerCustomerQuestion(ctx context.Context, question string) string {
	prompt := fmt.Sprintf(`As a customer service representative for an online digital-services store, answer this question: %s
The store sells digital services and self-paced courses, and offers purchase-gated course downloads.
Provide a helpful, friendly, and professional response.`, question)

	text, err := g.complete(ctx, prompt, answerMaxTokens)
	if err != nil {
		g.logger.LogAttrs(ctx, slog.LevelWarn, "text generation failed, using fallback answer",
			slog.String("error", err.Error()),
		)

		return fmt.Sprintf("I apologize, but I'm having trouble processing your request right now. Please contact our support team at %s for assistance.", g.supportContact)
	}

	return text
}

// GenerateCourseOutline drafts a course outline for a topic at a level.
func (g *openAIGenerator) GenerateCourseOutline(ctx context.Context, topic, level, duration string) string {
	prompt := fmt.Sprintf(`Create a comprehensive course outline for %s at %s level.
The course should be %s long and include:
1. Learning objectives
2. Weekly breakdown
3. Key concepts
4. Practical exercises
5. Assessment criteria

Topic: %s`, topic, level, duration, topic)

	text, err := g.complete(ctx, prompt, outlineMaxTokens)
	if err != nil {
		g.logger.LogAttrs(ctx, slog.LevelWarn, "text generation failed, using fallback outline",
			slog.String("topic", topic),
			slog.String("error", err.Error()),
		)

		return fmt.Sprintf("# %s Course\n\nA comprehensive course on %s for %s level students.", titleCase(topic), topic, level)
	}

	return text
}

// GenerateProductDescription drafts marketing copy for a product.
func (g *openAIGenerator) GenerateProductDescription(ctx context.Context, productName string, features []string) string {
	joined := strings.Join(features, ", ")
	prompt := fmt.Sprintf(`Write a compelling product description for %s with these features: %s.
The description should be engaging, highlight benefits, and include a call to action.`, productName, joined)

	text, err := g.complete(ctx, prompt, descriptionMaxTokens)
	if err != nil {
		g.logger.LogAttrs(ctx, slog.LevelWarn, "text generation failed, using fallback description",
			slog.String("product", productName),
			slog.String("error", err.Error()),
		)

		return fmt.Sprintf("%s - A premium service offering %s.", productName, joined)
	}

	return text
}

// complete performs one completion call. No retries: a failed call falls back
// immediately so chat latency stays bounded.
func (g *openAIGenerator) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("textgen api key not set")
	}
	if g.baseURL == "" {
		return "", errors.New("textgen base url not set")
	}

	body, err := json.Marshal(completionRequest{
		Model:       g.model,
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: completionTemp,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal completion request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/completions", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to create completion request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "completion request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read completion response")
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr completionError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", errors.Errorf("completion API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}

		return "", errors.Errorf("completion API error (%d)", resp.StatusCode)
	}

	var completion completionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", errors.Wrap(err, "failed to decode completion response")
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("completion response has no choices")
	}

	text := strings.TrimSpace(completion.Choices[0].Text)
	if text == "" {
		return "", errors.New("completion response is empty")
	}

	return text, nil
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}
