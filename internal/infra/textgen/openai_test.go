package textgen

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(baseURL string) *openAIGenerator {
	cfg := &config.Config{
		TextGen: &config.TextGenConfig{
			APIKey:         "test-key",
			BaseURL:        baseURL,
			Model:          "test-model",
			SupportContact: "support@example.com",
		},
	}

	return NewOpenAIGenerator(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*openAIGenerator)
}

func completionServer(t *testing.T, text string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.NotEmpty(t, req.Prompt)

		resp := completionResponse{}
		resp.Choices = append(resp.Choices, struct {
			Text string `json:"text"`
		}{Text: text})
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestAnswerCustomerQuestion_UsesBackend(t *testing.T) {
	srv := completionServer(t, "  You can download purchased courses from your account page.  ")
	defer srv.Close()

	gen := newTestGenerator(srv.URL)
	answer := gen.AnswerCustomerQuestion(context.Background(), "How do I download my course?")

	assert.Equal(t, "You can download purchased courses from your account page.", answer)
}

func TestAnswerCustomerQuestion_FallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	gen := newTestGenerator(srv.URL)
	answer := gen.AnswerCustomerQuestion(context.Background(), "Hello?")

	assert.Contains(t, answer, "support@example.com")
}

func TestAnswerCustomerQuestion_FallsBackWithoutAPIKey(t *testing.T) {
	gen := newTestGenerator("http://localhost:1")
	gen.apiKey = ""

	answer := gen.AnswerCustomerQuestion(context.Background(), "Hello?")
	assert.Contains(t, answer, "support@example.com")
}

func TestGenerateCourseOutline_FallbackIsDeterministic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	gen := newTestGenerator(srv.URL)

	first := gen.GenerateCourseOutline(context.Background(), "data science", "beginner", "4 weeks")
	second := gen.GenerateCourseOutline(context.Background(), "data science", "beginner", "4 weeks")

	assert.Equal(t, first, second)
	assert.Contains(t, first, "# Data Science Course")
	assert.Contains(t, first, "beginner")
}

func TestGenerateProductDescription_FallbackListsFeatures(t *testing.T) {
	gen := newTestGenerator("http://localhost:1")
	gen.apiKey = ""

	desc := gen.GenerateProductDescription(context.Background(), "AI Content Pack", []string{"fast turnaround", "custom tone"})

	assert.Equal(t, "AI Content Pack - A premium service offering fast turnaround, custom tone.", desc)
}

func TestComplete_RejectsEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(completionResponse{}))
	}))
	defer srv.Close()

	gen := newTestGenerator(srv.URL)
	_, err := gen.complete(context.Background(), "prompt", 10)
	assert.Error(t, err)
}
