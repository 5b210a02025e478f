package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
)

var testTopics = []domain.Topic{
	{
		ID:               "accounts-and-logins",
		Title:            "Metropolia Accounts & Logins",
		ShortDescription: "How to activate your account.",
		Details:          "Reset passwords through the self-service portal.",
	},
}

func TestGenerate_MissingKeySkipsCall(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gen := NewGenerator(Config{BaseURL: server.URL})

	answer, ok := gen.Generate(context.Background(), "forgot password", testTopics)

	assert.False(t, ok)
	assert.Empty(t, answer)
	assert.Equal(t, 0, calls, "no transport call may be issued without a credential")
}

func TestGenerate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, DefaultModel, req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Contains(t, req.Messages[0].Content, "TOPIC: Metropolia Accounts & Logins")
		assert.Contains(t, req.Messages[0].Content, "forgot password")
		assert.Equal(t, 150, req.MaxTokens)
		assert.InDelta(t, 0.2, req.Temperature, 0.001)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  Reset it via the portal.  "}}]}`))
	}))
	defer server.Close()

	gen := NewGenerator(Config{APIKey: "test-key", BaseURL: server.URL})

	answer, ok := gen.Generate(context.Background(), "forgot password", testTopics)

	assert.True(t, ok)
	assert.Equal(t, "Reset it via the portal.", answer)
}

func TestGenerate_HTTPErrorFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit reached","type":"rate_limit"}}`))
	}))
	defer server.Close()

	gen := NewGenerator(Config{APIKey: "test-key", BaseURL: server.URL})

	answer, ok := gen.Generate(context.Background(), "forgot password", testTopics)

	assert.True(t, ok)
	assert.Equal(t, FallbackAnswer, answer)
}

func TestGenerate_MalformedResponseFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	gen := NewGenerator(Config{APIKey: "test-key", BaseURL: server.URL})

	answer, ok := gen.Generate(context.Background(), "forgot password", testTopics)

	assert.True(t, ok)
	assert.Equal(t, FallbackAnswer, answer)
}

func TestGenerate_NoChoicesFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	gen := NewGenerator(Config{APIKey: "test-key", BaseURL: server.URL})

	answer, ok := gen.Generate(context.Background(), "forgot password", testTopics)

	assert.True(t, ok)
	assert.Equal(t, FallbackAnswer, answer)
}

func TestGenerate_TransportFailureFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // connection refused

	gen := NewGenerator(Config{APIKey: "test-key", BaseURL: server.URL})

	answer, ok := gen.Generate(context.Background(), "forgot password", testTopics)

	assert.True(t, ok)
	assert.Equal(t, FallbackAnswer, answer)
}

func TestNewGenerator_Defaults(t *testing.T) {
	gen := NewGenerator(Config{APIKey: "k"})

	assert.Equal(t, DefaultModel, gen.ModelName())
	assert.Equal(t, DefaultBaseURL, gen.baseURL)
	assert.Equal(t, DefaultTimeout, gen.client.Timeout)
}
