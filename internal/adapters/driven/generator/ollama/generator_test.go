package ollama

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
		ID:               "it-support",
		Title:            "IT Support & Helpdesk",
		ShortDescription: "Where to get help with technical problems.",
		Details:          "Contact IT support with your student ID and a problem description.",
	},
}

func TestGenerate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, DefaultModel, req.Model)
		assert.False(t, req.Stream)
		assert.Contains(t, req.Prompt, "TOPIC: IT Support & Helpdesk")
		assert.Contains(t, req.Prompt, "wifi is broken")
		require.NotNil(t, req.Options)
		assert.Equal(t, 150, req.Options.NumPredict)

		_, _ = w.Write([]byte(`{"response":" Contact the helpdesk. ","done":true}`))
	}))
	defer server.Close()

	gen := NewGenerator(Config{BaseURL: server.URL})

	answer, ok := gen.Generate(context.Background(), "wifi is broken", testTopics)

	assert.True(t, ok)
	assert.Equal(t, "Contact the helpdesk.", answer)
}

func TestGenerate_EmptyResponseFieldReturnsAbsence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"done":true}`))
	}))
	defer server.Close()

	gen := NewGenerator(Config{BaseURL: server.URL})

	answer, ok := gen.Generate(context.Background(), "wifi is broken", testTopics)

	assert.False(t, ok)
	assert.Empty(t, answer)
}

func TestGenerate_HTTPErrorReturnsAbsence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model not found"}`))
	}))
	defer server.Close()

	gen := NewGenerator(Config{BaseURL: server.URL})

	_, ok := gen.Generate(context.Background(), "wifi is broken", testTopics)
	assert.False(t, ok)
}

func TestGenerate_TransportFailureReturnsAbsence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // connection refused

	gen := NewGenerator(Config{BaseURL: server.URL})

	_, ok := gen.Generate(context.Background(), "wifi is broken", testTopics)
	assert.False(t, ok)
}

func TestGenerate_MalformedResponseReturnsAbsence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{{{`))
	}))
	defer server.Close()

	gen := NewGenerator(Config{BaseURL: server.URL})

	_, ok := gen.Generate(context.Background(), "wifi is broken", testTopics)
	assert.False(t, ok)
}

func TestNewGenerator_Defaults(t *testing.T) {
	gen := NewGenerator(Config{})

	assert.Equal(t, DefaultModel, gen.ModelName())
	assert.Equal(t, DefaultBaseURL, gen.baseURL)
	assert.Equal(t, DefaultTimeout, gen.client.Timeout)
}
