// Package ollama provides an answer generator using a local Ollama
// inference server.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/marikraa/metropolia-first-year-helper/internal/adapters/driven/generator/prompt"
	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
	"github.com/marikraa/metropolia-first-year-helper/internal/core/ports/driven"
	"github.com/marikraa/metropolia-first-year-helper/internal/logger"
)

// Ensure Generator implements the interface.
var _ driven.AnswerGenerator = (*Generator)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.2"
	DefaultTimeout = 30 * time.Second

	numPredict  = 150
	temperature = 0.2
)

// Config holds configuration for the Ollama generator.
type Config struct {
	// BaseURL is the Ollama API base URL (default: http://localhost:11434).
	BaseURL string

	// Model is the model to use (default: llama3.2).
	Model string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Generator produces answers using the Ollama /api/generate endpoint.
// There is no credential concept: a local server is always "configured".
// Degradation policy is absence: an unreachable server or malformed
// response yields no answer rather than fallback text.
type Generator struct {
	client      *http.Client
	baseURL     string
	model       string
	promptStore driven.PromptStore
}

// generateRequest is the Ollama /api/generate request format.
type generateRequest struct {
	Model   string   `json:"model"`
	Prompt  string   `json:"prompt"`
	Stream  bool     `json:"stream"`
	Options *options `json:"options,omitempty"`
}

// options holds generation parameters.
type options struct {
	NumPredict  int     `json:"num_predict,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// generateResponse is the Ollama /api/generate response format. The
// response field is optional and may be empty.
type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// NewGenerator creates a new Ollama generator.
func NewGenerator(cfg Config) *Generator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Generator{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
	}
}

// Generate produces an answer grounded in the matched topics. Call
// failures and empty completions degrade to absence, with the detail
// logged for operators only.
func (g *Generator) Generate(ctx context.Context, question string, topics []domain.Topic) (string, bool) {
	answer, err := g.generate(ctx, prompt.Build(g.promptStore, question, topics))
	if err != nil {
		logger.Warn("ollama: %v", err)
		return "", false
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		logger.Debug("ollama: model returned empty response text")
		return "", false
	}
	return answer, true
}

// generate performs a single non-streaming inference call.
func (g *Generator) generate(ctx context.Context, userPrompt string) (string, error) {
	reqBody := generateRequest{
		Model:  g.model,
		Prompt: userPrompt,
		Stream: false,
		Options: &options{
			NumPredict:  numPredict,
			Temperature: temperature,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		g.baseURL+"/api/generate",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("ollama error (status %d): failed to read response", resp.StatusCode)
		}
		return "", fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return genResp.Response, nil
}

// ModelName returns the name of the model being used.
func (g *Generator) ModelName() string {
	return g.model
}

// SetPromptStore sets the prompt store for loading a customisable answer
// prompt. If not set, the embedded default prompt is used.
func (g *Generator) SetPromptStore(store driven.PromptStore) {
	g.promptStore = store
}
