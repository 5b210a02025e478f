// Package huggingface provides an answer generator using the Hugging
// Face hosted inference API.
package huggingface

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
	DefaultBaseURL = "https://api-inference.huggingface.co"
	DefaultModel   = "mistralai/Mistral-7B-Instruct-v0.2"
	DefaultTimeout = 30 * time.Second

	maxNewTokens = 150
	temperature  = 0.2
)

// Config holds configuration for the Hugging Face generator.
type Config struct {
	// APIKey is the Hugging Face access token. Empty means unconfigured:
	// Generate returns absence without attempting any call.
	APIKey string

	// BaseURL is the inference API base URL
	// (default: https://api-inference.huggingface.co).
	BaseURL string

	// Model is the model repository to use
	// (default: mistralai/Mistral-7B-Instruct-v0.2).
	Model string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Generator produces answers using the Hugging Face text-generation
// inference API. Degradation policy for this provider is absence: on any
// call failure the generator returns no answer rather than fallback text.
type Generator struct {
	client      *http.Client
	baseURL     string
	apiKey      string
	model       string
	promptStore driven.PromptStore
}

// textGenerationRequest is the inference API request format.
type textGenerationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters textGenerationParams `json:"parameters"`
}

// textGenerationParams holds generation parameters.
type textGenerationParams struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	DoSample       bool    `json:"do_sample"`
	ReturnFullText bool    `json:"return_full_text"`
}

// textGenerationResult is one generated candidate. The API returns
// either a single object of this shape or a one-element array of it,
// depending on model and routing; both carry the same field.
type textGenerationResult struct {
	GeneratedText string `json:"generated_text"`
}

// NewGenerator creates a new Hugging Face generator. A missing access
// token is a deployment state, not an error; the generator is still
// constructed and degrades to absence.
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
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}
}

// Generate produces an answer grounded in the matched topics.
// With no access token configured it returns absence without any call;
// call failures also degrade to absence, with the detail logged for
// operators only.
func (g *Generator) Generate(ctx context.Context, question string, topics []domain.Topic) (string, bool) {
	if g.apiKey == "" {
		logger.Debug("huggingface: no access token configured, skipping generation")
		return "", false
	}

	answer, err := g.textGeneration(ctx, prompt.Build(g.promptStore, question, topics))
	if err != nil {
		logger.Warn("huggingface: %v", err)
		return "", false
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		logger.Warn("huggingface: empty generated text")
		return "", false
	}
	return answer, true
}

// textGeneration performs a single inference call.
func (g *Generator) textGeneration(ctx context.Context, inputs string) (string, error) {
	reqBody := textGenerationRequest{
		Inputs: inputs,
		Parameters: textGenerationParams{
			MaxNewTokens:   maxNewTokens,
			Temperature:    temperature,
			DoSample:       true,
			ReturnFullText: false,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		g.baseURL+"/models/"+g.model,
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("huggingface error (status %d): %s", resp.StatusCode, string(body))
	}

	return extractGeneratedText(body)
}

// extractGeneratedText normalises the two response shapes the inference
// API produces: a bare object or a one-element array. Both yield the
// same generated_text field.
func extractGeneratedText(body []byte) (string, error) {
	var results []textGenerationResult
	if err := json.Unmarshal(body, &results); err == nil {
		if len(results) == 0 {
			return "", fmt.Errorf("huggingface: empty result array")
		}
		return results[0].GeneratedText, nil
	}

	var result textGenerationResult
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return result.GeneratedText, nil
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
