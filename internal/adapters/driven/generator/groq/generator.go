// Package groq provides an answer generator using the Groq cloud API.
package groq

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
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.1-8b-instant"
	DefaultTimeout = 30 * time.Second

	maxTokens   = 150
	temperature = 0.2
)

// FallbackAnswer is shown verbatim when a Groq call fails. Degradation
// policy for this provider is "safe fallback text", not absence.
const FallbackAnswer = "The AI service is temporarily unavailable."

// Config holds configuration for the Groq generator.
type Config struct {
	// APIKey is the Groq API key. Empty means unconfigured: Generate
	// returns absence without attempting any call.
	APIKey string

	// BaseURL is the API base URL (default: https://api.groq.com/openai/v1).
	BaseURL string

	// Model is the model to use (default: llama-3.1-8b-instant).
	Model string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Generator produces answers using the Groq chat-completions API.
type Generator struct {
	client      *http.Client
	baseURL     string
	apiKey      string
	model       string
	promptStore driven.PromptStore
}

// chatCompletionRequest is the Groq /chat/completions request format.
type chatCompletionRequest struct {
	Model       string              `json:"model"`
	Messages    []chatCompletionMsg `json:"messages"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
	Temperature float64             `json:"temperature,omitempty"`
}

// chatCompletionMsg is the chat message format.
type chatCompletionMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse is the Groq /chat/completions response format.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewGenerator creates a new Groq generator. A missing API key is a
// deployment state, not an error; the generator is still constructed and
// degrades to absence.
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
// With no API key configured it returns absence without any call. On
// call failure it returns FallbackAnswer; the failure detail is logged
// for operators only.
func (g *Generator) Generate(ctx context.Context, question string, topics []domain.Topic) (string, bool) {
	if g.apiKey == "" {
		logger.Debug("groq: no API key configured, skipping generation")
		return "", false
	}

	answer, err := g.chatCompletion(ctx, prompt.Build(g.promptStore, question, topics))
	if err != nil {
		logger.Warn("groq: %v", err)
		return FallbackAnswer, true
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		logger.Warn("groq: empty completion text")
		return FallbackAnswer, true
	}
	return answer, true
}

// chatCompletion performs a single chat-completions call.
func (g *Generator) chatCompletion(ctx context.Context, userPrompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: g.model,
		Messages: []chatCompletionMsg{
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		g.baseURL+"/chat/completions",
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

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("groq error: %s", chatResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq error (status %d): %s", resp.StatusCode, string(body))
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("groq: no response choices returned")
	}

	return chatResp.Choices[0].Message.Content, nil
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
