// Package ai provides factory functions for creating answer-generator
// adapters from deployment-time settings.
package ai

import (
	"fmt"

	"github.com/marikraa/metropolia-first-year-helper/internal/adapters/driven/generator/groq"
	"github.com/marikraa/metropolia-first-year-helper/internal/adapters/driven/generator/huggingface"
	"github.com/marikraa/metropolia-first-year-helper/internal/adapters/driven/generator/ollama"
	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
	"github.com/marikraa/metropolia-first-year-helper/internal/core/ports/driven"
	"github.com/marikraa/metropolia-first-year-helper/internal/logger"
)

// CreateGenerator creates the answer generator selected by settings.
// Returns (nil, nil) when no provider is selected at all: the helper then
// runs in topics-only mode. A cloud provider without its API key is still
// created; it degrades to absence per the generator contract.
func CreateGenerator(settings domain.GeneratorSettings, prompts driven.PromptStore) (driven.AnswerGenerator, error) {
	if settings.Provider == "" {
		logger.Debug("no answer provider selected, running topics-only")
		return nil, nil
	}

	switch settings.Provider {
	case domain.ProviderGroq:
		gen := groq.NewGenerator(groq.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
			Timeout: settings.Timeout,
		})
		gen.SetPromptStore(prompts)
		logger.Info("answer provider: %s, model %s", settings.Provider.Description(), gen.ModelName())
		return gen, nil

	case domain.ProviderHuggingFace:
		gen := huggingface.NewGenerator(huggingface.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
			Timeout: settings.Timeout,
		})
		gen.SetPromptStore(prompts)
		logger.Info("answer provider: %s, model %s", settings.Provider.Description(), gen.ModelName())
		return gen, nil

	case domain.ProviderOllama:
		gen := ollama.NewGenerator(ollama.Config{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
			Timeout: settings.Timeout,
		})
		gen.SetPromptStore(prompts)
		logger.Info("answer provider: %s, model %s", settings.Provider.Description(), gen.ModelName())
		return gen, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedProvider, settings.Provider)
	}
}
