package services

import (
	"context"
	"strings"

	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
	"github.com/marikraa/metropolia-first-year-helper/internal/core/ports/driven"
	"github.com/marikraa/metropolia-first-year-helper/internal/core/ports/driving"
	"github.com/marikraa/metropolia-first-year-helper/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// AskService composes retrieval, context building and answer generation.
type AskService struct {
	registry  *domain.Registry
	generator driven.AnswerGenerator
	topK      int
}

// NewAskService creates a new ask service. The generator parameter is
// optional (can be nil); without one, questions still return matched
// topics but never an AI answer.
func NewAskService(registry *domain.Registry, generator driven.AnswerGenerator) *AskService {
	return &AskService{
		registry:  registry,
		generator: generator,
		topK:      DefaultTopK,
	}
}

// SetTopK overrides the maximum number of retrieved topics.
func (s *AskService) SetTopK(topK int) {
	if topK > 0 {
		s.topK = topK
	}
}

// Registry exposes the read-only topic registry.
func (s *AskService) Registry() *domain.Registry {
	return s.registry
}

// Ask answers one question. A blank question yields
// domain.ErrEmptyQuestion without touching retrieval. When no topic
// matched, generation is skipped entirely: there is nothing to ground an
// answer in. Otherwise the configured generator is invoked exactly once;
// the service never retries and never falls back to another provider.
func (s *AskService) Ask(ctx context.Context, question string) (domain.AskResult, error) {
	logger.Section("Ask")

	question = strings.TrimSpace(question)
	if question == "" {
		logger.Debug("Blank question, nothing to do")
		return domain.AskResult{}, domain.ErrEmptyQuestion
	}
	logger.Debug("Question: %q", question)

	topics := Retrieve(question, s.registry.Topics(), s.topK)
	logger.Debug("Matched topics: %d", len(topics))

	result := domain.AskResult{
		Question: question,
		Topics:   topics,
	}

	if len(topics) == 0 {
		logger.Debug("No overlap with registry, skipping generation")
		return result, nil
	}

	if s.generator == nil {
		logger.Debug("No generator configured, returning topics only")
		return result, nil
	}

	logger.Info("Generating answer with model %s", s.generator.ModelName())
	answer, ok := s.generator.Generate(ctx, question, topics)
	result.Answer = answer
	result.Answered = ok
	logger.Debug("Generation produced answer: %t", ok)

	return result, nil
}
