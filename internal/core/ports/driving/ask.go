package driving

import (
	"context"

	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
)

// AskService answers free-text student questions against the topic
// registry, optionally generating a grounded natural-language answer.
type AskService interface {
	// Ask matches the question against the registry and, when topics
	// matched, invokes the configured answer generator exactly once.
	// A blank question yields domain.ErrEmptyQuestion.
	Ask(ctx context.Context, question string) (domain.AskResult, error)

	// Registry exposes the read-only topic registry for browsing.
	Registry() *domain.Registry
}
