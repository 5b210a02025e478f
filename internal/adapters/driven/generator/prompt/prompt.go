// Package prompt assembles the grounded answer prompt shared by all
// answer-generator adapters.
package prompt

import (
	"fmt"

	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
	"github.com/marikraa/metropolia-first-year-helper/internal/core/ports/driven"
	"github.com/marikraa/metropolia-first-year-helper/internal/core/services"
)

// DefaultTemplate is the embedded answer prompt. It takes two formatting
// arguments: the rendered topic context and the verbatim question.
const DefaultTemplate = `You are a helpful assistant for first-year students at Metropolia University of Applied Sciences.

Only answer using the information below.
Do not invent details if information is missing.
Write clearly and concisely.

INFORMATION:
%s

QUESTION:
%s

ANSWER:`

// Build renders the matched topics into a grounding context and embeds
// it, with the question, into the answer prompt template. The template
// comes from the store when one is configured, otherwise from the
// embedded default.
func Build(store driven.PromptStore, question string, topics []domain.Topic) string {
	template := DefaultTemplate
	if store != nil {
		if loaded, err := store.Load(driven.PromptAnswer); err == nil {
			template = loaded
		}
	}
	return fmt.Sprintf(template, services.BuildContext(topics), question)
}
