package services

import (
	"strings"

	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
)

// ContextDelimiter separates topic blocks in the rendered grounding
// context. It never occurs inside a block, so providers and tests can
// split the context back into its blocks losslessly.
const ContextDelimiter = "\n\n---\n\n"

// BuildContext renders the matched topics into a single grounding text
// block for answer generation. Each topic contributes its title, short
// description and details; tags, example questions and links are
// retrieval and presentation aids, not answer material. Input order is
// preserved.
func BuildContext(topics []domain.Topic) string {
	blocks := make([]string, 0, len(topics))
	for _, t := range topics {
		var b strings.Builder
		b.WriteString("TOPIC: ")
		b.WriteString(t.Title)
		b.WriteString("\n")
		b.WriteString(t.ShortDescription)
		b.WriteString("\n")
		b.WriteString(t.Details)
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, ContextDelimiter)
}
