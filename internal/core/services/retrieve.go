package services

import (
	"sort"
	"strings"

	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
)

// DefaultTopK is the number of topics retrieval returns at most.
const DefaultTopK = 3

// scoredTopic holds an intermediate ranking entry. Scores never leave
// the retriever; only the topics survive past its boundary.
type scoredTopic struct {
	topic domain.Topic
	score int
}

// searchableText concatenates the parts of a topic that participate in
// matching: title, tags, example questions and the short description.
// Details are deliberately excluded to avoid over-matching on long prose.
func searchableText(t domain.Topic) string {
	parts := make([]string, 0, 2+len(t.Tags)+len(t.ExampleQuestions))
	parts = append(parts, t.Title)
	parts = append(parts, t.Tags...)
	parts = append(parts, t.ExampleQuestions...)
	parts = append(parts, t.ShortDescription)
	return strings.Join(parts, " ")
}

// ScoreTopic returns the number of distinct query tokens that also occur
// in the topic's searchable text. Duplicate tokens count once.
func ScoreTopic(query TokenSet, t domain.Topic) int {
	vocab := Tokenize(searchableText(t))

	score := 0
	for token := range query {
		if vocab.Contains(token) {
			score++
		}
	}
	return score
}

// Retrieve ranks topics by token overlap with the query and returns at
// most topK topics with a nonzero score, best first. Ties keep the
// topics' original registry order; zero overlap means "not relevant" and
// is dropped rather than ranked last. An empty result means generation
// must be skipped.
func Retrieve(query string, topics []domain.Topic, topK int) []domain.Topic {
	if topK <= 0 {
		topK = DefaultTopK
	}

	queryTokens := Tokenize(query)

	scored := make([]scoredTopic, 0, len(topics))
	for _, t := range topics {
		scored = append(scored, scoredTopic{topic: t, score: ScoreTopic(queryTokens, t)})
	}

	// Stable keeps registry order for equal scores; the tie-break is an
	// observable part of the contract, not an accident.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	result := make([]domain.Topic, 0, topK)
	for _, s := range scored {
		if s.score == 0 {
			break
		}
		result = append(result, s.topic)
		if len(result) == topK {
			break
		}
	}
	return result
}
