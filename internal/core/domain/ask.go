package domain

// AskResult is the outcome of answering one question.
// It carries the matched topics and, when generation succeeded, the
// AI-authored answer text.
type AskResult struct {
	// Question is the trimmed question text as asked.
	Question string

	// Topics are the matched topics in relevance order. Empty when
	// nothing in the registry overlapped the question.
	Topics []Topic

	// Answer is the generated answer text. Only meaningful when
	// Answered is true.
	Answer string

	// Answered reports whether an answer was produced. False when no
	// topics matched, no provider is configured, or the provider
	// degraded to absence.
	Answered bool
}
