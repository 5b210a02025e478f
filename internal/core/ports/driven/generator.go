package driven

import (
	"context"

	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
)

// AnswerGenerator produces a natural-language answer grounded in the
// matched topics, or reports that no answer is available.
//
// Implementations may include:
//   - Groq (cloud chat-completions API)
//   - Hugging Face (hosted inference API)
//   - Ollama (local inference server)
//
// The contract is identical across implementations:
//
//   - topics must be non-empty; calling Generate with no topics is a
//     programming error in the caller, not a condition to handle.
//   - Exactly one network or local-inference call is attempted per
//     invocation; there is no retry.
//   - Transport failures and malformed response bodies never escape as
//     errors. Each implementation converts them, per its declared
//     degradation policy, into either a fixed user-safe fallback answer
//     or absence (ok == false). Operator detail goes to internal/logger.
//   - A cloud implementation with no credential configured returns
//     absence without issuing any call.
//   - Returned text is trimmed of surrounding whitespace and non-empty
//     whenever ok is true.
type AnswerGenerator interface {
	// Generate produces an answer for the question from the topics.
	// ok is false when no answer is available.
	Generate(ctx context.Context, question string, topics []domain.Topic) (answer string, ok bool)

	// ModelName returns the name of the model being used.
	ModelName() string
}
