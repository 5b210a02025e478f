package driven

// Prompt names used with PromptStore.
const (
	// PromptAnswer is the grounded answer-generation prompt. It takes two
	// formatting arguments: the rendered topic context and the question.
	PromptAnswer = "answer"
)

// PromptStore provides access to customisable prompt templates.
// Implementations load prompts from user-editable files with embedded
// defaults as fallback.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)
}
