package domain

import "time"

const unknownDescription = "Unknown"

// GeneratorProvider identifies an answer-generation backend.
type GeneratorProvider string

// Available providers.
const (
	// ProviderGroq is the Groq cloud chat-completions API.
	ProviderGroq GeneratorProvider = "groq"

	// ProviderHuggingFace is the Hugging Face hosted inference API.
	ProviderHuggingFace GeneratorProvider = "huggingface"

	// ProviderOllama is a local Ollama instance.
	ProviderOllama GeneratorProvider = "ollama"
)

// IsValid returns true if the provider is recognised.
func (p GeneratorProvider) IsValid() bool {
	switch p {
	case ProviderGroq, ProviderHuggingFace, ProviderOllama:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p GeneratorProvider) RequiresAPIKey() bool {
	return p == ProviderGroq || p == ProviderHuggingFace
}

// IsLocal returns true if this provider runs locally.
func (p GeneratorProvider) IsLocal() bool {
	return p == ProviderOllama
}

// String returns the string representation.
func (p GeneratorProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p GeneratorProvider) Description() string {
	switch p {
	case ProviderGroq:
		return "Groq (cloud)"
	case ProviderHuggingFace:
		return "Hugging Face (cloud)"
	case ProviderOllama:
		return "Ollama (local)"
	default:
		return unknownDescription
	}
}

// GeneratorSettings holds answer-provider configuration. Provider
// selection is a deployment-time choice; the orchestrator never fails
// over to a second provider at runtime.
type GeneratorSettings struct {
	// Provider is the answer-generation backend.
	Provider GeneratorProvider

	// Model is the model name. Empty selects the provider default.
	Model string

	// BaseURL is the API endpoint (for Ollama, or compatible cloud APIs).
	BaseURL string

	// APIKey is the credential (for Groq/Hugging Face). An empty key on a
	// cloud provider means "unconfigured": generation short-circuits to
	// absence without attempting a call.
	APIKey string

	// Timeout bounds a single generation call. Zero selects the
	// provider default.
	Timeout time.Duration
}

// IsConfigured returns true if the provider is set up well enough to be
// constructed. Note that a cloud provider without an API key is still
// constructed; it degrades to absence per the provider contract.
func (s GeneratorSettings) IsConfigured() bool {
	return s.Provider.IsValid()
}
