package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
)

// mockPromptStore implements driven.PromptStore for testing.
type mockPromptStore struct {
	template string
	err      error
}

func (m *mockPromptStore) Load(_ string) (string, error) {
	return m.template, m.err
}

var testTopics = []domain.Topic{
	{
		Title:            "Oma Portal & Study Tools",
		ShortDescription: "Where to see courses and grades.",
		Details:          "Oma is the central portal for your studies.",
	},
}

func TestBuild_Default(t *testing.T) {
	got := Build(nil, "where do I see my grades?", testTopics)

	assert.Contains(t, got, "TOPIC: Oma Portal & Study Tools")
	assert.Contains(t, got, "Oma is the central portal for your studies.")
	assert.Contains(t, got, "where do I see my grades?")
	assert.Contains(t, got, "Only answer using the information below.")
}

func TestBuild_CustomStore(t *testing.T) {
	store := &mockPromptStore{template: "CTX:%s Q:%s"}

	got := Build(store, "question", testTopics)

	assert.Contains(t, got, "CTX:TOPIC: Oma Portal & Study Tools")
	assert.Contains(t, got, "Q:question")
}

func TestBuild_StoreErrorFallsBackToDefault(t *testing.T) {
	store := &mockPromptStore{err: assert.AnError}

	got := Build(store, "question", testTopics)
	assert.Contains(t, got, "Only answer using the information below.")
}
