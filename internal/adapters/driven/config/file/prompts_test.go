package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marikraa/metropolia-first-year-helper/internal/core/ports/driven"
)

func TestPromptStore_LoadDefault(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	got, err := store.Load(driven.PromptAnswer)
	require.NoError(t, err)
	assert.Contains(t, got, "Only answer using the information below.")
}

func TestPromptStore_CreatesDefaultFileOnFirstLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	_, err = store.Load(driven.PromptAnswer)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, driven.PromptAnswer+".txt"))
	assert.NoError(t, err, "default prompt file should be created lazily")
}

func TestPromptStore_UserFileWins(t *testing.T) {
	dir := t.TempDir()
	custom := "Answer briefly.\n\n%s\n\n%s"
	require.NoError(t, os.WriteFile(filepath.Join(dir, driven.PromptAnswer+".txt"), []byte(custom), 0o600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	got, err := store.Load(driven.PromptAnswer)
	require.NoError(t, err)
	assert.Equal(t, "Answer briefly.\n\n%s\n\n%s", got)
}

func TestPromptStore_UnknownNameFallsBackToError(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("no-such-prompt")
	assert.Error(t, err)
}

func TestPromptStore_Reload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	first, err := store.Load(driven.PromptAnswer)
	require.NoError(t, err)

	// Edit the file after the initial cached load.
	require.NoError(t, os.WriteFile(filepath.Join(dir, driven.PromptAnswer+".txt"), []byte("edited %s %s"), 0o600))

	cached, err := store.Load(driven.PromptAnswer)
	require.NoError(t, err)
	assert.Equal(t, first, cached, "cache should serve the old value")

	store.Reload()

	fresh, err := store.Load(driven.PromptAnswer)
	require.NoError(t, err)
	assert.Equal(t, "edited %s %s", fresh)
}
