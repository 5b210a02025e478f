package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
}

func TestTUICmd_ServiceNotConfigured(t *testing.T) {
	old := askService
	askService = nil
	defer func() {
		askService = old
	}()

	err := runTUI(tuiCmd, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ask service not configured")
}
