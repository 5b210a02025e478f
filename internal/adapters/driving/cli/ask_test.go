package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
)

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
}

func TestAskCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAskCmd_ShowsTopicsAndAnswer(t *testing.T) {
	mock, cleanup := setupTestServices(t)
	defer cleanup()
	topic, err := mock.registry.TopicByID("accounts-and-logins")
	require.NoError(t, err)
	mock.result = domain.AskResult{
		Question: "I forgot my password",
		Topics:   []domain.Topic{topic},
		Answer:   "Reset it through the self-service portal.",
		Answered: true,
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "I forgot my password"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "These topics might help")
	assert.Contains(t, out, "Metropolia Accounts & Logins")
	assert.Contains(t, out, "Reset it through the self-service portal.")
	assert.Equal(t, 1, mock.calls)
}

func TestAskCmd_TopicsWithoutAnswer(t *testing.T) {
	mock, cleanup := setupTestServices(t)
	defer cleanup()
	topic, err := mock.registry.TopicByID("campus-basics")
	require.NoError(t, err)
	mock.result = domain.AskResult{
		Question: "where can I eat",
		Topics:   []domain.Topic{topic},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "where can I eat"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Campus Basics")
	assert.NotContains(t, out, "Answer:")
}

func TestAskCmd_NoMatches(t *testing.T) {
	mock, cleanup := setupTestServices(t)
	defer cleanup()
	mock.result = domain.AskResult{Question: "zzz"}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "zzz"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "No matching topics found")
}

func TestAskCmd_EmptyQuestion(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "   "})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "question must not be empty")
}

func TestAskCmd_LimitFlagSetsTopK(t *testing.T) {
	mock, cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "-n", "5", "printing"})
	defer func() {
		rootCmd.SetArgs(nil)
		askLimit = 0
	}()

	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, 5, mock.topK)
}

func TestAskCmd_JSONOutput(t *testing.T) {
	mock, cleanup := setupTestServices(t)
	defer cleanup()
	topic, err := mock.registry.TopicByID("campus-basics")
	require.NoError(t, err)
	mock.result = domain.AskResult{
		Question: "printing",
		Topics:   []domain.Topic{topic},
		Answer:   "Use the print kiosks.",
		Answered: true,
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--json", "printing"})
	defer func() {
		rootCmd.SetArgs(nil)
		askJSON = false
	}()

	require.NoError(t, rootCmd.Execute())

	// JSON uses capitalized field names from the domain structs
	out := buf.String()
	assert.Contains(t, out, `"Question": "printing"`)
	assert.Contains(t, out, `"Answered": true`)
}

func TestAskCmd_ServiceNotConfigured(t *testing.T) {
	old := askService
	askService = nil
	defer func() {
		askService = old
	}()

	err := runAsk(askCmd, []string{"test"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ask service not configured")
}
