package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPrompt(t *testing.T) {
	t.Run("argument wins", func(t *testing.T) {
		got, err := readPrompt("Write a parser", strings.NewReader("ignored"), false)
		require.NoError(t, err)
		assert.Equal(t, "Write a parser", got)
	})

	t.Run("argument is trimmed", func(t *testing.T) {
		got, err := readPrompt("  padded prompt \n", nil, true)
		require.NoError(t, err)
		assert.Equal(t, "padded prompt", got)
	})

	t.Run("piped stdin when no argument", func(t *testing.T) {
		got, err := readPrompt("", strings.NewReader("Create a REST API\n"), false)
		require.NoError(t, err)
		assert.Equal(t, "Create a REST API", got)
	})

	t.Run("interactive terminal with no argument fails", func(t *testing.T) {
		_, err := readPrompt("", nil, true)
		require.Error(t, err)
		assert.Equal(t, "no prompt provided", err.Error())
	})

	t.Run("empty argument fails", func(t *testing.T) {
		_, err := readPrompt("   ", nil, true)
		require.Error(t, err)
		assert.Equal(t, "empty prompt provided", err.Error())
	})

	t.Run("whitespace-only stdin fails", func(t *testing.T) {
		_, err := readPrompt("", strings.NewReader(" \n\t "), false)
		require.Error(t, err)
		assert.Equal(t, "empty prompt provided", err.Error())
	})
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("a", "b"))
	assert.Equal(t, "b", firstNonEmpty("", "b"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

func TestFirstDuration(t *testing.T) {
	assert.Equal(t, time.Second, firstDuration(time.Second, time.Minute))
	assert.Equal(t, time.Minute, firstDuration(0, time.Minute))
	assert.Equal(t, time.Duration(0), firstDuration(0, 0))
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, version, rootCmd.Version)
	assert.True(t, rootCmd.SilenceUsage)

	// At most one positional argument.
	require.NotNil(t, rootCmd.Args)
	assert.NoError(t, rootCmd.Args(rootCmd, []string{"one prompt"}))
	assert.Error(t, rootCmd.Args(rootCmd, []string{"one", "two"}))
}
