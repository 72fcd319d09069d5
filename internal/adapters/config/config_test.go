package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minerva/pkg/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GOOGLE_API_KEY", "GEMINI_API_KEY", "AI_PROVIDER", "AI_MODEL",
		"SEARCH_API_KEY", "SEARCH_ENGINE_ID",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "minerva", cfg.App.Name)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.AI.Model)
	assert.Equal(t, 5, cfg.Agents.RetryAttempts)
	assert.EqualValues(t, 2, cfg.Agents.LoopMaxIterations)
	assert.Equal(t, 3, cfg.Search.MaxResults)
	assert.False(t, cfg.Search.Configured())
}

func TestLoadMirrorsGeminiKeyAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "alias-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "alias-key", cfg.AI.GoogleAPIKey)
	assert.Equal(t, "alias-key", os.Getenv("GOOGLE_API_KEY"))
}

func TestRequireAPIKey(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	err = cfg.RequireAPIKey()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingAPIKey))
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")

	cfg.AI.GoogleAPIKey = "some-key"
	assert.NoError(t, cfg.RequireAPIKey())
}

func TestSearchConfigured(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEARCH_API_KEY", "k")
	t.Setenv("SEARCH_ENGINE_ID", "cx")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Search.Configured())
}
