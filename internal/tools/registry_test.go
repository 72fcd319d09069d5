package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	registry.Register("exit_loop", NewExitLoopTool())

	got, ok := registry.Get("exit_loop")
	require.True(t, ok)
	assert.NotNil(t, got)

	_, ok = registry.Get("unknown")
	assert.False(t, ok)
}

func TestRegistryList(t *testing.T) {
	registry := NewRegistry()
	assert.Empty(t, registry.List())

	registry.Register("exit_loop", NewExitLoopTool())
	assert.ElementsMatch(t, []string{"exit_loop"}, registry.List())
}
