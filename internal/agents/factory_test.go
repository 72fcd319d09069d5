package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	"minerva/internal/adapters/ai"
	"minerva/internal/tools"
)

func newTestDeps(t *testing.T) FactoryDeps {
	t.Helper()

	aiRegistry := ai.NewProviderRegistry()
	require.NoError(t, aiRegistry.Register(ai.NewGeminiProvider()))

	dummy, err := functiontool.New(
		functiontool.Config{Name: "google_search", Description: "test stand-in"},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			return map[string]interface{}{"result": "ok"}, nil
		})
	require.NoError(t, err)

	toolRegistry := tools.NewRegistry()
	toolRegistry.Register("google_search", dummy)
	toolRegistry.Register("exit_loop", dummy)

	return FactoryDeps{AIRegistry: aiRegistry, ToolRegistry: toolRegistry}
}

func TestNewFactoryRequiresAIRegistry(t *testing.T) {
	_, err := NewFactory(FactoryDeps{})
	assert.Error(t, err)
}

func TestCreateAgentForType(t *testing.T) {
	factory, err := NewFactory(newTestDeps(t))
	require.NoError(t, err)

	ag, err := factory.CreateAgentForType(AgentAssistant, "gemini", "gemini-2.5-flash-lite")
	require.NoError(t, err)
	assert.Equal(t, "HelpfulAssistant", ag.Name())
}

func TestCreateAgentUnknownType(t *testing.T) {
	factory, err := NewFactory(newTestDeps(t))
	require.NoError(t, err)

	_, err = factory.CreateAgentForType(AgentType("bogus"), "gemini", "gemini-2.5-flash-lite")
	assert.Error(t, err)
}

func TestCreateAgentUnknownModel(t *testing.T) {
	factory, err := NewFactory(newTestDeps(t))
	require.NoError(t, err)

	_, err = factory.CreateAgentForType(AgentAssistant, "gemini", "no-such-model")
	assert.Error(t, err)
}

func TestCreateAgentMissingTool(t *testing.T) {
	factory, err := NewFactory(FactoryDeps{AIRegistry: newTestDeps(t).AIRegistry})
	require.NoError(t, err)

	_, err = factory.CreateAgent(AgentConfig{
		Type:        AgentAssistant,
		Name:        "NoTools",
		Instruction: "x",
		Tools:       []string{"google_search"},
		AIProvider:  "gemini",
		Model:       "gemini-2.5-flash-lite",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool not found")
}

func TestDefaultAgentConfigsComplete(t *testing.T) {
	for _, agentType := range []AgentType{
		AgentAssistant,
		AgentResearcher, AgentSummarizer, AgentCoordinator,
		AgentOutliner, AgentWriter, AgentEditor,
		AgentTechResearcher, AgentHealthResearcher, AgentFinanceResearcher, AgentAggregator,
		AgentInitialWriter, AgentCritic, AgentRefiner,
	} {
		cfg, ok := DefaultAgentConfigs[agentType]
		require.True(t, ok, "missing config for %s", agentType)
		assert.NotEmpty(t, cfg.Name, "agent %s has no name", agentType)
		assert.NotEmpty(t, cfg.Instruction, "agent %s has no instruction", agentType)
	}
}
