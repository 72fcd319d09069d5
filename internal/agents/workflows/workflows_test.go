package workflows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minerva/internal/adapters/ai"
	"minerva/internal/agents"
	"minerva/internal/tools"
	"minerva/internal/tools/search"
)

func newTestFactory(t *testing.T) *Factory {
	t.Helper()

	aiRegistry := ai.NewProviderRegistry()
	require.NoError(t, aiRegistry.Register(ai.NewGeminiProvider()))

	toolRegistry := tools.NewRegistry()
	toolRegistry.Register(search.ToolName, search.NewTool(nil))
	toolRegistry.Register("exit_loop", tools.NewExitLoopTool())

	base, err := agents.NewFactory(agents.FactoryDeps{
		AIRegistry:   aiRegistry,
		ToolRegistry: toolRegistry,
	})
	require.NoError(t, err)

	factory, err := NewFactory(Config{
		Base:              base,
		Provider:          ai.ProviderNameGemini.String(),
		Model:             "gemini-2.5-flash-lite",
		LoopMaxIterations: 2,
	})
	require.NoError(t, err)

	return factory
}

func TestNewFactoryRequiresBase(t *testing.T) {
	_, err := NewFactory(Config{})
	assert.Error(t, err)
}

func TestResearchCoordinatorRegistersDelegateTools(t *testing.T) {
	factory := newTestFactory(t)

	coordinator, err := factory.NewResearchCoordinator()
	require.NoError(t, err)
	assert.Equal(t, "ResearchCoordinator", coordinator.Name())

	// The coordinator calls its sub-agents through the tool registry.
	_, ok := factory.base.Tools().Get("ResearchAgent")
	assert.True(t, ok)
	_, ok = factory.base.Tools().Get("SummarizerAgent")
	assert.True(t, ok)
}

func TestResearchCoordinatorIsCached(t *testing.T) {
	factory := newTestFactory(t)

	first, err := factory.NewResearchCoordinator()
	require.NoError(t, err)
	second, err := factory.NewResearchCoordinator()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestBlogPipelineStructure(t *testing.T) {
	factory := newTestFactory(t)

	pipeline, err := factory.NewBlogPipeline()
	require.NoError(t, err)
	assert.Equal(t, "BlogPipeline", pipeline.Name())

	subs := pipeline.SubAgents()
	require.Len(t, subs, 3)
	assert.Equal(t, "OutlineAgent", subs[0].Name())
	assert.Equal(t, "WriterAgent", subs[1].Name())
	assert.Equal(t, "EditorAgent", subs[2].Name())
}

func TestParallelResearchStructure(t *testing.T) {
	factory := newTestFactory(t)

	system, err := factory.NewParallelResearch()
	require.NoError(t, err)
	assert.Equal(t, "ResearchSystem", system.Name())

	subs := system.SubAgents()
	require.Len(t, subs, 2)
	assert.Equal(t, "ParallelResearchTeam", subs[0].Name())
	assert.Equal(t, "AggregatorAgent", subs[1].Name())

	team := subs[0].SubAgents()
	require.Len(t, team, 3)
	assert.Equal(t, "TechResearcher", team[0].Name())
	assert.Equal(t, "HealthResearcher", team[1].Name())
	assert.Equal(t, "FinanceResearcher", team[2].Name())
}

func TestStoryRefinementStructure(t *testing.T) {
	factory := newTestFactory(t)

	pipeline, err := factory.NewStoryRefinement()
	require.NoError(t, err)
	assert.Equal(t, "StoryPipeline", pipeline.Name())

	subs := pipeline.SubAgents()
	require.Len(t, subs, 2)
	assert.Equal(t, "InitialWriterAgent", subs[0].Name())
	assert.Equal(t, "StoryRefinementLoop", subs[1].Name())

	loop := subs[1].SubAgents()
	require.Len(t, loop, 2)
	assert.Equal(t, "CriticAgent", loop[0].Name())
	assert.Equal(t, "RefinerAgent", loop[1].Name())
}

func TestWorkflowsShareAgentInstances(t *testing.T) {
	factory := newTestFactory(t)

	first, err := factory.NewBlogPipeline()
	require.NoError(t, err)
	second, err := factory.NewBlogPipeline()
	require.NoError(t, err)

	// Stage agents come from the cache even though the pipeline wrapper is new.
	assert.Same(t, first.SubAgents()[0], second.SubAgents()[0])
}
