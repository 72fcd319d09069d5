package agents

import (
	"context"
	"fmt"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	adkmodel "google.golang.org/adk/model"
	adktool "google.golang.org/adk/tool"

	"minerva/internal/adapters/ai"
	"minerva/internal/tools"
)

// FactoryDeps gathers external dependencies needed to instantiate agents.
type FactoryDeps struct {
	AIRegistry   *ai.ProviderRegistry
	ToolRegistry *tools.Registry
}

// Factory creates configured ADK agents from DefaultAgentConfigs.
type Factory struct {
	aiRegistry   *ai.ProviderRegistry
	toolRegistry *tools.Registry
}

// NewFactory builds an agent factory with required dependencies.
func NewFactory(deps FactoryDeps) (*Factory, error) {
	if deps.AIRegistry == nil {
		return nil, fmt.Errorf("AI provider registry is required")
	}

	if deps.ToolRegistry == nil {
		deps.ToolRegistry = tools.NewRegistry()
	}

	return &Factory{aiRegistry: deps.AIRegistry, toolRegistry: deps.ToolRegistry}, nil
}

// Tools exposes the tool registry so workflows can register agent-as-tool wrappers.
func (f *Factory) Tools() *tools.Registry {
	return f.toolRegistry
}

// CreateAgent constructs a single ADK agent instance from a config.
func (f *Factory) CreateAgent(cfg AgentConfig) (agent.Agent, error) {
	modelInfo, err := f.aiRegistry.ResolveModel(context.Background(), cfg.AIProvider, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve model %s/%s: %w", cfg.AIProvider, cfg.Model, err)
	}

	llmModel := adkmodel.BasicModel{ID: modelInfo.Name, ProviderID: cfg.AIProvider, Tokens: modelInfo.MaxTokens}

	agentTools := make([]adktool.Tool, 0, len(cfg.Tools))
	for _, toolName := range cfg.Tools {
		t, ok := f.toolRegistry.Get(toolName)
		if !ok {
			return nil, fmt.Errorf("tool not found: %s", toolName)
		}
		agentTools = append(agentTools, t)
	}

	return llmagent.New(llmagent.Config{
		Name:        cfg.Name,
		Description: cfg.Description,
		Model:       llmModel,
		Tools:       agentTools,
		Instruction: cfg.Instruction,
		OutputKey:   cfg.OutputKey,
	})
}

// CreateAgentForType instantiates a default-configured agent with the given
// provider and model.
func (f *Factory) CreateAgentForType(agentType AgentType, provider, model string) (agent.Agent, error) {
	cfg, ok := DefaultAgentConfigs[agentType]
	if !ok {
		return nil, fmt.Errorf("unknown agent type: %s", agentType)
	}

	cfg.AIProvider = provider
	cfg.Model = model
	return f.CreateAgent(cfg)
}
