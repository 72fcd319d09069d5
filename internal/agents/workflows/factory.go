package workflows

import (
	"google.golang.org/adk/agent"

	"minerva/internal/agents"
	"minerva/pkg/errors"
	"minerva/pkg/logger"
)

// Config parameterizes workflow assembly. Provider and Model apply to every
// LLM agent in a workflow; LoopMaxIterations bounds the refinement loop.
type Config struct {
	Base              *agents.Factory
	Provider          string
	Model             string
	LoopMaxIterations uint
}

// Factory assembles the multi-agent workflow graphs from individually
// configured LLM agents. Created agents are cached in a registry so repeated
// demo runs reuse the same instances.
type Factory struct {
	base              *agents.Factory
	registry          *agents.Registry
	provider          string
	model             string
	loopMaxIterations uint
	log               *logger.Logger
}

// NewFactory builds a workflow factory.
func NewFactory(cfg Config) (*Factory, error) {
	if cfg.Base == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "base agent factory is required")
	}
	if cfg.LoopMaxIterations == 0 {
		cfg.LoopMaxIterations = 2
	}

	return &Factory{
		base:              cfg.Base,
		registry:          agents.NewRegistry(),
		provider:          cfg.Provider,
		model:             cfg.Model,
		loopMaxIterations: cfg.LoopMaxIterations,
		log:               logger.Get().With("component", "workflows"),
	}, nil
}

// createAgent returns the cached agent for a type, creating it on first use.
func (f *Factory) createAgent(agentType agents.AgentType) (agent.Agent, error) {
	if ag, ok := f.registry.Get(agentType); ok {
		return ag, nil
	}

	ag, err := f.base.CreateAgentForType(agentType, f.provider, f.model)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s agent", agentType)
	}

	f.registry.Register(agentType, ag)
	return ag, nil
}
