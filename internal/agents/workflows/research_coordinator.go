package workflows

import (
	"google.golang.org/adk/agent"

	"minerva/internal/agents"
	"minerva/pkg/errors"
)

// NewResearchCoordinator builds the LLM-delegated workflow: a coordinator
// agent that decides when to call the research and summarizer agents, each
// exposed to it as a function tool. The coordinator's own reasoning drives
// the ordering rather than a fixed pipeline.
func (f *Factory) NewResearchCoordinator() (agent.Agent, error) {
	if ag, ok := f.registry.Get(agents.AgentCoordinator); ok {
		return ag, nil
	}

	researcher, err := f.createAgent(agents.AgentResearcher)
	if err != nil {
		return nil, err
	}
	summarizer, err := f.createAgent(agents.AgentSummarizer)
	if err != nil {
		return nil, err
	}

	for _, sub := range []agent.Agent{researcher, summarizer} {
		t, err := agents.AsTool(sub)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to wrap %s as a tool", sub.Name())
		}
		f.base.Tools().Register(sub.Name(), t)
	}

	coordinator, err := f.createAgent(agents.AgentCoordinator)
	if err != nil {
		return nil, err
	}

	f.log.Debugw("Assembled research coordinator",
		"coordinator", coordinator.Name(),
		"delegates", []string{researcher.Name(), summarizer.Name()})

	return coordinator, nil
}
