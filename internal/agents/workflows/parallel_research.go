package workflows

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/workflowagents/parallelagent"
	"google.golang.org/adk/agent/workflowagents/sequentialagent"

	"minerva/internal/agents"
	"minerva/pkg/errors"
)

// NewParallelResearch builds the fan-out/fan-in workflow: three domain
// researchers run concurrently, each writing to its own state key, then an
// aggregator merges the three reports into one executive summary.
func (f *Factory) NewParallelResearch() (agent.Agent, error) {
	tech, err := f.createAgent(agents.AgentTechResearcher)
	if err != nil {
		return nil, err
	}
	health, err := f.createAgent(agents.AgentHealthResearcher)
	if err != nil {
		return nil, err
	}
	finance, err := f.createAgent(agents.AgentFinanceResearcher)
	if err != nil {
		return nil, err
	}
	aggregator, err := f.createAgent(agents.AgentAggregator)
	if err != nil {
		return nil, err
	}

	team, err := parallelagent.New(parallelagent.Config{
		AgentConfig: agent.Config{
			Name:        "ParallelResearchTeam",
			Description: "Runs tech, health and finance researchers concurrently.",
			SubAgents:   []agent.Agent{tech, health, finance},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create parallel research team")
	}

	system, err := sequentialagent.New(sequentialagent.Config{
		AgentConfig: agent.Config{
			Name:        "ResearchSystem",
			Description: "Fans out to three researchers, then aggregates their reports.",
			SubAgents:   []agent.Agent{team, aggregator},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create research system")
	}

	f.log.Debugw("Assembled parallel research system", "researchers", 3)
	return system, nil
}
