package workflows

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/workflowagents/loopagent"
	"google.golang.org/adk/agent/workflowagents/sequentialagent"

	"minerva/internal/agents"
	"minerva/pkg/errors"
)

// NewStoryRefinement builds the bounded critique loop: an initial writer
// produces a draft, then critic and refiner alternate. The refiner calls
// exit_loop on an approval verdict; MaxIterations caps the loop regardless
// so a stubborn critic cannot run it forever.
func (f *Factory) NewStoryRefinement() (agent.Agent, error) {
	initialWriter, err := f.createAgent(agents.AgentInitialWriter)
	if err != nil {
		return nil, err
	}
	critic, err := f.createAgent(agents.AgentCritic)
	if err != nil {
		return nil, err
	}
	refiner, err := f.createAgent(agents.AgentRefiner)
	if err != nil {
		return nil, err
	}

	loop, err := loopagent.New(loopagent.Config{
		AgentConfig: agent.Config{
			Name:        "StoryRefinementLoop",
			Description: "Alternates critique and refinement until approval.",
			SubAgents:   []agent.Agent{critic, refiner},
		},
		MaxIterations: f.loopMaxIterations,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create story refinement loop")
	}

	pipeline, err := sequentialagent.New(sequentialagent.Config{
		AgentConfig: agent.Config{
			Name:        "StoryPipeline",
			Description: "Writes a first draft, then refines it in a bounded loop.",
			SubAgents:   []agent.Agent{initialWriter, loop},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create story pipeline")
	}

	f.log.Debugw("Assembled story refinement pipeline", "max_iterations", f.loopMaxIterations)
	return pipeline, nil
}
