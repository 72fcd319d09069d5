package workflows

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/workflowagents/sequentialagent"

	"minerva/internal/agents"
	"minerva/pkg/errors"
)

// NewBlogPipeline builds the fixed sequential workflow: outline, then draft,
// then edit. Each stage reads its predecessor's output through session state,
// so the ordering is deterministic regardless of model behavior.
func (f *Factory) NewBlogPipeline() (agent.Agent, error) {
	outliner, err := f.createAgent(agents.AgentOutliner)
	if err != nil {
		return nil, err
	}
	writer, err := f.createAgent(agents.AgentWriter)
	if err != nil {
		return nil, err
	}
	editor, err := f.createAgent(agents.AgentEditor)
	if err != nil {
		return nil, err
	}

	pipeline, err := sequentialagent.New(sequentialagent.Config{
		AgentConfig: agent.Config{
			Name:        "BlogPipeline",
			Description: "Writes a blog post in three fixed stages: outline, draft, edit.",
			SubAgents:   []agent.Agent{outliner, writer, editor},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create blog pipeline")
	}

	f.log.Debugw("Assembled blog pipeline", "stages", 3)
	return pipeline, nil
}
