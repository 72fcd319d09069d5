package demos

import (
	"context"
	"fmt"

	"minerva/internal/agents"
	"minerva/internal/cli"
)

// assistantQueries are the canned questions the assistant demo answers.
var assistantQueries = []string{
	"What is Agent Development Kit from Google? What languages is the SDK available in?",
	"What's the weather in London?",
}

// RunAssistant creates the single helpful-assistant agent and answers the
// canned queries in turn.
func (d *Demos) RunAssistant(ctx context.Context) error {
	d.printHeader("SIMPLE AI ASSISTANT")

	assistant, err := d.base.CreateAgentForType(agents.AgentAssistant, d.cfg.AI.Provider, d.cfg.AI.Model)
	if err != nil {
		return err
	}

	fmt.Fprintln(d.out, cli.RenderOK("Assistant agent ready, running queries..."))

	for i, query := range assistantQueries {
		d.printSection(fmt.Sprintf("Query %d: %s", i+1, query))

		result, err := d.runAgent(ctx, assistant, query)
		if err != nil {
			fmt.Fprintln(d.out, cli.RenderError(fmt.Sprintf("Query failed: %v", err)))
			return err
		}

		fmt.Fprintf(d.out, "\nResponse: %s\n", result.FinalText)
		d.printStats(result)
	}

	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, cli.RenderMuted(fmt.Sprintf("total session cost: $%.6f", d.costs.TotalCost())))
	return nil
}
