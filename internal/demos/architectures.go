package demos

import (
	"context"
	"fmt"

	"minerva/internal/agents"
	"minerva/internal/cli"
	"minerva/internal/cli/prompt"
	"minerva/pkg/errors"
)

// Default inputs used when the user presses Enter or stdin is not a terminal.
const (
	defaultResearchTopic = "latest advancements in quantum computing and what they mean for AI"
	defaultBlogTopic     = "benefits of multi-agent systems for software developers"
	defaultStoryPrompt   = "a lighthouse keeper who discovers a mysterious, glowing map"

	briefingPrompt = "Run the daily executive briefing on Tech, Health, and Finance"
)

// Menu options for the architectures demo.
const (
	menuResearch = "1. Multi-agent research & summarization (LLM-orchestrated)"
	menuBlog     = "2. Sequential blog post pipeline (Outline -> Write -> Edit)"
	menuParallel = "3. Parallel multi-topic research (concurrent fan-out)"
	menuStory    = "4. Loop-based story refinement (bounded critique loop)"
	menuGuide    = "5. Show architecture guide"
	menuExit     = "6. Exit"
)

// RunArchitectures drives the interactive architectures menu. With piped
// stdin it runs every demo once with default inputs instead of looping.
func (d *Demos) RunArchitectures(ctx context.Context) error {
	d.printHeader("AGENT ARCHITECTURES INTERACTIVE DEMO")

	if !d.prompter.IsInteractive() {
		fmt.Fprintln(d.out, cli.RenderWarn("stdin is not a terminal, running all demos with default inputs"))
		return d.runAll(ctx)
	}

	options := []string{menuResearch, menuBlog, menuParallel, menuStory, menuGuide, menuExit}

	for {
		choice, err := d.prompter.AskSelect("Choose a demo to run", options)
		if err != nil {
			// Ctrl-C or closed stdin ends the session cleanly.
			fmt.Fprintln(d.out, cli.RenderMuted("Goodbye."))
			return nil
		}

		var runErr error
		switch choice {
		case menuResearch:
			runErr = d.runResearchDemo(ctx)
		case menuBlog:
			runErr = d.runBlogDemo(ctx)
		case menuParallel:
			runErr = d.runBriefingDemo(ctx)
		case menuStory:
			runErr = d.runStoryDemo(ctx)
		case menuGuide:
			d.ShowGuide()
		case menuExit:
			fmt.Fprintln(d.out, cli.RenderMuted(fmt.Sprintf(
				"Goodbye. Total session cost: $%.6f", d.costs.TotalCost())))
			return nil
		}

		if runErr != nil {
			// Ctrl-C inside a demo prompt also ends the session.
			if errors.Is(runErr, prompt.ErrQuit) {
				fmt.Fprintln(d.out, cli.RenderMuted("Goodbye."))
				return nil
			}
			d.log.Errorw("Demo failed", "choice", choice, "error", runErr)
			fmt.Fprintln(d.out, cli.RenderError(fmt.Sprintf("Demo failed: %v", runErr)))
		}

		d.prompter.WaitEnter("Press Enter to return to the menu")
	}
}

// runAll executes the four demos in order with default inputs.
func (d *Demos) runAll(ctx context.Context) error {
	steps := []func(context.Context) error{
		d.runResearchDemo,
		d.runBlogDemo,
		d.runBriefingDemo,
		d.runStoryDemo,
	}

	multi := &errors.MultiError{}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			multi.Add(err)
		}
	}

	fmt.Fprintln(d.out, cli.RenderMuted(fmt.Sprintf(
		"Total session cost: $%.6f", d.costs.TotalCost())))
	return multi.ToError()
}

// runResearchDemo: the coordinator decides when to call the research and
// summarizer agents, each exposed to it as a tool.
func (d *Demos) runResearchDemo(ctx context.Context) error {
	d.printHeader("DEMO 1: Multi-Agent Research & Summarization System")
	fmt.Fprintln(d.out, "A coordinator agent orchestrates a research agent and a summarizer agent,")
	fmt.Fprintln(d.out, "deciding itself when to call each one.")

	topic, err := d.prompter.AskString("Enter a topic to research (Enter for default)", defaultResearchTopic)
	if err != nil {
		return err
	}

	coordinator, err := d.workflows.NewResearchCoordinator()
	if err != nil {
		return err
	}

	fmt.Fprintln(d.out, cli.RenderOK("Agents created"))
	fmt.Fprintf(d.out, "\nResearching: %s\n", topic)

	result, err := d.runAgent(ctx, coordinator, topic)
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "\nFinal Summary:\n%s\n", result.FinalText)
	d.printStats(result)
	return nil
}

// runBlogDemo: outline, draft and edit in a fixed order.
func (d *Demos) runBlogDemo(ctx context.Context) error {
	d.printHeader("DEMO 2: Sequential Blog Post Creation Pipeline")
	fmt.Fprintln(d.out, "Three agents run in a fixed order, each reading its predecessor's output")
	fmt.Fprintln(d.out, "from session state: outline, then draft, then edit.")

	topic, err := d.prompter.AskString("Enter a blog topic (Enter for default)", defaultBlogTopic)
	if err != nil {
		return err
	}

	pipeline, err := d.workflows.NewBlogPipeline()
	if err != nil {
		return err
	}

	fmt.Fprintln(d.out, cli.RenderOK("Sequential pipeline created"))
	fmt.Fprintf(d.out, "\nCreating blog post about: %s\n", topic)

	result, err := d.runAgent(ctx, pipeline, "Write a blog post about "+topic)
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "\nFinal Blog Post:\n%s\n", result.FinalText)
	d.printStats(result)
	return nil
}

// runBriefingDemo: three researchers fan out concurrently, then an
// aggregator merges their reports.
func (d *Demos) runBriefingDemo(ctx context.Context) error {
	d.printHeader("DEMO 3: Parallel Multi-Topic Research")
	fmt.Fprintln(d.out, "Tech, health and finance researchers run concurrently; an aggregator")
	fmt.Fprintln(d.out, "then merges the three reports into one executive summary.")

	system, err := d.workflows.NewParallelResearch()
	if err != nil {
		return err
	}

	fmt.Fprintln(d.out, cli.RenderOK("Parallel research system created"))
	fmt.Fprintln(d.out, "\nRunning parallel research on Tech, Health, and Finance...")

	result, err := d.runAgent(ctx, system, briefingPrompt)
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "\nExecutive Summary:\n%s\n", result.FinalText)
	d.printStats(result)
	return nil
}

// runStoryDemo: an initial draft is refined through a bounded critique loop.
func (d *Demos) runStoryDemo(ctx context.Context) error {
	d.printHeader("DEMO 4: Loop-Based Story Refinement")
	fmt.Fprintln(d.out, "An initial writer produces a draft, then a critic and a refiner alternate")
	fmt.Fprintln(d.out, "until approval or the iteration cap.")

	storyPrompt, err := d.prompter.AskString("Enter a story prompt (Enter for default)", defaultStoryPrompt)
	if err != nil {
		return err
	}

	pipeline, err := d.workflows.NewStoryRefinement()
	if err != nil {
		return err
	}

	fmt.Fprintln(d.out, cli.RenderOK("Story refinement system created"))
	fmt.Fprintf(d.out, "\nWriting story about: %s\n", storyPrompt)

	result, err := d.runAgent(ctx, pipeline, "Write a short story about "+storyPrompt)
	if err != nil {
		fmt.Fprintln(d.out, cli.RenderWarn("The loop agent encountered an issue; this can happen when refinement does not complete as expected."))
		return err
	}

	refinerName := agents.DefaultAgentConfigs[agents.AgentRefiner].Name
	story := agents.ExtractStoryText(result.Events, refinerName)

	fmt.Fprintf(d.out, "\nFinal Story:\n%s\n", story)
	if story != agents.MsgNoTextContent {
		fmt.Fprintln(d.out, cli.RenderOK("Story refinement completed"))
	} else {
		fmt.Fprintln(d.out, cli.RenderOK("Story refinement completed, the loop exited after approval"))
	}
	d.printStats(result)
	return nil
}
