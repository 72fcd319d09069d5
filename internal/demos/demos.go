package demos

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"google.golang.org/adk/agent"

	"minerva/internal/adapters/ai"
	"minerva/internal/adapters/config"
	"minerva/internal/agents"
	"minerva/internal/agents/workflows"
	"minerva/internal/cli"
	"minerva/internal/cli/prompt"
	"minerva/internal/tools"
	"minerva/pkg/errors"
	"minerva/pkg/logger"
)

// Demos wires configuration, agent factories and console IO for the two
// demo surfaces.
type Demos struct {
	cfg       *config.Config
	base      *agents.Factory
	workflows *workflows.Factory
	modelInfo ai.ModelInfo
	costs     *agents.CostTracker
	prompter  *prompt.Prompter
	out       io.Writer
	log       *logger.Logger
}

// New assembles the demo environment from runtime config.
func New(cfg *config.Config, out io.Writer) (*Demos, error) {
	aiRegistry := ai.NewProviderRegistry()
	if err := aiRegistry.Register(ai.NewGeminiProvider()); err != nil {
		return nil, errors.Wrap(err, "failed to register AI provider")
	}

	modelInfo, err := aiRegistry.ResolveModel(context.Background(), cfg.AI.Provider, cfg.AI.Model)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve model %s/%s", cfg.AI.Provider, cfg.AI.Model)
	}

	toolRegistry := tools.RegisterAll(cfg)

	base, err := agents.NewFactory(agents.FactoryDeps{
		AIRegistry:   aiRegistry,
		ToolRegistry: toolRegistry,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create agent factory")
	}

	workflowFactory, err := workflows.NewFactory(workflows.Config{
		Base:              base,
		Provider:          cfg.AI.Provider,
		Model:             cfg.AI.Model,
		LoopMaxIterations: cfg.Agents.LoopMaxIterations,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create workflow factory")
	}

	return &Demos{
		cfg:       cfg,
		base:      base,
		workflows: workflowFactory,
		modelInfo: modelInfo,
		costs:     agents.NewCostTracker(),
		prompter:  prompt.New(),
		out:       out,
		log:       logger.Get().With("component", "demos"),
	}, nil
}

// runAgent executes an agent graph with the configured retry and timeout
// posture and returns the collected result.
func (d *Demos) runAgent(ctx context.Context, ag agent.Agent, promptText string) (*agents.RunResult, error) {
	runner, err := agents.NewAgentRunner(ag, agents.RunOptions{
		ModelInfo:         &d.modelInfo,
		Costs:             d.costs,
		Timeout:           d.cfg.Agents.ExecutionTimeout,
		RetryAttempts:     d.cfg.Agents.RetryAttempts,
		RetryInitialDelay: d.cfg.Agents.RetryInitialDelay,
	})
	if err != nil {
		return nil, err
	}

	return runner.Run(ctx, promptText)
}

func (d *Demos) printHeader(title string) {
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, strings.Repeat("=", 80))
	fmt.Fprintln(d.out, cli.RenderHeader("  "+title))
	fmt.Fprintln(d.out, strings.Repeat("=", 80))
}

func (d *Demos) printSection(title string) {
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, strings.Repeat("=", 60))
	fmt.Fprintln(d.out, cli.Bold.Render("  "+title))
	fmt.Fprintln(d.out, strings.Repeat("=", 60))
}

// printStats prints the usage footer after a run.
func (d *Demos) printStats(result *agents.RunResult) {
	fmt.Fprintln(d.out, cli.RenderMuted(fmt.Sprintf(
		"tokens: %d in / %d out · tool calls: %d · cost: $%.6f · duration: %s",
		result.InputTokens, result.OutputTokens, result.ToolCalls,
		result.CostUSD, result.Duration.Round(10*time.Millisecond))))
}
