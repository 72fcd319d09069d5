package agents

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/runner"
	adksession "google.golang.org/adk/session"
	"google.golang.org/genai"

	"minerva/internal/adapters/ai"
	"minerva/pkg/errors"
	"minerva/pkg/logger"
)

// RunOptions configures an AgentRunner.
type RunOptions struct {
	AppName        string
	SessionService adksession.Service
	ModelInfo      *ai.ModelInfo
	Costs          *CostTracker

	Timeout           time.Duration
	RetryAttempts     int
	RetryInitialDelay time.Duration
}

// RunResult carries everything a demo needs to print after a run: the raw
// event history for the extraction heuristics plus usage metrics.
type RunResult struct {
	SessionID string
	Events    []*adksession.Event
	FinalText string

	InputTokens  int
	OutputTokens int
	ToolCalls    int
	CostUSD      float64
	Duration     time.Duration
}

// AgentRunner executes an agent graph through the ADK in-memory runner and
// collects the resulting event history.
type AgentRunner struct {
	agent          agent.Agent
	runner         *runner.Runner
	sessionService adksession.Service
	modelInfo      *ai.ModelInfo
	costs          *CostTracker

	timeout       time.Duration
	retryAttempts int
	retryDelay    time.Duration

	log *logger.Logger
}

// NewAgentRunner creates a runner for the given agent graph.
func NewAgentRunner(ag agent.Agent, opts RunOptions) (*AgentRunner, error) {
	sessionService := opts.SessionService
	if sessionService == nil {
		sessionService = adksession.InMemoryService()
	}

	appName := opts.AppName
	if appName == "" {
		appName = "minerva_" + ag.Name()
	}

	runnerInstance, err := runner.New(runner.Config{
		AppName:        appName,
		Agent:          ag,
		SessionService: sessionService,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ADK runner")
	}

	attempts := opts.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}

	return &AgentRunner{
		agent:          ag,
		runner:         runnerInstance,
		sessionService: sessionService,
		modelInfo:      opts.ModelInfo,
		costs:          opts.Costs,
		timeout:        opts.Timeout,
		retryAttempts:  attempts,
		retryDelay:     opts.RetryInitialDelay,
		log:            logger.Get().With("component", "agent_runner", "agent", ag.Name()),
	}, nil
}

// Run sends the prompt to the agent graph and gathers the event history.
// Transient model failures are retried with doubling delay.
func (r *AgentRunner) Run(ctx context.Context, prompt string) (*RunResult, error) {
	startTime := time.Now()

	execCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var (
		result *RunResult
		err    error
	)

	delay := r.retryDelay
	for attempt := 1; attempt <= r.retryAttempts; attempt++ {
		result, err = r.runOnce(execCtx, prompt)
		if err == nil || !isTransient(err) {
			break
		}

		if attempt < r.retryAttempts {
			r.log.Warnf("Transient run failure (attempt %d/%d), retrying in %v: %v",
				attempt, r.retryAttempts, delay, err)
			select {
			case <-execCtx.Done():
				return nil, execCtx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
	}
	if err != nil {
		return nil, err
	}

	result.Duration = time.Since(startTime)

	if r.costs != nil && r.modelInfo != nil {
		result.CostUSD = r.costs.RecordUsage(r.modelInfo, result.InputTokens, result.OutputTokens)
	}

	r.log.Infof("Run complete: session=%s duration=%v tokens=%d tools=%d",
		result.SessionID, result.Duration, result.InputTokens+result.OutputTokens, result.ToolCalls)

	return result, nil
}

func (r *AgentRunner) runOnce(ctx context.Context, prompt string) (*RunResult, error) {
	sessionID := uuid.New().String()

	userContent := &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	runConfig := agent.RunConfig{
		StreamingMode: agent.StreamingModeSSE,
	}

	result := &RunResult{SessionID: sessionID}

	for event, err := range r.runner.Run(ctx, "console", sessionID, userContent, runConfig) {
		if err != nil {
			return nil, errors.Wrap(err, "agent run failed")
		}

		if event == nil {
			continue
		}

		// Streaming chunks are superseded by the complete event that follows.
		if event.LLMResponse.Partial {
			continue
		}

		r.log.Debugf("Event: author=%s turn_complete=%v", event.Author, event.TurnComplete)

		if event.UsageMetadata != nil {
			result.InputTokens += int(event.UsageMetadata.PromptTokenCount)
			result.OutputTokens += int(event.UsageMetadata.CandidatesTokenCount)
		}

		if event.LLMResponse.Content != nil {
			for _, part := range event.LLMResponse.Content.Parts {
				if part.FunctionCall != nil {
					result.ToolCalls++
					r.log.Debugf("Tool call: %s(%v)", part.FunctionCall.Name, part.FunctionCall.Args)
				}
			}
		}

		result.Events = append(result.Events, event)

		if event.TurnComplete && event.IsFinalResponse() {
			break
		}
	}

	if len(result.Events) == 0 {
		return nil, errors.ErrNoResponse
	}

	result.FinalText = ExtractText(result.Events)
	return result, nil
}

// isTransient reports whether an error looks like a retryable model/API
// failure (rate limits, server hiccups) rather than a programming error.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errors.ErrUnavailable) || errors.Is(err, errors.ErrRateLimitExceeded) {
		return true
	}

	msg := err.Error()
	for _, marker := range []string{"429", "500", "503", "504", "unavailable", "overloaded", "try again"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
