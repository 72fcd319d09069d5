package agents

import (
	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/runner"
	adksession "google.golang.org/adk/session"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
	"google.golang.org/genai"

	"minerva/pkg/errors"
)

// AsTool wraps an agent as a function tool so another LLM agent can delegate
// to it. The wrapped agent runs in its own in-memory session; the caller sees
// only the extracted final text.
func AsTool(ag agent.Agent) (tool.Tool, error) {
	subRunner, err := runner.New(runner.Config{
		AppName:        "minerva_tool_" + ag.Name(),
		Agent:          ag,
		SessionService: adksession.InMemoryService(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create runner for agent tool %s", ag.Name())
	}

	return functiontool.New(
		functiontool.Config{
			Name:        ag.Name(),
			Description: ag.Description(),
		},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			request, _ := args["request"].(string)
			if request == "" {
				// Some models pass the task under other common argument names.
				for _, key := range []string{"input", "query", "topic"} {
					if v, ok := args[key].(string); ok && v != "" {
						request = v
						break
					}
				}
			}
			if request == "" {
				return nil, errors.Wrap(errors.ErrInvalidInput, "request argument is required")
			}

			content := &genai.Content{
				Role: "user",
				Parts: []*genai.Part{
					{Text: request},
				},
			}

			sessionID := uuid.New().String()

			var events []*adksession.Event
			for event, err := range subRunner.Run(ctx, "delegate", sessionID, content, agent.RunConfig{}) {
				if err != nil {
					return nil, errors.Wrapf(err, "agent tool %s failed", ag.Name())
				}
				if event == nil {
					continue
				}
				events = append(events, event)
				if event.TurnComplete && event.IsFinalResponse() {
					break
				}
			}

			if len(events) == 0 {
				return nil, errors.ErrNoResponse
			}

			return map[string]interface{}{
				"result": ExtractText(events),
			}, nil
		})
}
