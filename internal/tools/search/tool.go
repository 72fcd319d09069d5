package search

import (
	"fmt"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	"minerva/pkg/logger"
)

// ToolName is the registry key agents reference to request web search.
const ToolName = "google_search"

// NewTool wraps a search client as an agent-callable tool. A nil client
// yields a stub implementation so unconfigured environments still run the
// demos end to end; the model sees an honest "search unavailable" note
// instead of an execution error.
func NewTool(client *Client) tool.Tool {
	log := logger.Get().With("tool", ToolName)

	t, _ := functiontool.New(
		functiontool.Config{
			Name:        ToolName,
			Description: "Searches the web for current information. Provide a 'query' string; returns a numbered list of result titles, snippets and links.",
		},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			query, _ := args["query"].(string)
			if query == "" {
				// Some models send the query under a generic key.
				query, _ = args["q"].(string)
			}
			if query == "" {
				return map[string]interface{}{
					"status": "error",
					"result": "Missing 'query' argument.",
				}, nil
			}

			if client == nil {
				log.Debugw("Search not configured, returning stub", "query", query)
				return map[string]interface{}{
					"status": "unavailable",
					"result": fmt.Sprintf(
						"Web search is not configured. Answer %q from general knowledge and say the information may be outdated.",
						query),
				}, nil
			}

			results, err := client.Search(ctx, query)
			if err != nil {
				log.Warnw("Search failed", "query", query, "error", err)
				return map[string]interface{}{
					"status": "error",
					"result": fmt.Sprintf("Search failed: %v. Answer from general knowledge instead.", err),
				}, nil
			}

			return map[string]interface{}{
				"status": "success",
				"result": FormatResults(query, results),
			}, nil
		})
	return t
}
