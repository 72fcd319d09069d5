package tools

import (
	"minerva/internal/adapters/config"
	"minerva/internal/tools/search"
	"minerva/pkg/logger"
)

// RegisterAll wires the built-in tools into a fresh registry. Search uses
// real credentials when configured and a stub otherwise; agent-backed tools
// are registered later by the workflow factories that own the sub-agents.
func RegisterAll(cfg *config.Config) *Registry {
	log := logger.Get().With("component", "tools")
	registry := NewRegistry()

	var client *search.Client
	if cfg.Search.Configured() {
		c, err := search.NewClient(search.Config{
			APIKey:         cfg.Search.APIKey,
			EngineID:       cfg.Search.EngineID,
			MaxResults:     cfg.Search.MaxResults,
			Timeout:        cfg.Search.Timeout,
			RequestsPerMin: cfg.Search.RequestsPerMin,
		})
		if err != nil {
			log.Warnw("Failed to initialize search client, falling back to stub", "error", err)
		} else {
			client = c
		}
	} else {
		log.Debug("Search credentials not set, google_search will return stub results")
	}

	registry.Register(search.ToolName, search.NewTool(client))
	registry.Register("exit_loop", NewExitLoopTool())

	log.Infow("Registered tools", "tools", registry.List())
	return registry
}
