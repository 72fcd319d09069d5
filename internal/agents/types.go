package agents

// AgentType enumerates the agents used across the demos.
type AgentType string

const (
	// Assistant demo
	AgentAssistant AgentType = "assistant"

	// Coordinator demo (LLM-delegated tool calling)
	AgentResearcher  AgentType = "researcher"
	AgentSummarizer  AgentType = "summarizer"
	AgentCoordinator AgentType = "coordinator"

	// Blog pipeline demo (sequential)
	AgentOutliner AgentType = "outliner"
	AgentWriter   AgentType = "writer"
	AgentEditor   AgentType = "editor"

	// Briefing demo (parallel fan-out, sequential fan-in)
	AgentTechResearcher    AgentType = "tech_researcher"
	AgentHealthResearcher  AgentType = "health_researcher"
	AgentFinanceResearcher AgentType = "finance_researcher"
	AgentAggregator        AgentType = "aggregator"

	// Story refinement demo (loop)
	AgentInitialWriter AgentType = "initial_writer"
	AgentCritic        AgentType = "critic"
	AgentRefiner       AgentType = "refiner"
)

// AgentConfig captures the settings needed to instantiate an LLM agent.
type AgentConfig struct {
	Type        AgentType
	Name        string
	Description string
	Instruction string
	OutputKey   string
	Tools       []string

	AIProvider string
	Model      string
}
