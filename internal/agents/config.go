package agents

// ApprovalPhrase is the exact verdict the critic emits when a story draft
// needs no further refinement. The refiner keys off it to end the loop.
const ApprovalPhrase = "APPROVED"

// Session-state keys chaining agent outputs inside a workflow.
const (
	KeyResearchFindings = "research_findings"
	KeyFinalSummary     = "final_summary"
	KeyBlogOutline      = "blog_outline"
	KeyBlogDraft        = "blog_draft"
	KeyFinalBlog        = "final_blog"
	KeyTechResearch     = "tech_research"
	KeyHealthResearch   = "health_research"
	KeyFinanceResearch  = "finance_research"
	KeyExecutiveSummary = "executive_summary"
	KeyCurrentStory     = "current_story"
	KeyCritique         = "critique"
)

// DefaultAgentConfigs holds the prompt and wiring for every demo agent.
// Provider and model are filled in at creation time from runtime config.
var DefaultAgentConfigs = map[AgentType]AgentConfig{
	AgentAssistant: {
		Type:        AgentAssistant,
		Name:        "HelpfulAssistant",
		Description: "A simple agent that can answer general questions.",
		Instruction: "You are a helpful assistant. Use the google_search tool for current information or if unsure.",
		Tools:       []string{"google_search"},
	},

	AgentResearcher: {
		Type:        AgentResearcher,
		Name:        "ResearchAgent",
		Description: "Finds relevant information on a topic using web search.",
		Instruction: `You are a specialized research agent. Your only job is to use the
google_search tool to find 2-3 pieces of relevant information on the given topic and present the findings with citations.`,
		Tools:     []string{"google_search"},
		OutputKey: KeyResearchFindings,
	},
	AgentSummarizer: {
		Type:        AgentSummarizer,
		Name:        "SummarizerAgent",
		Description: "Condenses research findings into a short bulleted summary.",
		Instruction: `Read the provided research findings: {research_findings}
Create a concise summary as a bulleted list with 3-5 key points.`,
		OutputKey: KeyFinalSummary,
	},
	AgentCoordinator: {
		Type:        AgentCoordinator,
		Name:        "ResearchCoordinator",
		Description: "Orchestrates research and summarization to answer the user's query.",
		Instruction: `You are a research coordinator. Your goal is to answer the user's query by orchestrating a workflow.
1. First, you MUST call the ` + "`ResearchAgent`" + ` tool to find relevant information on the topic provided by the user.
2. Next, after receiving the research findings, you MUST call the ` + "`SummarizerAgent`" + ` tool to create a concise summary.
3. Finally, present the final summary clearly to the user as your response.`,
		Tools: []string{"ResearchAgent", "SummarizerAgent"},
	},

	AgentOutliner: {
		Type:        AgentOutliner,
		Name:        "OutlineAgent",
		Description: "Creates a structured blog outline for a topic.",
		Instruction: `Create a blog outline for the given topic with:
1. A catchy headline
2. An introduction hook
3. 3-5 main sections with 2-3 bullet points for each
4. A concluding thought`,
		OutputKey: KeyBlogOutline,
	},
	AgentWriter: {
		Type:        AgentWriter,
		Name:        "WriterAgent",
		Description: "Writes a short blog post from an outline.",
		Instruction: `Following this outline strictly: {blog_outline}
Write a brief, 200 to 300-word blog post with an engaging and informative tone.`,
		OutputKey: KeyBlogDraft,
	},
	AgentEditor: {
		Type:        AgentEditor,
		Name:        "EditorAgent",
		Description: "Polishes a blog draft for grammar, flow and clarity.",
		Instruction: `Edit this draft: {blog_draft}
Your task is to polish the text by fixing any grammatical errors, improving the flow and sentence structure, and enhancing overall clarity.`,
		OutputKey: KeyFinalBlog,
	},

	AgentTechResearcher: {
		Type:        AgentTechResearcher,
		Name:        "TechResearcher",
		Description: "Researches current AI/ML trends.",
		Instruction: `Research the latest AI/ML trends. Include 3 key developments,
the main companies involved, and the potential impact. Keep the report very concise (100 words).`,
		Tools:     []string{"google_search"},
		OutputKey: KeyTechResearch,
	},
	AgentHealthResearcher: {
		Type:        AgentHealthResearcher,
		Name:        "HealthResearcher",
		Description: "Researches recent medical breakthroughs.",
		Instruction: `Research recent medical breakthroughs. Include 3 significant advances,
their practical applications, and estimated timelines. Keep the report concise (100 words).`,
		Tools:     []string{"google_search"},
		OutputKey: KeyHealthResearch,
	},
	AgentFinanceResearcher: {
		Type:        AgentFinanceResearcher,
		Name:        "FinanceResearcher",
		Description: "Researches current fintech trends.",
		Instruction: `Research current fintech trends. Include 3 key trends,
their market implications, and the future outlook. Keep the report concise (100 words).`,
		Tools:     []string{"google_search"},
		OutputKey: KeyFinanceResearch,
	},
	AgentAggregator: {
		Type:        AgentAggregator,
		Name:        "AggregatorAgent",
		Description: "Merges the three research reports into one executive summary.",
		Instruction: `Combine these three research findings into a single executive summary:

**Technology Trends:**
{tech_research}

**Health Breakthroughs:**
{health_research}

**Finance Innovations:**
{finance_research}

Your summary should highlight common themes, surprising connections, and the most important key takeaways from all three reports. The final summary should be around 200 words.`,
		OutputKey: KeyExecutiveSummary,
	},

	AgentInitialWriter: {
		Type:        AgentInitialWriter,
		Name:        "InitialWriterAgent",
		Description: "Writes the first draft of a short story.",
		Instruction: `Based on the user's prompt, write the first draft of a short story (around 100-150 words).
Output only the story text, with no introduction or explanation.`,
		OutputKey: KeyCurrentStory,
	},
	AgentCritic: {
		Type:        AgentCritic,
		Name:        "CriticAgent",
		Description: "Reviews a story draft and either approves it or suggests improvements.",
		Instruction: `You are a constructive story critic. Review the story provided below.
Story: {current_story}

Evaluate the story's plot, characters, and pacing.
- If the story is well-written and complete, you MUST respond with the exact phrase: "` + ApprovalPhrase + `"
- Otherwise, provide 2-3 specific, actionable suggestions for improvement.`,
		OutputKey: KeyCritique,
	},
	AgentRefiner: {
		Type:        AgentRefiner,
		Name:        "RefinerAgent",
		Description: "Incorporates critique into the story or ends the loop on approval.",
		Instruction: `You are a story refiner. You have a story draft and critique.

Story Draft: {current_story}
Critique: {critique}

Your task is to analyze the critique.
- IF the critique is EXACTLY "` + ApprovalPhrase + `", you MUST call the ` + "`exit_loop`" + ` function and nothing else.
- OTHERWISE, rewrite the story draft to fully incorporate the feedback from the critique.`,
		Tools:     []string{"exit_loop"},
		OutputKey: KeyCurrentStory,
	},
}
