package agents

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	adkmodel "google.golang.org/adk/model"
	adksession "google.golang.org/adk/session"
	"google.golang.org/genai"
)

func textEvent(author string, texts ...string) *adksession.Event {
	parts := make([]*genai.Part, 0, len(texts))
	for _, text := range texts {
		parts = append(parts, &genai.Part{Text: text})
	}
	return &adksession.Event{
		Author: author,
		LLMResponse: adkmodel.LLMResponse{
			Content: &genai.Content{Parts: parts},
		},
	}
}

func functionCallEvent(author, name string) *adksession.Event {
	return &adksession.Event{
		Author: author,
		LLMResponse: adkmodel.LLMResponse{
			Content: &genai.Content{
				Parts: []*genai.Part{
					{FunctionCall: &genai.FunctionCall{Name: name}},
				},
			},
		},
	}
}

func emptyEvent(author string) *adksession.Event {
	return &adksession.Event{Author: author, LLMResponse: adkmodel.LLMResponse{}}
}

func TestExtractTextEmptyHistory(t *testing.T) {
	assert.Equal(t, MsgNoResponse, ExtractText(nil))
}

func TestExtractTextJoinsLastEventParts(t *testing.T) {
	events := []*adksession.Event{
		textEvent("HelpfulAssistant", "ignored earlier turn"),
		textEvent("HelpfulAssistant", "Hello, ", "world."),
	}

	assert.Equal(t, "Hello, world.", ExtractText(events))
}

func TestExtractTextFallsBackToEarlierEvents(t *testing.T) {
	events := []*adksession.Event{
		textEvent("WriterAgent", "The actual answer."),
		emptyEvent("WriterAgent"),
	}

	assert.Equal(t, "The actual answer.", ExtractText(events))
}

func TestExtractTextNoTextAnywhere(t *testing.T) {
	events := []*adksession.Event{
		functionCallEvent("RefinerAgent", "exit_loop"),
		emptyEvent("RefinerAgent"),
	}

	// A bare function-call part carries no printable text.
	assert.Equal(t, MsgNoTextContent, ExtractText(events))
}

func TestExtractStorySkipsVerdictAndExitCall(t *testing.T) {
	story := strings.Repeat("The lighthouse keeper unrolled the glowing map. ", 3)
	events := []*adksession.Event{
		textEvent("InitialWriterAgent", story),
		textEvent("CriticAgent", ApprovalPhrase),
		functionCallEvent("RefinerAgent", "exit_loop"),
	}

	assert.Equal(t, story, ExtractStoryText(events, "RefinerAgent"))
}

func TestExtractStoryPrefersLatestRefinerDraft(t *testing.T) {
	draft1 := strings.Repeat("First draft of the lantern story. ", 3)
	critique := strings.Repeat("Add more tension to the middle of the story. ", 2)
	draft2 := strings.Repeat("Second, much improved draft of the lantern story. ", 3)

	events := []*adksession.Event{
		textEvent("InitialWriterAgent", draft1),
		textEvent("CriticAgent", critique),
		textEvent("RefinerAgent", draft2),
		textEvent("CriticAgent", ApprovalPhrase),
		functionCallEvent("RefinerAgent", "exit_loop"),
	}

	assert.Equal(t, draft2, ExtractStoryText(events, "RefinerAgent"))
}

func TestExtractStoryFallsBackToPlainExtraction(t *testing.T) {
	events := []*adksession.Event{
		textEvent("InitialWriterAgent", "Too short."),
	}

	assert.Equal(t, "Too short.", ExtractStoryText(events, "RefinerAgent"))
}

func TestExtractStoryEmptyHistory(t *testing.T) {
	assert.Equal(t, MsgNoResponse, ExtractStoryText(nil, "RefinerAgent"))
}
