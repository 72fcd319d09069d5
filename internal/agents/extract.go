package agents

import (
	"strings"

	adksession "google.golang.org/adk/session"
)

// Fallback strings returned when no printable text can be recovered from an
// event history. Callers compare against these to report run health.
const (
	MsgNoResponse    = "No response received."
	MsgNoTextContent = "Response received but text content could not be extracted."
)

// minStoryLength filters out verdicts and tool chatter when hunting for the
// final story text in a refinement loop's history.
const minStoryLength = 50

// ExtractText pulls printable text out of an event history, favoring the last
// event's content parts. The event shape varies with streaming mode and tool
// activity, so every access is guarded and the walk falls back through earlier
// events before giving up.
func ExtractText(events []*adksession.Event) string {
	if len(events) == 0 {
		return MsgNoResponse
	}

	if text := eventText(events[len(events)-1]); text != "" {
		return text
	}

	// The last event may be a bare function response or an empty turn marker.
	// Walk backwards to the most recent event that carried text.
	for i := len(events) - 2; i >= 0; i-- {
		if text := eventText(events[i]); text != "" {
			return text
		}
	}

	return MsgNoTextContent
}

// ExtractStoryText finds the final story in a refinement loop's history.
// The loop's last events are typically the critic's "APPROVED" verdict and the
// refiner's exit_loop call, neither of which is the story. Scan backwards for
// the last substantial text block that is not a function call and not a
// verdict, preferring events authored by the refiner.
func ExtractStoryText(events []*adksession.Event, refinerName string) string {
	if len(events) == 0 {
		return MsgNoResponse
	}

	for i := len(events) - 1; i >= 0; i-- {
		event := events[i]

		if !hasFunctionCall(event) {
			text := eventText(event)
			if len(text) > minStoryLength && !strings.Contains(text, ApprovalPhrase) {
				return text
			}
		}

		// The refiner rewrites the story each iteration; its last long text
		// output is the freshest draft even when later events carry verdicts.
		if refinerName != "" && event.Author == refinerName {
			if text := longPartsText(event); text != "" {
				return text
			}
		}
	}

	return ExtractText(events)
}

// eventText joins the text parts of an event's content, or returns "".
func eventText(event *adksession.Event) string {
	if event == nil || event.LLMResponse.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range event.LLMResponse.Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

// longPartsText joins only the substantial text parts of an event.
func longPartsText(event *adksession.Event) string {
	if event == nil || event.LLMResponse.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range event.LLMResponse.Content.Parts {
		if part != nil && len(part.Text) > minStoryLength {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

// hasFunctionCall reports whether any content part is a tool invocation.
func hasFunctionCall(event *adksession.Event) bool {
	if event == nil || event.LLMResponse.Content == nil {
		return false
	}

	for _, part := range event.LLMResponse.Content.Parts {
		if part != nil && part.FunctionCall != nil {
			return true
		}
	}
	return false
}
