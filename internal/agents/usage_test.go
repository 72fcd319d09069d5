package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minerva/internal/adapters/ai"
)

func TestCalculateCost(t *testing.T) {
	model := &ai.ModelInfo{
		Name:            "gemini-2.5-flash-lite",
		InputCostPer1K:  0.0001,
		OutputCostPer1K: 0.0004,
	}

	assert.InDelta(t, 0.0005, CalculateCost(model, 1000, 1000), 1e-9)
	assert.Zero(t, CalculateCost(nil, 1000, 1000))
}

func TestCostTrackerAccumulates(t *testing.T) {
	model := &ai.ModelInfo{
		Name:            "gemini-2.5-flash-lite",
		InputCostPer1K:  0.0001,
		OutputCostPer1K: 0.0004,
	}

	tracker := NewCostTracker()
	first := tracker.RecordUsage(model, 2000, 500)
	second := tracker.RecordUsage(model, 1000, 1000)

	assert.InDelta(t, 0.0004, first, 1e-9)
	assert.InDelta(t, 0.0005, second, 1e-9)

	cost, ok := tracker.GetCost(model.Name)
	require.True(t, ok)
	assert.EqualValues(t, 3000, cost.InputTokens)
	assert.EqualValues(t, 1500, cost.OutputTokens)
	assert.EqualValues(t, 2, cost.CallCount)
	assert.InDelta(t, 0.0009, tracker.TotalCost(), 1e-9)
}
