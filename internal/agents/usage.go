package agents

import (
	"sync"

	"minerva/internal/adapters/ai"
)

// CostTracker tracks AI model token usage and costs across demo runs.
type CostTracker struct {
	mu    sync.RWMutex
	costs map[string]*ModelCost // model ID -> cost data
}

// ModelCost tracks accumulated usage for a specific model.
type ModelCost struct {
	ModelID      string
	InputTokens  int64
	OutputTokens int64
	TotalCostUSD float64
	CallCount    int64
}

// NewCostTracker creates a new cost tracker.
func NewCostTracker() *CostTracker {
	return &CostTracker{
		costs: make(map[string]*ModelCost),
	}
}

// RecordUsage records token usage for a model and returns the cost of this call.
func (ct *CostTracker) RecordUsage(modelInfo *ai.ModelInfo, inputTokens, outputTokens int) float64 {
	cost := CalculateCost(modelInfo, inputTokens, outputTokens)

	ct.mu.Lock()
	defer ct.mu.Unlock()

	if _, exists := ct.costs[modelInfo.Name]; !exists {
		ct.costs[modelInfo.Name] = &ModelCost{
			ModelID: modelInfo.Name,
		}
	}

	mc := ct.costs[modelInfo.Name]
	mc.InputTokens += int64(inputTokens)
	mc.OutputTokens += int64(outputTokens)
	mc.TotalCostUSD += cost
	mc.CallCount++

	return cost
}

// GetCost returns cost data for a specific model.
func (ct *CostTracker) GetCost(modelID string) (*ModelCost, bool) {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	cost, ok := ct.costs[modelID]
	return cost, ok
}

// TotalCost returns the total cost across all models.
func (ct *CostTracker) TotalCost() float64 {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	total := 0.0
	for _, mc := range ct.costs {
		total += mc.TotalCostUSD
	}

	return total
}

// CalculateCost computes the USD cost of a single call.
func CalculateCost(modelInfo *ai.ModelInfo, inputTokens, outputTokens int) float64 {
	if modelInfo == nil {
		return 0
	}

	return modelInfo.InputCostPer1K*float64(inputTokens)/1000 +
		modelInfo.OutputCostPer1K*float64(outputTokens)/1000
}
