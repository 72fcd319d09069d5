package ai

import (
	"context"
	"strings"

	"minerva/pkg/errors"
)

// GeminiProvider exposes Google Gemini model metadata.
type GeminiProvider struct {
	models []ModelInfo
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider() *GeminiProvider {
	return &GeminiProvider{models: geminiModels()}
}

// Name returns provider name.
func (p *GeminiProvider) Name() string { return ProviderNameGemini.String() }

// GetModel returns model info by name.
func (p *GeminiProvider) GetModel(_ context.Context, model string) (ModelInfo, error) {
	for _, m := range p.models {
		if strings.EqualFold(m.Name, model) {
			return m, nil
		}
	}
	return ModelInfo{}, errors.Wrapf(errors.ErrNotFound, "gemini model %s not found", model)
}

// ListModels lists available models.
func (p *GeminiProvider) ListModels(_ context.Context) ([]ModelInfo, error) {
	return p.models, nil
}

// SupportsStreaming indicates streaming support.
func (p *GeminiProvider) SupportsStreaming() bool { return true }

// SupportsTools indicates tool calling support.
func (p *GeminiProvider) SupportsTools() bool { return true }

func geminiModels() []ModelInfo {
	return []ModelInfo{
		{
			Name:              "gemini-2.5-flash-lite",
			Family:            "gemini-2.5",
			MaxTokens:         1000000,
			InputCostPer1K:    0.0001,
			OutputCostPer1K:   0.0004,
			SupportsTools:     true,
			SupportsStreaming: true,
		},
		{
			Name:              "gemini-2.5-flash",
			Family:            "gemini-2.5",
			MaxTokens:         1000000,
			InputCostPer1K:    0.0003,
			OutputCostPer1K:   0.0025,
			SupportsTools:     true,
			SupportsStreaming: true,
		},
		{
			Name:              "gemini-2.5-pro",
			Family:            "gemini-2.5",
			MaxTokens:         2000000,
			InputCostPer1K:    0.00125,
			OutputCostPer1K:   0.01,
			SupportsTools:     true,
			SupportsStreaming: true,
		},
	}
}
