package ai

import (
	"context"
	"fmt"
	"testing"
)

func TestRegistryResolveModel(t *testing.T) {
	registry := NewProviderRegistry()
	mock := &mockProvider{models: []ModelInfo{{Name: "alpha", SupportsTools: true}}}
	if err := registry.Register(mock); err != nil {
		t.Fatalf("failed to register provider: %v", err)
	}

	info, err := registry.ResolveModel(context.Background(), "mock", "alpha")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Name != "alpha" {
		t.Fatalf("expected model alpha, got %s", info.Name)
	}

	if _, err := registry.ResolveModel(context.Background(), "mock", "missing"); err == nil {
		t.Fatal("expected error for unknown model")
	}
	if _, err := registry.ResolveModel(context.Background(), "unknown", "alpha"); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestRegistryRejectsDuplicateProvider(t *testing.T) {
	registry := NewProviderRegistry()
	if err := registry.Register(&mockProvider{}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if err := registry.Register(&mockProvider{}); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestGeminiProviderLooksUpModelsCaseInsensitively(t *testing.T) {
	provider := NewGeminiProvider()

	info, err := provider.GetModel(context.Background(), "GEMINI-2.5-FLASH-LITE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Family != "gemini-2.5" {
		t.Fatalf("unexpected family: %s", info.Family)
	}

	models, err := provider.ListModels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(models) == 0 {
		t.Fatal("expected at least one model")
	}
}

type mockProvider struct {
	models []ModelInfo
}

func (m *mockProvider) Name() string { return "mock" }
func (m *mockProvider) GetModel(_ context.Context, model string) (ModelInfo, error) {
	for _, item := range m.models {
		if item.Name == model {
			return item, nil
		}
	}
	return ModelInfo{}, fmt.Errorf("not found")
}
func (m *mockProvider) ListModels(_ context.Context) ([]ModelInfo, error) { return m.models, nil }
func (m *mockProvider) SupportsStreaming() bool                           { return true }
func (m *mockProvider) SupportsTools() bool                               { return true }
