package llm

import (
	"context"
	"testing"
	"time"

	"news-article-ai-api/internal/config"
)

func factoryConfig(provider string) *config.Config {
	return &config.Config{
		LLM: config.LLMConfig{
			Provider: provider,
			APIKey:   "test-key",
			Model:    "gemini-pro",
			Timeout:  5 * time.Second,
		},
	}
}

func TestEinoFactoryCachesModels(t *testing.T) {
	f := NewEinoFactory(factoryConfig(config.ProviderGemini))
	ctx := context.Background()

	first, err := f.Get(ctx, "")
	if err != nil {
		t.Fatalf("Get default provider: %v", err)
	}
	if _, ok := first.(*GeminiChatModel); !ok {
		t.Fatalf("default provider should build a GeminiChatModel, got %T", first)
	}

	second, err := f.Get(ctx, " Gemini ")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if first != second {
		t.Error("expected cached instance for the same provider")
	}
}

func TestEinoFactoryOpenAICompatible(t *testing.T) {
	f := NewEinoFactory(factoryConfig(config.ProviderOpenAI))

	m, err := f.Get(context.Background(), "")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if m == nil {
		t.Fatal("expected chat model")
	}
	if _, ok := m.(*GeminiChatModel); ok {
		t.Error("openai provider must not build the native gemini model")
	}
}

func TestEinoFactoryUnknownProvider(t *testing.T) {
	f := NewEinoFactory(factoryConfig(config.ProviderGemini))
	if _, err := f.Get(context.Background(), "anthropic"); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}

func TestEinoFactoryMissingKey(t *testing.T) {
	cfg := factoryConfig(config.ProviderGemini)
	cfg.LLM.APIKey = ""
	f := NewEinoFactory(cfg)
	if _, err := f.Get(context.Background(), ""); err == nil {
		t.Fatal("expected error without api key")
	}
}
