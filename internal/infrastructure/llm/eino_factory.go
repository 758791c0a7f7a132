package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"news-article-ai-api/internal/config"
)

// Gemini 的 OpenAI 兼容端点，provider=openai 且未配置 base_url 时使用
const geminiOpenAICompatibleURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// EinoFactory 按 provider 名称管理 Eino ChatModel 实例
type EinoFactory struct {
	config *config.LLMConfig
	models map[string]model.BaseChatModel
	mu     sync.RWMutex
}

// NewEinoFactory 创建 Eino LLM 工厂
func NewEinoFactory(cfg *config.Config) *EinoFactory {
	return &EinoFactory{
		config: &cfg.LLM,
		models: make(map[string]model.BaseChatModel),
	}
}

// Get 获取指定 provider 的 ChatModel，name 为空时使用配置的 provider
func (f *EinoFactory) Get(ctx context.Context, name string) (model.BaseChatModel, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = strings.ToLower(strings.TrimSpace(f.config.Provider))
	}

	f.mu.RLock()
	m, ok := f.models[name]
	f.mu.RUnlock()
	if ok {
		return m, nil
	}

	// 惰性加载
	f.mu.Lock()
	defer f.mu.Unlock()

	// 再次检查防止竞态
	if m, ok = f.models[name]; ok {
		return m, nil
	}

	chatModel, err := f.build(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create eino chat model for %s: %w", name, err)
	}

	f.models[name] = chatModel
	return chatModel, nil
}

func (f *EinoFactory) build(ctx context.Context, name string) (model.BaseChatModel, error) {
	c := f.config
	switch name {
	case config.ProviderGemini:
		return NewGeminiChatModel(ctx, &GeminiConfig{
			APIKey:  c.APIKey,
			BaseURL: c.BaseURL,
			Model:   c.Model,
			Timeout: c.Timeout,
		})
	case config.ProviderOpenAI:
		baseURL := strings.TrimSpace(c.BaseURL)
		if baseURL == "" {
			baseURL = geminiOpenAICompatibleURL
		}
		// 使用 Eino 的 OpenAI 适配器
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:  c.APIKey,
			BaseURL: baseURL,
			Model:   c.Model,
			Timeout: c.Timeout,
		})
	default:
		return nil, fmt.Errorf("provider %q is not supported", name)
	}
}
