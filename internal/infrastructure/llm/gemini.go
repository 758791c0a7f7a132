package llm

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	workflowport "news-article-ai-api/internal/workflow/port"
)

const geminiAPIVersion = "v1beta"

// GeminiConfig 原生 Gemini generateContent 客户端配置
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// GeminiChatModel 基于 google.golang.org/genai 的 eino ChatModel 实现，支持 top-k
type GeminiChatModel struct {
	client *genai.Client
	model  string
}

var _ model.BaseChatModel = (*GeminiChatModel)(nil)

// NewGeminiChatModel 创建 Gemini ChatModel，不发起网络请求
func NewGeminiChatModel(ctx context.Context, cfg *GeminiConfig) (*GeminiChatModel, error) {
	if cfg == nil {
		return nil, fmt.Errorf("gemini config is nil")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("gemini model is required")
	}

	httpOpts := genai.HTTPOptions{APIVersion: geminiAPIVersion}
	if u := strings.TrimSpace(cfg.BaseURL); u != "" {
		httpOpts.BaseURL = u
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Timeout: cfg.Timeout},
		HTTPOptions: httpOpts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiChatModel{client: client, model: strings.TrimSpace(cfg.Model)}, nil
}

// GetType 组件类型标识
func (m *GeminiChatModel) GetType() string {
	return "Gemini"
}

// Generate 单次 generateContent 调用
func (m *GeminiChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	common := model.GetCommonOptions(&model.Options{Model: &m.model}, opts...)
	sampling := workflowport.GetSamplingOptions(opts...)

	contents, system := toGeminiContents(input)
	if len(contents) == 0 {
		return nil, fmt.Errorf("no user content to send")
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:       common.Temperature,
		TopP:              common.TopP,
		SystemInstruction: system,
	}
	if common.MaxTokens != nil {
		n := *common.MaxTokens
		if n <= 0 || n > math.MaxInt32 {
			return nil, fmt.Errorf("max_tokens %d out of range", n)
		}
		cfg.MaxOutputTokens = int32(n)
	}
	if sampling.TopK != nil {
		cfg.TopK = genai.Ptr(float32(*sampling.TopK))
	}

	modelName := m.model
	if common.Model != nil && strings.TrimSpace(*common.Model) != "" {
		modelName = strings.TrimSpace(*common.Model)
	}

	resp, err := m.client.Models.GenerateContent(ctx, modelName, contents, cfg)
	if err != nil {
		return nil, err
	}
	return fromGeminiResponse(resp)
}

// Stream 不做增量输出，整段结果作为单个分片返回
func (m *GeminiChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := m.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

func toGeminiContents(msgs []*schema.Message) ([]*genai.Content, *genai.Content) {
	contents := make([]*genai.Content, 0, len(msgs))
	var systemParts []*genai.Part
	for _, msg := range msgs {
		if msg == nil {
			continue
		}
		part := &genai.Part{Text: msg.Content}
		switch msg.Role {
		case schema.System:
			systemParts = append(systemParts, part)
		case schema.Assistant:
			contents = append(contents, &genai.Content{Role: "model", Parts: []*genai.Part{part}})
		default:
			contents = append(contents, &genai.Content{Role: "user", Parts: []*genai.Part{part}})
		}
	}
	var system *genai.Content
	if len(systemParts) > 0 {
		system = &genai.Content{Parts: systemParts}
	}
	return contents, system
}

func fromGeminiResponse(resp *genai.GenerateContentResponse) (*schema.Message, error) {
	if resp == nil {
		return nil, fmt.Errorf("empty gemini response")
	}
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return nil, fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	meta := &schema.ResponseMeta{
		FinishReason: string(resp.Candidates[0].FinishReason),
	}
	if u := resp.UsageMetadata; u != nil {
		meta.Usage = &schema.TokenUsage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}

	msg := schema.AssistantMessage(resp.Text(), nil)
	msg.ResponseMeta = meta
	return msg, nil
}
