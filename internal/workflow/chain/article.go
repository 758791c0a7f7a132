package chain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	llmctx "news-article-ai-api/internal/domain/service"
	wfmodel "news-article-ai-api/internal/workflow/model"
	workflowport "news-article-ai-api/internal/workflow/port"
	"news-article-ai-api/pkg/errors"
	"news-article-ai-api/pkg/tracer"
)

const workflowArticleGenerate = "article_generate"

// ArticleChain 单次同步调用模型生成文章正文，不重试
type ArticleChain struct {
	factory  workflowport.ChatModelFactory
	recorder llmctx.LLMUsageRecorder
}

// NewArticleChain recorder 为空时不记录用量
func NewArticleChain(factory workflowport.ChatModelFactory, recorder llmctx.LLMUsageRecorder) *ArticleChain {
	if recorder == nil {
		recorder = llmctx.NopUsageRecorder{}
	}
	return &ArticleChain{factory: factory, recorder: recorder}
}

// Invoke 失败时统一返回 ProviderError（错误码 CodeLLMProviderError），原始错误可通过 Unwrap 取得
func (c *ArticleChain) Invoke(ctx context.Context, in *wfmodel.ArticleGenerateInput) (*wfmodel.ArticleGenerateOutput, error) {
	if c == nil || c.factory == nil {
		return nil, errors.ErrInternalError.WithError(fmt.Errorf("llm factory not configured"))
	}
	if in == nil {
		return nil, errors.ErrGenerationFailed.WithError(fmt.Errorf("input is nil"))
	}
	if strings.TrimSpace(in.Prompt) == "" {
		return nil, errors.ErrGenerationFailed.WithError(fmt.Errorf("prompt is required"))
	}
	if in.Sampling.MaxTokens <= 0 {
		return nil, errors.ErrGenerationFailed.WithError(fmt.Errorf("max_tokens must be positive"))
	}

	provider := strings.TrimSpace(in.Provider)
	modelName := strings.TrimSpace(in.Model)
	ctx = llmctx.WithLLMCall(ctx, llmctx.LLMCall{
		Workflow: workflowArticleGenerate,
		Provider: provider,
		Model:    modelName,
	})
	call := llmctx.LLMCallFromContext(ctx)

	ctx, span := tracer.Start(ctx, "llm.generate", trace.WithAttributes(
		attribute.String("llm.workflow", call.Workflow),
		attribute.String("llm.provider", call.Provider),
		attribute.String("llm.model", call.Model),
		attribute.Int("llm.max_tokens", in.Sampling.MaxTokens),
	))
	defer span.End()

	start := time.Now()
	out, err := c.generate(ctx, provider, in)
	elapsed := time.Since(start)

	if err != nil {
		c.recorder.Record(ctx, llmctx.LLMUsage{LLMCall: call, Duration: elapsed, Err: err})
		tracer.RecordError(span, err)
		return nil, errors.ErrProvider.WithError(err)
	}

	meta := usageFromMessage(out)
	meta.Provider = call.Provider
	meta.Model = call.Model
	meta.Duration = elapsed
	c.recorder.Record(ctx, llmctx.LLMUsage{
		LLMCall:          call,
		PromptTokens:     meta.PromptTokens,
		CompletionTokens: meta.CompletionTokens,
		Duration:         elapsed,
	})

	span.SetAttributes(
		attribute.Int("llm.prompt_tokens", meta.PromptTokens),
		attribute.Int("llm.completion_tokens", meta.CompletionTokens),
		attribute.String("llm.finish_reason", meta.FinishReason),
	)

	return &wfmodel.ArticleGenerateOutput{Content: out.Content, Meta: meta}, nil
}

func (c *ArticleChain) generate(ctx context.Context, provider string, in *wfmodel.ArticleGenerateInput) (*schema.Message, error) {
	chatModel, err := c.factory.Get(ctx, provider)
	if err != nil {
		return nil, err
	}

	msgs := []*schema.Message{schema.UserMessage(in.Prompt)}
	outMsg, err := chatModel.Generate(ctx, msgs, buildArticleModelOptions(in)...)
	if err != nil {
		return nil, err
	}
	if outMsg == nil {
		return nil, fmt.Errorf("empty llm response")
	}
	if strings.TrimSpace(outMsg.Content) == "" {
		return nil, fmt.Errorf("llm response contains no text")
	}
	return outMsg, nil
}

func buildArticleModelOptions(in *wfmodel.ArticleGenerateInput) []model.Option {
	s := in.Sampling
	opts := []model.Option{
		model.WithTemperature(s.Temperature),
		model.WithTopP(s.TopP),
		model.WithMaxTokens(s.MaxTokens),
	}
	if s.TopK > 0 {
		opts = append(opts, workflowport.WithTopK(s.TopK))
	}
	if m := strings.TrimSpace(in.Model); m != "" {
		opts = append(opts, model.WithModel(m))
	}
	return opts
}

func usageFromMessage(msg *schema.Message) wfmodel.LLMUsageMeta {
	var meta wfmodel.LLMUsageMeta
	if msg == nil || msg.ResponseMeta == nil {
		return meta
	}
	meta.FinishReason = msg.ResponseMeta.FinishReason
	if u := msg.ResponseMeta.Usage; u != nil {
		meta.PromptTokens = u.PromptTokens
		meta.CompletionTokens = u.CompletionTokens
	}
	return meta
}
