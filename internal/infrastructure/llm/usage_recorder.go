package llm

import (
	"context"

	llmctx "news-article-ai-api/internal/domain/service"
	"news-article-ai-api/pkg/logger"
	"news-article-ai-api/pkg/metrics"
)

// MetricsUsageRecorder 将模型调用写入 Prometheus 指标与 debug 日志
type MetricsUsageRecorder struct{}

// NewMetricsUsageRecorder 创建用量记录器
func NewMetricsUsageRecorder() *MetricsUsageRecorder {
	return &MetricsUsageRecorder{}
}

// Record 实现 service.LLMUsageRecorder
func (r *MetricsUsageRecorder) Record(ctx context.Context, u llmctx.LLMUsage) {
	metrics.LLMCallDuration.WithLabelValues(u.Provider, u.Model).Observe(u.Duration.Seconds())

	if u.Err != nil {
		metrics.LLMCallTotal.WithLabelValues(u.Provider, u.Model, "error").Inc()
		return
	}
	metrics.LLMCallTotal.WithLabelValues(u.Provider, u.Model, "success").Inc()
	metrics.LLMTokensUsed.WithLabelValues(u.Provider, u.Model, "prompt").Add(float64(u.PromptTokens))
	metrics.LLMTokensUsed.WithLabelValues(u.Provider, u.Model, "completion").Add(float64(u.CompletionTokens))

	logger.Debug(ctx, "llm usage",
		"workflow", u.Workflow,
		"provider", u.Provider,
		"model", u.Model,
		"prompt_tokens", u.PromptTokens,
		"completion_tokens", u.CompletionTokens,
		"duration_ms", u.Duration.Milliseconds(),
	)
}
