package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	llmctx "news-article-ai-api/internal/domain/service"
	"news-article-ai-api/pkg/metrics"
)

func TestMetricsUsageRecorder(t *testing.T) {
	r := NewMetricsUsageRecorder()
	call := llmctx.LLMCall{Workflow: "article_generate", Provider: "gemini", Model: "recorder-test"}

	r.Record(context.Background(), llmctx.LLMUsage{
		LLMCall:          call,
		PromptTokens:     10,
		CompletionTokens: 250,
		Duration:         time.Second,
	})
	r.Record(context.Background(), llmctx.LLMUsage{
		LLMCall:  call,
		Duration: 10 * time.Millisecond,
		Err:      errors.New("quota exceeded"),
	})

	if got := testutil.ToFloat64(metrics.LLMCallTotal.WithLabelValues("gemini", "recorder-test", "success")); got != 1 {
		t.Errorf("success calls = %v", got)
	}
	if got := testutil.ToFloat64(metrics.LLMCallTotal.WithLabelValues("gemini", "recorder-test", "error")); got != 1 {
		t.Errorf("error calls = %v", got)
	}
	if got := testutil.ToFloat64(metrics.LLMTokensUsed.WithLabelValues("gemini", "recorder-test", "completion")); got != 250 {
		t.Errorf("completion tokens = %v", got)
	}
	if got := testutil.ToFloat64(metrics.LLMTokensUsed.WithLabelValues("gemini", "recorder-test", "prompt")); got != 10 {
		t.Errorf("prompt tokens = %v", got)
	}
}
