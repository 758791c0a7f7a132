package service

import (
	"context"
	"time"
)

// LLMUsage 一次模型调用的可观测数据
type LLMUsage struct {
	LLMCall

	PromptTokens     int
	CompletionTokens int
	Duration         time.Duration

	// Err 非空表示调用失败
	Err error
}

// LLMUsageRecorder 记录模型调用用量。
// 实现应 best-effort，不能阻塞或影响生成结果。
type LLMUsageRecorder interface {
	Record(ctx context.Context, u LLMUsage)
}

// NopUsageRecorder 丢弃所有记录
type NopUsageRecorder struct{}

func (NopUsageRecorder) Record(context.Context, LLMUsage) {}
