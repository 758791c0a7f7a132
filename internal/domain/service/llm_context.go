// Package service 提供跨层共享的领域服务辅助
package service

import (
	"context"
	"strings"
)

const unknown = "unknown"

type llmCallKey struct{}

// LLMCall 描述一次模型调用的归属，供指标/追踪打标签
type LLMCall struct {
	Workflow string
	Provider string
	Model    string
}

// WithLLMCall 将调用归属写入 context；空字段沿用已有值
func WithLLMCall(ctx context.Context, call LLMCall) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	prev, _ := ctx.Value(llmCallKey{}).(LLMCall)
	if w := strings.TrimSpace(call.Workflow); w != "" {
		prev.Workflow = w
	}
	if p := strings.TrimSpace(call.Provider); p != "" {
		prev.Provider = p
	}
	if m := strings.TrimSpace(call.Model); m != "" {
		prev.Model = m
	}
	return context.WithValue(ctx, llmCallKey{}, prev)
}

// LLMCallFromContext 读取调用归属，缺失字段以 unknown 填充
func LLMCallFromContext(ctx context.Context) LLMCall {
	var call LLMCall
	if ctx != nil {
		call, _ = ctx.Value(llmCallKey{}).(LLMCall)
	}
	if call.Workflow == "" {
		call.Workflow = unknown
	}
	if call.Provider == "" {
		call.Provider = unknown
	}
	if call.Model == "" {
		call.Model = unknown
	}
	return call
}
