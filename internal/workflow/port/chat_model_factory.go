package port

import (
	"context"

	"github.com/cloudwego/eino/components/model"
)

// ChatModelFactory 定义工作流层对 LLM ChatModel 的最小依赖（port）。
type ChatModelFactory interface {
	Get(ctx context.Context, name string) (model.BaseChatModel, error)
}

// SamplingOptions 是 eino 通用选项未覆盖的采样参数。
// 不认识该类型的 ChatModel 实现会忽略它。
type SamplingOptions struct {
	TopK *int
}

// WithTopK 设置 top-k 采样
func WithTopK(k int) model.Option {
	return model.WrapImplSpecificOptFn(func(o *SamplingOptions) {
		o.TopK = &k
	})
}

// GetSamplingOptions 从调用选项中提取 SamplingOptions
func GetSamplingOptions(opts ...model.Option) *SamplingOptions {
	return model.GetImplSpecificOptions(&SamplingOptions{}, opts...)
}
