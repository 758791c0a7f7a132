package model

import "time"

// Sampling 一次生成调用的采样参数
type Sampling struct {
	Temperature float32
	TopP        float32
	TopK        int
	MaxTokens   int
}

// ArticleGenerateInput 文章生成工作流输入
type ArticleGenerateInput struct {
	Prompt string

	Provider string
	Model    string

	Sampling Sampling
}

// LLMUsageMeta 模型调用元数据
type LLMUsageMeta struct {
	Provider         string
	Model            string
	PromptTokens     int
	CompletionTokens int
	FinishReason     string
	Duration         time.Duration
}

// ArticleGenerateOutput 文章生成工作流输出（原始文本，未裁剪）
type ArticleGenerateOutput struct {
	Content string
	Meta    LLMUsageMeta
}
