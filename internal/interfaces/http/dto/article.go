package dto

import (
	"time"

	"news-article-ai-api/internal/domain/entity"
)

// GenerateArticleRequest POST /generate-article 请求体
type GenerateArticleRequest struct {
	Headline string `json:"headline"`
	Tone     string `json:"tone,omitempty"`
	// Length 为空时使用默认长度；显式给出 0 或负数会被拒绝
	Length *int `json:"length,omitempty"`
}

// ToEntity 转换为领域请求
func (r *GenerateArticleRequest) ToEntity(defaultLength int) entity.ArticleRequest {
	length := defaultLength
	if r.Length != nil {
		length = *r.Length
	}
	return entity.ArticleRequest{
		Headline: r.Headline,
		Tone:     entity.Tone(r.Tone),
		Length:   length,
	}
}

// GenerateArticleResponse POST /generate-article 成功响应
type GenerateArticleResponse struct {
	Headline    string `json:"headline"`
	Article     string `json:"article"`
	GeneratedAt string `json:"generated_at"`
	WordCount   int    `json:"word_count"`
}

// ToGenerateArticleResponse 由领域文章构造响应
func ToGenerateArticleResponse(a *entity.Article) *GenerateArticleResponse {
	if a == nil {
		return nil
	}
	return &GenerateArticleResponse{
		Headline:    a.Headline,
		Article:     a.Body,
		GeneratedAt: a.GeneratedAt.Format(time.RFC3339Nano),
		WordCount:   a.WordCount,
	}
}

// RenderArticleRequest POST /render-article 请求体
type RenderArticleRequest struct {
	Article string `json:"article"`
}

// RenderArticleResponse POST /render-article 响应
type RenderArticleResponse struct {
	HTML string `json:"html"`
}

// HealthResponse GET /health 响应
type HealthResponse struct {
	Status        string `json:"status"`
	Model         string `json:"model"`
	APIConfigured bool   `json:"api_configured"`
}

// ReadinessCheck 单项依赖检查结果
type ReadinessCheck struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
}

// ReadinessResponse GET /ready 响应
type ReadinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]*ReadinessCheck `json:"checks,omitempty"`
}
