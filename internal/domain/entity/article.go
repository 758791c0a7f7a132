// Package entity 定义领域实体
package entity

import (
	"strings"
	"time"
)

// Tone 文章语气
type Tone string

const (
	ToneFormal  Tone = "formal"
	ToneNeutral Tone = "neutral"
	ToneCasual  Tone = "casual"
)

// DefaultArticleLength 默认目标字数（单词）
const DefaultArticleLength = 500

// MaxArticleLength 未配置上限时允许的最大目标字数
const MaxArticleLength = 5000

// Tones 返回全部受支持的语气
func Tones() []Tone {
	return []Tone{ToneFormal, ToneNeutral, ToneCasual}
}

// ParseTone 解析语气，忽略大小写与首尾空白；无法识别时回落到 neutral
func ParseTone(s string) Tone {
	switch Tone(strings.ToLower(strings.TrimSpace(s))) {
	case ToneFormal:
		return ToneFormal
	case ToneCasual:
		return ToneCasual
	default:
		return ToneNeutral
	}
}

// String 实现 fmt.Stringer
func (t Tone) String() string {
	return string(t)
}

// ArticleRequest 文章生成请求，每次调用新建
type ArticleRequest struct {
	Headline string
	Tone     Tone
	Length   int
}

// GenerationMetadata 生成元数据
type GenerationMetadata struct {
	Provider         string
	Model            string
	PromptTokens     int
	CompletionTokens int
	FinishReason     string
}

// Article 生成结果，构造后不再修改，也不在服务端保存
type Article struct {
	Headline    string
	Body        string
	Tone        Tone
	WordCount   int
	GeneratedAt time.Time
	Metadata    GenerationMetadata
}

// CountWords 统计以空白分隔的单词数
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// NewArticle 由生成文本构造文章：去除首尾空白并统计词数
func NewArticle(headline, body string, tone Tone, generatedAt time.Time) *Article {
	body = strings.TrimSpace(body)
	return &Article{
		Headline:    headline,
		Body:        body,
		Tone:        tone,
		WordCount:   CountWords(body),
		GeneratedAt: generatedAt,
	}
}
