// Package article 文章生成应用服务
package article

import (
	"strings"

	"news-article-ai-api/internal/domain/entity"
)

var toneDirectives = map[entity.Tone]string{
	entity.ToneFormal:  "Use a formal, authoritative register suitable for a newspaper of record.",
	entity.ToneNeutral: "Use a neutral, balanced register without editorialising.",
	entity.ToneCasual:  "Use a relaxed, conversational register while staying accurate.",
}

var guidelines = []string{
	"Write in a journalistic style",
	"Include relevant details and context",
	"Maintain objectivity",
	"Use clear and concise language",
	"Follow proper news article structure (lead paragraph, body, conclusion)",
}

// ToneDirective 返回语气对应的写作要求，未知语气使用 neutral
func ToneDirective(tone entity.Tone) string {
	if d, ok := toneDirectives[tone]; ok {
		return d
	}
	return toneDirectives[entity.ToneNeutral]
}

// BuildPrompt 由标题与语气生成模型指令。纯函数，相同输入得到相同输出。
func BuildPrompt(headline string, tone entity.Tone) string {
	var b strings.Builder
	b.WriteString("Generate a news article based on the following headline. ")
	b.WriteString("Make sure the article is factual and well-structured.\n\n")
	b.WriteString("Headline: ")
	b.WriteString(headline)
	b.WriteString("\n\nTone: ")
	b.WriteString(ToneDirective(tone))
	b.WriteString("\n\nPlease follow these guidelines:\n")
	for _, g := range guidelines {
		b.WriteString("- ")
		b.WriteString(g)
		b.WriteString("\n")
	}
	return b.String()
}
