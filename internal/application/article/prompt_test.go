package article

import (
	"strings"
	"testing"

	"news-article-ai-api/internal/domain/entity"
)

func TestBuildPromptToneDirectives(t *testing.T) {
	headline := "City approves new park"
	for _, tone := range entity.Tones() {
		p := BuildPrompt(headline, tone)
		if !strings.Contains(p, "Headline: "+headline) {
			t.Errorf("%s: headline missing from prompt", tone)
		}
		if !strings.Contains(p, toneDirectives[tone]) {
			t.Errorf("%s: directive missing from prompt", tone)
		}
		for other, d := range toneDirectives {
			if other != tone && strings.Contains(p, d) {
				t.Errorf("%s: prompt also carries %s directive", tone, other)
			}
		}
		if !strings.Contains(p, "lead paragraph, body, conclusion") {
			t.Errorf("%s: structure guideline missing", tone)
		}
	}
}

func TestBuildPromptUnknownToneFallsBackToNeutral(t *testing.T) {
	p := BuildPrompt("Storm hits coast", entity.Tone("sarcastic"))
	if !strings.Contains(p, toneDirectives[entity.ToneNeutral]) {
		t.Errorf("expected neutral directive, got:\n%s", p)
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	a := BuildPrompt("Markets rally", entity.ToneCasual)
	b := BuildPrompt("Markets rally", entity.ToneCasual)
	if a != b {
		t.Error("same inputs produced different prompts")
	}
}
