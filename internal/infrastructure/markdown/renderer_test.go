package markdown

import (
	"strings"
	"testing"
)

func TestRenderParagraphsAndHeadings(t *testing.T) {
	out, err := NewRenderer().Render("# City approves new park\n\nThe council voted **7-2**.\nWork starts in May.")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"<h1>City approves new park</h1>", "<strong>7-2</strong>", "<br"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestRenderDropsRawHTML(t *testing.T) {
	out, err := NewRenderer().Render("before\n\n<script>alert(1)</script>\n\nafter")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("raw html leaked: %s", out)
	}
	if !strings.Contains(out, "after") {
		t.Errorf("surrounding text lost: %s", out)
	}
}
