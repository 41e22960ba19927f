package render

import (
	"strings"
	"testing"
)

func TestSanitizeKeepsRendererMarkup(t *testing.T) {
	cases := []string{
		`<a class="hashtag" href="/feed/bitcoin">#bitcoin</a>`,
		`<p><img src="https://x.com/a.png" /></p>`,
		`<a href="https://host.example/page" target="_blank" rel="noopener">link</a>`,
		`<button class="button-17" role="button">pay</button>`,
	}
	for _, fragment := range cases {
		got := Sanitize(fragment)
		if !strings.Contains(got, "<") {
			t.Errorf("renderer markup was stripped:\n  in:  %s\n  out: %s", fragment, got)
		}
	}
}

func TestSanitizeStripsScripts(t *testing.T) {
	got := Sanitize(`hello <script>alert(1)</script><a href="javascript:alert(1)">x</a>`)
	if strings.Contains(got, "<script") || strings.Contains(got, "javascript:") {
		t.Errorf("active content survived sanitization: %s", got)
	}
	if !strings.Contains(got, "hello") {
		t.Errorf("plain text was lost: %s", got)
	}
}

func TestSanitizeStripsEventHandlers(t *testing.T) {
	got := Sanitize(`<img src="https://x.com/a.png" onerror="alert(1)" />`)
	if strings.Contains(got, "onerror") {
		t.Errorf("event handler survived sanitization: %s", got)
	}
}
