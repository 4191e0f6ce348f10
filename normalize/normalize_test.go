package normalize

import (
	"strings"
	"testing"
)

func TestNormalize_Inline(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "plain paragraph",
			html:     "<p>Hello world.</p>",
			expected: "Hello world.",
		},
		{
			name:     "bold",
			html:     "<p>Hello <strong>world</strong>.</p>",
			expected: "Hello **world**.",
		},
		{
			name:     "b tag",
			html:     "<p>Hello <b>world</b>.</p>",
			expected: "Hello **world**.",
		},
		{
			name:     "italic",
			html:     "<p>Hello <em>world</em>.</p>",
			expected: "Hello *world*.",
		},
		{
			name:     "i tag",
			html:     "<p>Hello <i>world</i>.</p>",
			expected: "Hello *world*.",
		},
		{
			name:     "link",
			html:     `<p>See <a href="https://x.com">this</a> now.</p>`,
			expected: "See [this](https://x.com) now.",
		},
		{
			name:     "link without href degrades to text",
			html:     "<p>See <a>this</a> now.</p>",
			expected: "See this now.",
		},
		{
			name:     "link with empty text degrades to nothing",
			html:     `<p>before<a href="https://x.com"></a>after</p>`,
			expected: "beforeafter",
		},
		{
			name:     "bold nested in link",
			html:     `<p><a href="https://x.com"><b>bold</b> rest</a></p>`,
			expected: "[**bold** rest](https://x.com)",
		},
		{
			name:     "marker keeps surrounding spaces outside",
			html:     "<p>a<b> x </b>b</p>",
			expected: "a **x** b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.html); got != tt.expected {
				t.Errorf("Normalize() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNormalize_Blocks(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "heading levels",
			html:     "<h1>One</h1><h2>Two</h2><h3>Three</h3><h6>Six</h6>",
			expected: "# One\n\n## Two\n\n### Three\n\n###### Six",
		},
		{
			name:     "heading surrounded by paragraphs",
			html:     "<p>before</p><h2>Title</h2><p>after</p>",
			expected: "before\n\n## Title\n\nafter",
		},
		{
			name:     "paragraphs separated by blank line",
			html:     "<p>one</p><p>two</p>",
			expected: "one\n\ntwo",
		},
		{
			name:     "line break",
			html:     "<p>one<br>two</p>",
			expected: "one\ntwo",
		},
		{
			name:     "nested containers collapse to two newlines",
			html:     "<div><p>one</p><p>two</p></div><p>three</p>",
			expected: "one\n\ntwo\n\nthree",
		},
		{
			name:     "list items become paragraphs",
			html:     "<ul><li>one</li><li>two</li></ul>",
			expected: "one\n\ntwo",
		},
		{
			name:     "inline heading content",
			html:     "<h3>Sub <em>x</em></h3>",
			expected: "### Sub *x*",
		},
		{
			name:     "internal whitespace collapses",
			html:     "<p>a\n      b</p>",
			expected: "a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.html); got != tt.expected {
				t.Errorf("Normalize() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNormalize_DegradesGracefully(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "unclosed bold",
			html:     "<p>Unclosed <b>bold",
			expected: "Unclosed **bold**",
		},
		{
			name:     "scripts and styles dropped",
			html:     "<p>keep</p><script>alert(1)</script><style>p{}</style>",
			expected: "keep",
		},
		{
			name:     "table degrades to text",
			html:     "<table><tr><td>cell one</td></tr><tr><td>cell two</td></tr></table>",
			expected: "cell one\n\ncell two",
		},
		{
			name:     "plain text passes through",
			html:     "just words",
			expected: "just words",
		},
		{
			name:     "empty input",
			html:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.html); got != tt.expected {
				t.Errorf("Normalize() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	html := `<h2>Title</h2><p>Body with <b>bold</b> and <a href="https://x.com">a link</a>.</p>`

	first := Normalize(html)
	for i := 0; i < 5; i++ {
		if got := Normalize(html); got != first {
			t.Fatalf("Normalize is not deterministic: %q vs %q", got, first)
		}
	}
}

func TestNormalize_NeverThreeNewlines(t *testing.T) {
	html := "<div><div><p>one</p></div></div><div><div><p>two</p></div></div>"

	got := Normalize(html)
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("output contains a run of 3+ newlines: %q", got)
	}
}
