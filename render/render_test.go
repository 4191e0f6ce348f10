package render

import (
	"strings"
	"testing"

	"github.com/ZaguanLabs/puente/normalize"
)

func TestToHTML_Blocks(t *testing.T) {
	r := New()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "paragraph",
			text:     "Hello world.",
			expected: "<p>Hello world.</p>",
		},
		{
			name:     "soft break becomes br",
			text:     "one\ntwo",
			expected: "<p>one<br>two</p>",
		},
		{
			name:     "blank line separates paragraphs",
			text:     "one\n\ntwo",
			expected: "<p>one</p>\n<p>two</p>",
		},
		{
			name:     "extra blank lines ignored",
			text:     "one\n\n\n\ntwo",
			expected: "<p>one</p>\n<p>two</p>",
		},
		{
			name:     "level-3 heading",
			text:     "### Sub",
			expected: "<h3>Sub</h3>",
		},
		{
			name:     "level-2 heading",
			text:     "## Section",
			expected: "<h2>Section</h2>",
		},
		{
			name:     "single hash renders as paragraph",
			text:     "# Not a heading here",
			expected: "<p># Not a heading here</p>",
		},
		{
			name:     "mixed document",
			text:     "## Section\n\nBody text.",
			expected: "<h2>Section</h2>\n<p>Body text.</p>",
		},
		{
			name:     "empty input",
			text:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ToHTML(tt.text); got != tt.expected {
				t.Errorf("ToHTML() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestToHTML_Inline(t *testing.T) {
	r := New()

	got := r.ToHTML("**hola** mundo [link](https://x.com)")
	want := `<p><strong>hola</strong> mundo <a href="https://x.com">link</a></p>`
	if got != want {
		t.Errorf("ToHTML() = %q, want %q", got, want)
	}
}

func TestToHTML_PreRenderedPassThrough(t *testing.T) {
	r := New()

	tests := []string{
		"<p>Already rendered.</p>",
		`<div class="content">Rendered block</div>`,
	}

	for _, text := range tests {
		if got := r.ToHTML(text); got != text {
			t.Errorf("ToHTML(%q) = %q, want unchanged", text, got)
		}
	}
}

func TestToHTML_ItalicWidgetOnly(t *testing.T) {
	server := New()
	widget := NewWidget()

	text := "some *italic* words"

	if got := server.ToHTML(text); got != "<p>some *italic* words</p>" {
		t.Errorf("server renderer should leave italic markers: %q", got)
	}
	if got := widget.ToHTML(text); got != "<p>some <em>italic</em> words</p>" {
		t.Errorf("widget renderer should render italics: %q", got)
	}
}

func TestToHTML_BoldNeverRematchedAsItalic(t *testing.T) {
	widget := NewWidget()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "bold stays bold",
			text:     "**bold**",
			expected: "<p><strong>bold</strong></p>",
		},
		{
			name:     "bold and italic coexist",
			text:     "**bold** and *italic*",
			expected: "<p><strong>bold</strong> and <em>italic</em></p>",
		},
		{
			name:     "triple markers nest",
			text:     "***both***",
			expected: "<p><em><strong>both</strong></em></p>",
		},
		{
			name:     "lone asterisk untouched",
			text:     "a * b",
			expected: "<p>a * b</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := widget.ToHTML(tt.text); got != tt.expected {
				t.Errorf("ToHTML(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestToHTML_HeadingWithInlineMarks(t *testing.T) {
	r := New()

	got := r.ToHTML("### The **end**")
	want := "<h3>The <strong>end</strong></h3>"
	if got != want {
		t.Errorf("ToHTML() = %q, want %q", got, want)
	}
}

func TestRoundTrip_NormalizeThenRender(t *testing.T) {
	// toHtml(normalize(html)) preserves bold, links, and heading levels for
	// inputs restricted to the supported subset.
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "bold and link",
			html:     `<p><strong>hola</strong> mundo <a href="https://x.com">link</a></p>`,
			expected: `<p><strong>hola</strong> mundo <a href="https://x.com">link</a></p>`,
		},
		{
			name:     "heading levels",
			html:     "<h2>Section</h2><h3>Sub</h3><p>Body.</p>",
			expected: "<h2>Section</h2>\n<h3>Sub</h3>\n<p>Body.</p>",
		},
		{
			name:     "paragraphs with soft break",
			html:     "<p>one<br>two</p><p>three</p>",
			expected: "<p>one<br>two</p>\n<p>three</p>",
		},
	}

	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.ToHTML(normalize.Normalize(tt.html))
			if got != tt.expected {
				t.Errorf("round trip = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRoundTrip_ItalicWidget(t *testing.T) {
	w := NewWidget()

	got := w.ToHTML(normalize.Normalize("<p>an <em>italic</em> word</p>"))
	want := "<p>an <em>italic</em> word</p>"
	if got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}
}

func TestToHTML_DiscardsEmptyBlocks(t *testing.T) {
	r := New()

	got := r.ToHTML("\n\n  \n\nonly block\n\n\n")
	if got != "<p>only block</p>" {
		t.Errorf("ToHTML() = %q", got)
	}
	if strings.Contains(got, "<p></p>") {
		t.Error("empty paragraph emitted")
	}
}
