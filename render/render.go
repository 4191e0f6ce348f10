// Package render converts constrained markdown-like text into an HTML
// fragment. The same algorithm serves the server-rendered page and the
// client widget; the widget variant additionally supports *italic*.
package render

import (
	"regexp"
	"strings"
)

var (
	blockSplit = regexp.MustCompile(`\n{2,}`)
	boldMark   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	linkMark   = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)

	// italicMark must never re-match a literal "**" bold marker. Bold is
	// replaced first, so by the time this runs no "**" pairs remain, and the
	// pattern itself refuses asterisks inside the marked span.
	italicMark = regexp.MustCompile(`\*([^*\n]+)\*`)
)

// Renderer renders constrained text as an HTML fragment.
type Renderer struct {
	// Italics enables the widget-only *italic* marker.
	Italics bool
}

// New returns the server-side renderer.
func New() *Renderer {
	return &Renderer{}
}

// NewWidget returns the widget renderer with italic support.
func NewWidget() *Renderer {
	return &Renderer{Italics: true}
}

// ToHTML renders text into an HTML fragment.
//
// Input that already contains an HTML paragraph or division marker is treated
// as pre-rendered and passed through unchanged, which defends against
// double-rendering when the upstream unexpectedly echoes HTML.
func (r *Renderer) ToHTML(text string) string {
	if strings.Contains(text, "<p") || strings.Contains(text, "<div") {
		return text
	}

	var out []string
	for _, block := range blockSplit.Split(text, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		switch {
		case strings.HasPrefix(block, "### "):
			out = append(out, "<h3>"+r.inline(strings.TrimPrefix(block, "### "))+"</h3>")
		case strings.HasPrefix(block, "## "):
			out = append(out, "<h2>"+r.inline(strings.TrimPrefix(block, "## "))+"</h2>")
		default:
			out = append(out, "<p>"+strings.ReplaceAll(r.inline(block), "\n", "<br>")+"</p>")
		}
	}

	return strings.Join(out, "\n")
}

// inline applies the inline markers: bold, then links, then (widget only)
// italics.
func (r *Renderer) inline(text string) string {
	text = boldMark.ReplaceAllString(text, "<strong>$1</strong>")
	text = linkMark.ReplaceAllString(text, `<a href="$2">$1</a>`)
	if r.Italics {
		text = italicMark.ReplaceAllString(text, "<em>$1</em>")
	}
	return text
}
