// Package normalize converts rich-text HTML into the constrained
// markdown-like text form exchanged with the translation capability.
//
// The form supports headings ("#", "##", "###" at line start), **bold**,
// *italic*, [text](url) links, blank-line-separated paragraphs, and a single
// newline as a soft break within a paragraph. Everything else degrades to
// plain text.
package normalize

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// skipTags contains HTML tags whose content never reaches the output.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"head":     true,
	"iframe":   true,
	"svg":      true,
	"template": true,
}

// blockTags contains container tags terminated by a paragraph break.
var blockTags = map[string]bool{
	"p":          true,
	"div":        true,
	"section":    true,
	"article":    true,
	"blockquote": true,
	"ul":         true,
	"ol":         true,
	"li":         true,
	"figure":     true,
	"figcaption": true,
	"table":      true,
	"tr":         true,
	"pre":        true,
}

// headingLevels maps heading tags to their marker depth.
var headingLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6,
}

var (
	surplusNewlines = regexp.MustCompile(`\n{3,}`)
	spacedNewline   = regexp.MustCompile(`[ \t]*\n[ \t]*`)
	tagPattern      = regexp.MustCompile(`<[^>]*>`)
)

// Normalize converts HTML into the constrained text form. It is
// deterministic, pure, and total: malformed markup degrades to plain text
// with paragraph breaks rather than failing.
func Normalize(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		// html.Parse accepts almost anything; if it still fails, strip tags.
		return clean(tagPattern.ReplaceAllString(markup, " "))
	}

	var b strings.Builder
	doc.Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			render(n, &b)
		}
	})

	return clean(b.String())
}

// render serializes a node tree into the constrained form. Nested inline
// marks are applied in encounter order without re-entrant escaping.
func render(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(collapseSpace(n.Data))
		return

	case html.ElementNode:
		tag := strings.ToLower(n.Data)

		if skipTags[tag] {
			return
		}

		if level, ok := headingLevels[tag]; ok {
			inner := strings.TrimSpace(renderChildren(n))
			if inner != "" {
				b.WriteString("\n\n" + strings.Repeat("#", level) + " " + inner + "\n\n")
			}
			return
		}

		switch tag {
		case "a":
			writeMarked(b, renderChildren(n), func(text string) string {
				href := attr(n, "href")
				if href == "" {
					return text
				}
				return "[" + text + "](" + href + ")"
			})
			return
		case "b", "strong":
			writeMarked(b, renderChildren(n), func(text string) string {
				return "**" + text + "**"
			})
			return
		case "i", "em":
			writeMarked(b, renderChildren(n), func(text string) string {
				return "*" + text + "*"
			})
			return
		case "br":
			b.WriteString("\n")
			return
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			render(c, b)
		}

		if blockTags[tag] {
			b.WriteString("\n\n")
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		render(c, b)
	}
}

// writeMarked wraps trimmed inner text with an inline marker, keeping any
// surrounding whitespace outside the marker. Empty inner text degrades to
// nothing.
func writeMarked(b *strings.Builder, inner string, mark func(string) string) {
	trimmed := strings.TrimSpace(inner)
	if trimmed == "" {
		b.WriteString(inner)
		return
	}
	if strings.HasPrefix(inner, " ") {
		b.WriteString(" ")
	}
	b.WriteString(mark(trimmed))
	if strings.HasSuffix(inner, " ") {
		b.WriteString(" ")
	}
}

func renderChildren(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		render(c, &b)
	}
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

// collapseSpace reduces whitespace runs to single spaces, keeping at most one
// leading and one trailing space.
func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s == "" {
			return ""
		}
		return " "
	}

	out := strings.Join(fields, " ")
	if s != strings.TrimLeft(s, " \t\n\r") {
		out = " " + out
	}
	if s != strings.TrimRight(s, " \t\n\r") {
		out += " "
	}
	return out
}

// clean applies the final whitespace rules: spaces hugging newlines are
// dropped, runs of three or more newlines collapse to exactly two, and the
// result is trimmed.
func clean(s string) string {
	s = spacedNewline.ReplaceAllString(s, "\n")
	s = surplusNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
