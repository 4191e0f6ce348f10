// Package fetch retrieves source articles over HTTP and extracts them into
// SourcePost values.
package fetch

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/ZaguanLabs/puente"
	"github.com/ZaguanLabs/puente/normalize"
)

const (
	defaultTimeout   = 12 * time.Second
	defaultBodyLimit = 2 * 1024 * 1024
)

// SourceFetcher retrieves one source article by URL.
type SourceFetcher interface {
	Fetch(ctx context.Context, pageURL string) (*puente.SourcePost, error)
}

// HTTPFetcher fetches articles via HTTP and extracts fields with selector
// fallbacks, using readability extraction when no selector matches.
type HTTPFetcher struct {
	client    *http.Client
	bodyLimit int64
	userAgent string
}

// Options controls HTTP behavior for the fetcher.
type Options struct {
	Timeout       time.Duration
	BodyByteLimit int64
	UserAgent     string
	HTTPClient    *http.Client
}

// New creates an HTTPFetcher with sensible defaults.
func New(opts Options) *HTTPFetcher {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	bodyLimit := opts.BodyByteLimit
	if bodyLimit <= 0 {
		bodyLimit = defaultBodyLimit
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = puente.UserAgent()
	}

	return &HTTPFetcher{
		client:    client,
		bodyLimit: bodyLimit,
		userAgent: userAgent,
	}
}

// Fetch retrieves and extracts one article.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) (*puente.SourcePost, error) {
	page := strings.TrimSpace(pageURL)
	if page == "" {
		return nil, &puente.FetchError{URL: pageURL, Message: "url is required"}
	}

	parsed, err := url.Parse(page)
	if err != nil {
		return nil, &puente.FetchError{URL: page, Message: "parse url", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, page, nil)
	if err != nil {
		return nil, &puente.FetchError{URL: page, Message: "build request", Cause: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &puente.FetchError{URL: page, Message: "fetch url", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &puente.FetchError{URL: page, Message: "unexpected status " + resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.bodyLimit))
	if err != nil {
		return nil, &puente.FetchError{URL: page, Message: "read body", Cause: err}
	}

	return extract(body, parsed)
}

// extract builds a SourcePost from a fetched document.
func extract(body []byte, pageURL *url.URL) (*puente.SourcePost, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &puente.FetchError{URL: pageURL.String(), Message: "parse html", Cause: err}
	}

	post := &puente.SourcePost{
		ID:          pageURL.Path,
		OriginalURL: pageURL.String(),
		Metadata:    extractMetadata(doc),
	}

	post.Title = firstText(doc, puente.TitleSelectors)
	if post.Title == "" {
		post.Title = metaContent(doc, "og:title")
	}
	if post.Title == "" {
		post.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	post.Subtitle = firstText(doc, puente.SubtitleSelectors)

	if sel, ok := firstMatch(doc, puente.ContentSelectors); ok {
		if markup, err := sel.Html(); err == nil {
			post.BodyHTML = strings.TrimSpace(markup)
		}
	}

	if post.BodyHTML != "" {
		post.BodyText = normalize.Normalize(post.BodyHTML)
	} else {
		// No selector matched: fall back to readability extraction for a
		// plain-text body.
		post.BodyText = readableText(body, pageURL)
	}

	if post.Title == "" && post.BodyText == "" {
		return nil, &puente.FetchError{URL: pageURL.String(), Message: "no extractable content"}
	}

	return post, nil
}

// firstMatch returns the first non-empty selection for the ordered selector
// fallbacks.
func firstMatch(doc *goquery.Document, selectors []string) (*goquery.Selection, bool) {
	for _, selector := range selectors {
		sel := doc.Find(selector)
		if sel.Length() > 0 {
			return sel.First(), true
		}
	}
	return nil, false
}

func firstText(doc *goquery.Document, selectors []string) string {
	if sel, ok := firstMatch(doc, selectors); ok {
		return strings.TrimSpace(sel.Text())
	}
	return ""
}

func extractMetadata(doc *goquery.Document) puente.PostMetadata {
	meta := puente.PostMetadata{
		Description:   metaContent(doc, "og:description", "description"),
		Image:         metaContent(doc, "og:image"),
		DatePublished: metaContent(doc, "article:published_time"),
	}

	if meta.DatePublished == "" {
		if dt, ok := doc.Find("time[datetime]").First().Attr("datetime"); ok {
			meta.DatePublished = strings.TrimSpace(dt)
		}
	}

	seen := make(map[string]bool)
	doc.Find(`meta[name="author"], meta[property="article:author"]`).Each(func(i int, s *goquery.Selection) {
		if author, ok := s.Attr("content"); ok {
			author = strings.TrimSpace(author)
			if author != "" && !seen[author] {
				seen[author] = true
				meta.Authors = append(meta.Authors, author)
			}
		}
	})

	return meta
}

// metaContent returns the first non-empty content attribute among meta tags
// matching the given property or name values.
func metaContent(doc *goquery.Document, keys ...string) string {
	for _, key := range keys {
		sel := doc.Find(`meta[property="` + key + `"], meta[name="` + key + `"]`)
		if content, ok := sel.First().Attr("content"); ok {
			if content = strings.TrimSpace(content); content != "" {
				return content
			}
		}
	}
	return ""
}

// readableText extracts plain article text with readability.
func readableText(body []byte, pageURL *url.URL) string {
	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return ""
	}

	var rendered bytes.Buffer
	if err := article.RenderText(&rendered); err != nil {
		return strings.TrimSpace(article.Excerpt())
	}

	text := strings.TrimSpace(rendered.String())
	if text == "" {
		text = strings.TrimSpace(article.Excerpt())
	}
	return text
}

// Verify HTTPFetcher implements SourceFetcher
var _ SourceFetcher = (*HTTPFetcher)(nil)
