package httpapi

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ZaguanLabs/puente"
)

// translateRequest is the wire shape of translate and pre-warm calls.
// ID is required, plus at least one of Title and Content.
type translateRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Content  string `json:"content,omitempty"`
}

type translateResponse struct {
	ID       string `json:"id"`
	Cached   bool   `json:"cached"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Content  string `json:"content"`
}

type prewarmResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"` // "already_cached" or "cached"
}

// validate rejects the request before any upstream call.
func (r *translateRequest) validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return &puente.ValidationError{Field: "id", Message: "identifier is required"}
	}
	if strings.TrimSpace(r.Title) == "" && strings.TrimSpace(r.Content) == "" {
		return &puente.ValidationError{Message: "at least one of title and content is required"}
	}
	return nil
}

func (s *Server) handleTranslate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return &puente.ValidationError{Message: "malformed request body"}
	}
	if err := req.validate(); err != nil {
		return err
	}

	cached := s.pipeline.IsCached(req.ID)

	fields, err := s.pipeline.Translate(c.Request().Context(), puente.TranslateInput{
		ID:       req.ID,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Body:     req.Content,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, translateResponse{
		ID:       req.ID,
		Cached:   cached,
		Title:    fields.Title,
		Subtitle: fields.Subtitle,
		Content:  fields.Content,
	})
}

func (s *Server) handlePrewarm(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return &puente.ValidationError{Message: "malformed request body"}
	}
	if err := req.validate(); err != nil {
		return err
	}

	if s.pipeline.IsCached(req.ID) {
		return c.JSON(http.StatusOK, prewarmResponse{ID: req.ID, Status: "already_cached"})
	}

	if _, err := s.pipeline.Translate(c.Request().Context(), puente.TranslateInput{
		ID:       req.ID,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Body:     req.Content,
	}); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, prewarmResponse{ID: req.ID, Status: "cached"})
}

// readerPage is the minimal shell around a server-rendered translated
// article. Page chrome beyond this lives with the host site.
var readerPage = template.Must(template.New("reader").Parse(`<!doctype html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<article data-puente-id="{{.ID}}">
<h1 class="post-title">{{.Title}}</h1>
{{if .Subtitle}}<h3 class="subtitle">{{.Subtitle}}</h3>{{end}}
<div class="post-body">{{.Body}}</div>
</article>
</body>
</html>
`))

type readerPageData struct {
	ID       string
	Lang     string
	Title    string
	Subtitle string
	Body     template.HTML
}

// handleReaderPage fetches the source article, translates it, and renders a
// full translated page.
func (s *Server) handleReaderPage(c echo.Context) error {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		return echo.NewHTTPError(http.StatusNotFound, "unknown article")
	}

	// The identifier is the stable per-content path, verbatim.
	id := "/p/" + slug

	post, err := s.fetcher.Fetch(c.Request().Context(), s.opts.SourceBaseURL+id)
	if err != nil {
		s.logger.Warn().Err(err).Str("id", id).Msg("source fetch failed")
		return echo.NewHTTPError(http.StatusBadGateway, "source unavailable")
	}

	fields, err := s.pipeline.Translate(c.Request().Context(), puente.TranslateInput{
		ID:       id,
		Title:    post.Title,
		Subtitle: post.Subtitle,
		Body:     post.BodyText,
	})
	if err != nil {
		return err
	}

	data := readerPageData{
		ID:       id,
		Lang:     strings.Split(s.pipeline.Directives().TargetLocale, "_")[0],
		Title:    fields.Title,
		Subtitle: fields.Subtitle,
		Body:     template.HTML(s.renderer.ToHTML(fields.Content)),
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return readerPage.Execute(c.Response(), data)
}
