package puente

// PostMetadata holds descriptive metadata extracted alongside an article.
type PostMetadata struct {
	Authors       []string `json:"authors,omitempty"`        // Author names, in source order
	DatePublished string   `json:"date_published,omitempty"` // Publication timestamp as reported by the source
	Description   string   `json:"description,omitempty"`    // Short description or og:description
	Image         string   `json:"image,omitempty"`          // Lead image URL
}

// SourcePost is one piece of source content as produced by the fetch layer.
// Immutable once constructed; ID is a stable content identifier derived from
// the source platform's slug or internal identifier.
type SourcePost struct {
	ID          string
	Title       string
	Subtitle    string
	BodyText    string // Normalized text form of BodyHTML
	BodyHTML    string // Original rich-text body markup
	OriginalURL string
	Metadata    PostMetadata
}

// TranslatedFields is the structured result of parsing a translation reply.
// Immutable once produced by the pipeline.
type TranslatedFields struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Content  string `json:"content"`
}

// TranslateInput carries the source fields for one translation request.
// ID is required; Title and Body may individually be empty but the caller
// is expected to supply at least one of them.
type TranslateInput struct {
	ID       string
	Title    string
	Subtitle string
	Body     string
}

// Directives hold the fixed instruction text sent with every upstream call.
// The exact wording is a configuration concern; the pipeline treats both
// values as opaque.
type Directives struct {
	// Voice is the style/voice directive (register, tone).
	Voice string
	// TargetLocale is the target-locale directive (e.g. "es_ES").
	TargetLocale string
}
