package puente

// ContentSelectors is the ordered list of selector fallbacks used to locate
// an article's body container, both server-side during fetch and by the
// client widget during discovery. Earlier entries win.
var ContentSelectors = []string{
	"article .post-body",
	"article .available-content",
	"article",
	".post-content",
	"main",
}

// TitleSelectors locates the article title element, in fallback order.
var TitleSelectors = []string{
	"h1.post-title",
	"article h1",
	"h1",
}

// SubtitleSelectors locates the optional subtitle element, in fallback order.
var SubtitleSelectors = []string{
	"h3.subtitle",
	".subtitle",
	"article header h3",
}
