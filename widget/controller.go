package widget

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ZaguanLabs/puente"
	"github.com/ZaguanLabs/puente/normalize"
	"github.com/ZaguanLabs/puente/render"
)

// ErrDiscoveryTimeout is returned by Mount when host page content never
// appeared within the discovery budget. The widget declines to mount.
var ErrDiscoveryTimeout = errors.New("widget: content discovery timed out")

// ErrNotMounted is returned by toggle calls before a successful Mount.
var ErrNotMounted = errors.New("widget: controller is not mounted")

// FadingClass is the marker class added to text-bearing elements while the
// CSS fade transition runs.
const FadingClass = "puente-fading"

// Config holds the controller's tunables. Zero values fall back to defaults.
type Config struct {
	WidgetSelector    string        // Mount element selector (default: "[data-puente-id]")
	IDAttribute       string        // Content-identifier attribute (default: "data-puente-id")
	DiscoveryAttempts int           // Polling budget (default: 20)
	DiscoveryInterval time.Duration // Polling interval (default: 250ms)
	MinContentLength  int           // Minimum body text length to mount (default: 80)
	FadeDelay         time.Duration // Fade transition wait (default: 180ms)
}

func (c Config) withDefaults() Config {
	if c.WidgetSelector == "" {
		c.WidgetSelector = "[data-puente-id]"
	}
	if c.IDAttribute == "" {
		c.IDAttribute = "data-puente-id"
	}
	if c.DiscoveryAttempts <= 0 {
		c.DiscoveryAttempts = 20
	}
	if c.DiscoveryInterval <= 0 {
		c.DiscoveryInterval = 250 * time.Millisecond
	}
	if c.MinContentLength <= 0 {
		c.MinContentLength = 80
	}
	if c.FadeDelay <= 0 {
		c.FadeDelay = 180 * time.Millisecond
	}
	return c
}

// capturedFields hold the original-language markup taken at mount time.
type capturedFields struct {
	titleHTML    string
	subtitleHTML string
	bodyHTML     string
	title        string
	subtitle     string
	bodyText     string
}

// Controller is the language-toggle state machine for one mounted widget.
type Controller struct {
	dom       DOM
	transport Transport
	sched     Scheduler
	renderer  *render.Renderer
	logger    zerolog.Logger
	cfg       Config

	mu       sync.Mutex
	state    State
	id       string
	original capturedFields
	session  map[string]puente.TranslatedFields

	titleEl    Element
	subtitleEl Element
	bodyEl     Element
}

// NewController creates a controller over the injected capabilities.
func NewController(dom DOM, transport Transport, sched Scheduler, logger zerolog.Logger, cfg Config) *Controller {
	return &Controller{
		dom:       dom,
		transport: transport,
		sched:     sched,
		renderer:  render.NewWidget(),
		logger:    logger,
		cfg:       cfg.withDefaults(),
		state:     StateDiscovering,
		session:   make(map[string]puente.TranslatedFields),
	}
}

// State returns the current toggle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ID returns the content identifier read from the mount element.
func (c *Controller) ID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}

// Mount discovers the host page content and captures the original fields.
//
// Discovery is a bounded retry loop: the body container must be present with
// non-trivial text within DiscoveryAttempts polls. On exhaustion the widget
// declines to mount and the page is left untouched.
func (c *Controller) Mount(ctx context.Context) error {
	mountEl, ok := c.dom.Find(c.cfg.WidgetSelector)
	if !ok {
		c.logger.Debug().Str("selector", c.cfg.WidgetSelector).Msg("widget mount element not found")
		return ErrDiscoveryTimeout
	}

	id, ok := mountEl.Attr(c.cfg.IDAttribute)
	if ok {
		id = trimmed(id)
	}
	if id == "" {
		c.logger.Debug().Str("attribute", c.cfg.IDAttribute).Msg("widget mount element has no content identifier")
		return ErrDiscoveryTimeout
	}

	var bodyEl Element
	for attempt := 0; attempt < c.cfg.DiscoveryAttempts; attempt++ {
		if el, found := c.findBody(); found {
			bodyEl = el
			break
		}
		if err := c.sched.Sleep(ctx, c.cfg.DiscoveryInterval); err != nil {
			return err
		}
	}
	if bodyEl == nil {
		c.logger.Debug().
			Int("attempts", c.cfg.DiscoveryAttempts).
			Dur("interval", c.cfg.DiscoveryInterval).
			Msg("host page content never appeared, declining to mount")
		return ErrDiscoveryTimeout
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.id = id
	c.bodyEl = bodyEl
	c.titleEl, _ = findFirst(c.dom, puente.TitleSelectors)
	c.subtitleEl, _ = findFirst(c.dom, puente.SubtitleSelectors)

	c.original = capturedFields{
		bodyHTML: bodyEl.HTML(),
		bodyText: normalize.Normalize(bodyEl.HTML()),
	}
	if c.titleEl != nil {
		c.original.titleHTML = c.titleEl.HTML()
		c.original.title = trimmed(c.titleEl.Text())
	}
	if c.subtitleEl != nil {
		c.original.subtitleHTML = c.subtitleEl.HTML()
		c.original.subtitle = trimmed(c.subtitleEl.Text())
	}

	c.state = StateSource
	c.logger.Debug().Str("id", id).Msg("widget mounted")
	return nil
}

// findBody polls the ordered selector fallbacks for a body container with
// enough text to be worth translating.
func (c *Controller) findBody() (Element, bool) {
	for _, selector := range puente.ContentSelectors {
		if el, ok := c.dom.Find(selector); ok {
			if len(trimmed(el.Text())) >= c.cfg.MinContentLength {
				return el, true
			}
		}
	}
	return nil, false
}

// ToggleTranslated handles a click on the translated-language button.
//
// A click while a request is outstanding is a no-op. A failed request moves
// the controller to StateErrorReverted with no content mutation; the session
// cache is left untouched so a retry behaves as a first attempt.
func (c *Controller) ToggleTranslated(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateDiscovering:
		c.mu.Unlock()
		return ErrNotMounted
	case StateLoading, StateTranslated:
		c.mu.Unlock()
		return nil
	}

	id := c.id
	if fields, ok := c.session[id]; ok {
		// Session cache hit: no network call.
		c.mu.Unlock()
		return c.applyTranslated(ctx, fields)
	}

	c.state = StateLoading
	req := TranslateRequest{
		ID:       id,
		Title:    c.original.title,
		Subtitle: c.original.subtitle,
		Content:  c.original.bodyText,
	}
	c.mu.Unlock()

	resp, err := c.transport.Translate(ctx, req)
	if err != nil {
		c.mu.Lock()
		if c.state == StateLoading {
			c.state = StateErrorReverted
		}
		c.mu.Unlock()
		c.logger.Warn().Err(err).Str("id", id).Msg("translate request failed, reverting to source")
		return err
	}

	fields := puente.TranslatedFields{
		Title:    resp.Title,
		Subtitle: resp.Subtitle,
		Content:  resp.Content,
	}

	c.mu.Lock()
	c.session[id] = fields
	if c.state != StateLoading {
		// The user left Loading (toggled back) before the reply arrived.
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	return c.applyTranslated(ctx, fields)
}

// ToggleSource handles a click on the source-language button. The captured
// original markup is re-applied directly, with no network call.
func (c *Controller) ToggleSource(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateDiscovering:
		c.mu.Unlock()
		return ErrNotMounted
	case StateSource, StateErrorReverted:
		c.state = StateSource
		c.mu.Unlock()
		return nil
	}
	c.state = StateSource
	original := c.original
	c.mu.Unlock()

	return c.swap(ctx, original.titleHTML, original.subtitleHTML, original.bodyHTML)
}

// applyTranslated renders the fields and swaps them into the DOM.
func (c *Controller) applyTranslated(ctx context.Context, fields puente.TranslatedFields) error {
	if err := c.swap(ctx, fields.Title, fields.Subtitle, c.renderer.ToHTML(fields.Content)); err != nil {
		return err
	}

	c.mu.Lock()
	c.state = StateTranslated
	c.mu.Unlock()
	return nil
}

// swap runs the two-phase content swap protocol: mark every text-bearing
// element as fading, wait the fixed delay for the CSS transition, then
// mutate all elements in one step and unmark them.
func (c *Controller) swap(ctx context.Context, titleHTML, subtitleHTML, bodyHTML string) error {
	elements := c.textElements()

	for _, el := range elements {
		el.AddClass(FadingClass)
	}

	if err := c.sched.Sleep(ctx, c.cfg.FadeDelay); err != nil {
		for _, el := range elements {
			el.RemoveClass(FadingClass)
		}
		return err
	}

	if c.titleEl != nil && titleHTML != "" {
		c.titleEl.SetHTML(titleHTML)
	}
	if c.subtitleEl != nil && subtitleHTML != "" {
		c.subtitleEl.SetHTML(subtitleHTML)
	}
	c.bodyEl.SetHTML(bodyHTML)

	for _, el := range elements {
		el.RemoveClass(FadingClass)
	}
	return nil
}

func (c *Controller) textElements() []Element {
	var elements []Element
	if c.titleEl != nil {
		elements = append(elements, c.titleEl)
	}
	if c.subtitleEl != nil {
		elements = append(elements, c.subtitleEl)
	}
	elements = append(elements, c.bodyEl)
	return elements
}

func findFirst(dom DOM, selectors []string) (Element, bool) {
	for _, selector := range selectors {
		if el, ok := dom.Find(selector); ok {
			return el, true
		}
	}
	return nil, false
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
