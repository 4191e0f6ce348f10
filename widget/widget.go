// Package widget implements the client-side language-toggle controller.
//
// The controller is headless: the host page document, the scheduler, and the
// transport to the translation service are injected capabilities, so the
// same state machine drives a browser bridge in production and fakes in
// tests. One controller instance serves one mounted widget per page view.
package widget

import (
	"context"
	"time"
)

// DOM abstracts the host page document.
type DOM interface {
	// Find returns the first element matching the selector.
	Find(selector string) (Element, bool)
}

// Element is one text-bearing element on the host page.
type Element interface {
	Text() string
	HTML() string
	SetHTML(markup string)
	AddClass(name string)
	RemoveClass(name string)
	Attr(name string) (string, bool)
}

// Scheduler provides the timed waits used by discovery polling and the fade
// transition.
type Scheduler interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Transport reaches the translation pipeline remotely.
type Transport interface {
	Translate(ctx context.Context, req TranslateRequest) (*TranslateResponse, error)
}

// TranslateRequest is the wire shape of a translate call.
type TranslateRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Content  string `json:"content,omitempty"`
}

// TranslateResponse is the wire shape of a translate reply.
type TranslateResponse struct {
	ID       string `json:"id"`
	Cached   bool   `json:"cached"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Content  string `json:"content"`
}

// State is the controller's toggle state.
type State int

const (
	// StateDiscovering polls for host page content before mounting.
	StateDiscovering State = iota
	// StateSource displays the original-language fields.
	StateSource
	// StateLoading has one translate request outstanding.
	StateLoading
	// StateTranslated displays the translated fields.
	StateTranslated
	// StateErrorReverted indicates a failed translate attempt; the source
	// language is displayed and a retry behaves as a first attempt.
	StateErrorReverted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateDiscovering:
		return "discovering"
	case StateSource:
		return "source"
	case StateLoading:
		return "loading"
	case StateTranslated:
		return "translated"
	case StateErrorReverted:
		return "error_reverted"
	default:
		return "unknown"
	}
}

// realScheduler sleeps on the wall clock.
type realScheduler struct{}

func (realScheduler) Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// NewScheduler returns a wall-clock scheduler.
func NewScheduler() Scheduler {
	return realScheduler{}
}
