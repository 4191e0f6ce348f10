package puente

import (
	"context"
	"strings"

	"golang.org/x/sync/singleflight"
)

// Upstream is the interface for AI translation backends. It receives a
// normalized text block plus directives and returns the provider's free-text
// reply.
type Upstream interface {
	Translate(ctx context.Context, req Request) (string, error)
}

// Request contains the parameters for one upstream translation call.
type Request struct {
	Block      string // Normalized text block, headers first
	Directives Directives
}

// FieldsStore is the interface for the server-side translation cache.
//
// The store has a single-writer-per-key contract: once a value is written for
// an identifier it is never overwritten, and every later Get for that
// identifier returns the identical stored value.
type FieldsStore interface {
	// Get retrieves cached fields. Returns the zero value and false if absent.
	Get(id string) (TranslatedFields, bool)

	// Set stores fields for an identifier. First write wins.
	Set(id string, fields TranslatedFields) error
}

// Pipeline is the server-side translation pipeline: cache check, prompt
// assembly, upstream call, and reply parsing.
//
// Translation is treated as pure and stable for a given input, so for any
// identifier two sequential Translate calls return byte-identical fields and
// the second call issues no upstream invocation. Concurrent first requests
// for the same identifier share a single in-flight upstream call.
type Pipeline struct {
	upstream   Upstream
	store      FieldsStore
	directives Directives
	flight     singleflight.Group
}

// PipelineOption is a functional option for configuring the Pipeline.
type PipelineOption func(*Pipeline)

// WithDirectives sets the fixed style/voice and target-locale directives sent
// with every upstream call.
func WithDirectives(d Directives) PipelineOption {
	return func(p *Pipeline) {
		p.directives = d
	}
}

// NewPipeline creates a new Pipeline with the given upstream and store.
func NewPipeline(upstream Upstream, store FieldsStore, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		upstream: upstream,
		store:    store,
		directives: Directives{
			Voice:        "Preserve the author's voice and register.",
			TargetLocale: "es_ES",
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// IsCached reports whether the identifier already has a cache entry.
func (p *Pipeline) IsCached(id string) bool {
	_, ok := p.store.Get(id)
	return ok
}

// Translate returns the translated fields for the input, calling the upstream
// at most once per identifier.
//
// On upstream failure nothing is cached and the error is an *UpstreamError,
// so a retry is exactly equivalent to the first attempt.
func (p *Pipeline) Translate(ctx context.Context, in TranslateInput) (TranslatedFields, error) {
	if strings.TrimSpace(in.ID) == "" {
		return TranslatedFields{}, &ValidationError{Field: "id", Message: "identifier is required"}
	}

	if fields, ok := p.store.Get(in.ID); ok {
		return fields, nil
	}

	v, err, _ := p.flight.Do(in.ID, func() (interface{}, error) {
		// Re-check under the flight: a concurrent first request may have
		// completed between the caller's cache check and this point.
		if fields, ok := p.store.Get(in.ID); ok {
			return fields, nil
		}

		reply, err := p.upstream.Translate(ctx, Request{
			Block:      BuildBlock(in.Title, in.Subtitle, in.Body),
			Directives: p.directives,
		})
		if err != nil {
			if _, ok := err.(*UpstreamError); ok {
				return nil, err
			}
			return nil, &UpstreamError{Message: "translation call failed", Cause: err, Retryable: true}
		}

		if strings.TrimSpace(reply) == "" {
			return nil, &UpstreamError{Message: "empty reply", Retryable: true}
		}

		fields := ParseReply(reply, in.Title, in.Subtitle)

		// Ignore store errors: the translation itself succeeded and a later
		// request simply re-translates.
		_ = p.store.Set(in.ID, fields)

		return fields, nil
	})
	if err != nil {
		return TranslatedFields{}, err
	}

	return v.(TranslatedFields), nil
}

// Directives returns the directives sent with every upstream call.
func (p *Pipeline) Directives() Directives {
	return p.directives
}
