// Package recognizer defines the contract for external candidate producers
// (NER engines, token classifiers) and a caller-owned registry for them. The
// engine never owns model handles or process-level caches; a caller that
// wants lazy model loading keeps its own Registry alive across runs and
// passes it in.
package recognizer

import (
	"context"

	"github.com/veildoc/veildoc/internal/types"
)

// Recognizer produces candidates from raw text. Implementations may be slow
// (model inference); callers wanting timeouts wrap ctx at this boundary.
type Recognizer interface {
	// Name tags candidates from this recognizer in audit output.
	Name() string
	// ModelID identifies the underlying model, if any, for the audit trail.
	ModelID() string
	// Recognize returns candidates for text. Offsets are treated exactly
	// like pattern offsets during fusion; no extra validation happens.
	Recognize(ctx context.Context, text, lang string) ([]types.Candidate, error)
}

// Func adapts a plain function into a Recognizer with a fixed name.
type Func struct {
	Tag   string
	Model string
	Fn    func(ctx context.Context, text, lang string) ([]types.Candidate, error)
}

func (f Func) Name() string    { return f.Tag }
func (f Func) ModelID() string { return f.Model }

func (f Func) Recognize(ctx context.Context, text, lang string) ([]types.Candidate, error) {
	return f.Fn(ctx, text, lang)
}

// Registry is an ordered set of recognizers owned by the caller.
type Registry struct {
	recs []Recognizer
}

// NewRegistry returns a registry over the given recognizers.
func NewRegistry(recs ...Recognizer) *Registry {
	return &Registry{recs: recs}
}

// Add appends a recognizer.
func (r *Registry) Add(rec Recognizer) {
	r.recs = append(r.recs, rec)
}

// Len reports the number of registered recognizers.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.recs)
}

// ModelID returns the model identifier for the recognizer with the given
// source tag, or "" if none matches.
func (r *Registry) ModelID(tag string) string {
	if r == nil {
		return ""
	}
	for _, rec := range r.recs {
		if rec.Name() == tag {
			return rec.ModelID()
		}
	}
	return ""
}

// Collect runs every recognizer and concatenates their candidates. A failing
// recognizer contributes an empty list; the run proceeds with whatever other
// sources produced. Candidates without a source are tagged with the
// recognizer's name.
func (r *Registry) Collect(ctx context.Context, text, lang string) []types.Candidate {
	if r == nil {
		return nil
	}
	var out []types.Candidate
	for _, rec := range r.recs {
		cands, err := rec.Recognize(ctx, text, lang)
		if err != nil {
			continue
		}
		for _, c := range cands {
			if c.Source == "" {
				c.Source = rec.Name()
			}
			out = append(out, c)
		}
	}
	return out
}
