// Package engine runs the anonymization pipeline for one unit of text:
// detection, overlap resolution, policy decisions, and rewrite. One Analyze
// call is one run; pseudonym state never leaks between calls.
package engine

import (
	"context"

	"github.com/veildoc/veildoc/internal/patterns"
	"github.com/veildoc/veildoc/internal/preset"
	"github.com/veildoc/veildoc/internal/pseudonym"
	"github.com/veildoc/veildoc/internal/recognizer"
	"github.com/veildoc/veildoc/internal/types"
)

// Options carries per-invocation collaborators and overrides that are not
// part of the preset.
type Options struct {
	// Profile overrides the action tier table. Empty means derive it from
	// the preset's layer.
	Profile ActionProfile
	// Language is recorded on findings and passed to recognizers. Empty
	// falls back to the preset's fixed language, if any.
	Language string
	// Recognizers supplies external candidate producers. Nil means
	// pattern detection only.
	Recognizers *recognizer.Registry
}

// Result is the outcome of one Analyze call.
type Result struct {
	RedactedText string
	Findings     []types.Finding
	Summary      map[types.EntityType]int
}

// Analyze runs the full pipeline over text under the given preset. It never
// mutates its inputs; the pseudonym mapper is created and discarded inside
// the call.
func Analyze(ctx context.Context, text string, p preset.Preset, opts Options) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	profile := opts.Profile
	if profile == "" {
		profile = ProfileForLayer(p.Layer)
	}
	lang := opts.Language
	if lang == "" && p.LanguageMode == "fixed" {
		lang = p.Language
	}

	candidates := patterns.DetectWithValidation(text)
	candidates = append(candidates, opts.Recognizers.Collect(ctx, text, lang)...)

	accepted := resolve(candidates)

	mapper := pseudonym.NewMapper()
	result := Result{
		RedactedText: text,
		Summary:      map[types.EntityType]int{},
	}
	var reps []replacement

	// accepted is in position order, so pseudonym numbering follows
	// reading order and the splice below sees sorted offsets.
	for _, c := range accepted {
		// Disabled entities still compete for their span during
		// resolution; they are suppressed here so a weaker overlapping
		// candidate cannot take their place.
		if !p.EntityEnabled(c.EntityType) {
			continue
		}
		action, uncertain := decide(c.EntityType, c.Confidence, p, profile)

		prio := types.Priority(c.EntityType)
		escalated := profile == ProfileStrict && prio >= 80 && prio < 90 && !uncertain

		notes := ""
		if uncertain && p.UncertaintyPolicy == preset.UncertainFlagOnly {
			notes = "flag_only"
		}

		var pseudo string
		switch action {
		case types.ActionRedact:
			reps = append(reps, replacement{c.Start, c.End, blockRun(c.Value)})
		case types.ActionPseudonym:
			pseudo = mapper.Pseudonymise(c.EntityType, c.Value)
			reps = append(reps, replacement{c.Start, c.End, pseudo})
		case types.ActionMask:
			reps = append(reps, replacement{c.Start, c.End, mask(c.Value)})
		}

		f := buildFinding(text, c, p.MinimumConfidence, uncertain, action,
			pseudo, opts.Recognizers.ModelID(c.Source), lang, notes, escalated)
		result.Findings = append(result.Findings, f)
		result.Summary[c.EntityType]++
	}

	result.RedactedText = splice(text, reps)
	return result, nil
}
