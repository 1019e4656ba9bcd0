package engine

import (
	"fmt"
	"unicode/utf8"

	"github.com/veildoc/veildoc/internal/types"
)

// snippetRadius bounds the context captured around a detection.
const snippetRadius = 30

// contextSnippet returns up to snippetRadius bytes of text on each side of
// [start,end), widened outward to rune boundaries so multibyte characters are
// never split.
func contextSnippet(text string, start, end int) string {
	lo := start - snippetRadius
	if lo < 0 {
		lo = 0
	}
	for lo > 0 && !utf8.RuneStart(text[lo]) {
		lo--
	}
	hi := end + snippetRadius
	if hi > len(text) {
		hi = len(text)
	}
	for hi < len(text) && !utf8.RuneStart(text[hi]) {
		hi++
	}
	return text[lo:hi]
}

// location renders a byte-offset span as a human-readable locator.
func location(start, end int) string {
	return fmt.Sprintf("chars %d-%d", start, end)
}

// buildFinding assembles the audit record for one resolved candidate. File
// identity is left at its default; batch callers attach it afterwards.
func buildFinding(text string, c types.Candidate, threshold int, uncertain bool, action types.RedactionAction, pseudonym, modelID, lang, notes string, escalated bool) types.Finding {
	return types.Finding{
		FileID:              "TEXT_0001",
		PageOrLocation:      location(c.Start, c.End),
		EntityType:          c.EntityType,
		EntityPriority:      types.Priority(c.EntityType),
		DetectedText:        c.Value,
		ContextSnippet:      contextSnippet(text, c.Start, c.End),
		DetectionSource:     c.Source,
		ModelID:             modelID,
		ConfidenceScore:     c.Confidence,
		ConfidenceThreshold: threshold,
		UncertaintyFlag:     uncertain,
		RedactionAction:     action,
		PseudonymValue:      pseudonym,
		EscalationApplied:   escalated,
		Language:            lang,
		Notes:               notes,
	}
}
