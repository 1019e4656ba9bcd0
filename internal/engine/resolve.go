package engine

import (
	"sort"

	"github.com/veildoc/veildoc/internal/types"
)

// resolve selects a maximal set of mutually non-overlapping candidates.
// Candidates are ordered by confidence descending, then start ascending,
// then span length descending, and accepted greedily. The ordering is a
// total order over distinct spans, so the result does not depend on input
// order: a validated IBAN beats a weaker overlapping guess no matter which
// detector ran first. Exact duplicates collapse to one; the second is
// rejected as overlapping.
//
// The accepted set is returned sorted by start offset, the order every
// later stage relies on.
func resolve(candidates []types.Candidate) []types.Candidate {
	ordered := make([]types.Candidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Confidence != ordered[j].Confidence {
			return ordered[i].Confidence > ordered[j].Confidence
		}
		if ordered[i].Start != ordered[j].Start {
			return ordered[i].Start < ordered[j].Start
		}
		return ordered[i].Length() > ordered[j].Length()
	})

	var accepted []types.Candidate
	for _, c := range ordered {
		overlaps := false
		for _, a := range accepted {
			if c.Overlaps(a.Start, a.End) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			accepted = append(accepted, c)
		}
	}

	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].Start < accepted[j].Start
	})
	return accepted
}
