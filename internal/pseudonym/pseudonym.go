// Package pseudonym assigns stable synthetic tokens to detected values within
// a single run. A fresh Mapper must be constructed per pipeline invocation:
// sharing one across runs would let redacted entities be correlated between
// documents, which is exactly what the audit trail must prevent.
package pseudonym

import (
	"fmt"

	"github.com/veildoc/veildoc/internal/types"
)

// Mapper maps (entity type, original value) pairs to tokens of the form
// ENTITY_TYPE_NNN. The same value always receives the same token within a
// run; distinct values count up per entity type starting at 1.
type Mapper struct {
	counters map[types.EntityType]int
	mapping  map[string]string
}

// NewMapper returns an empty per-run mapper.
func NewMapper() *Mapper {
	return &Mapper{
		counters: make(map[types.EntityType]int),
		mapping:  make(map[string]string),
	}
}

// Pseudonymise returns the token for the exact (entityType, value) pair.
// The lookup is case-sensitive and applies no normalization.
func (m *Mapper) Pseudonymise(entityType types.EntityType, value string) string {
	key := string(entityType) + ":" + value
	if token, ok := m.mapping[key]; ok {
		return token
	}
	m.counters[entityType]++
	token := fmt.Sprintf("%s_%03d", entityType, m.counters[entityType])
	m.mapping[key] = token
	return token
}

// Assigned reports how many distinct values have been tokenized for an
// entity type so far.
func (m *Mapper) Assigned(entityType types.EntityType) int {
	return m.counters[entityType]
}
