package pseudonym

import (
	"testing"

	"github.com/veildoc/veildoc/internal/types"
)

func TestStableWithinRun(t *testing.T) {
	m := NewMapper()
	a := m.Pseudonymise(types.Email, "john@example.com")
	b := m.Pseudonymise(types.Email, "john@example.com")
	if a != b {
		t.Fatalf("same value produced different tokens: %q vs %q", a, b)
	}
	if a != "EMAIL_001" {
		t.Fatalf("first token = %q, want EMAIL_001", a)
	}
}

func TestDistinctValuesCountUp(t *testing.T) {
	m := NewMapper()
	first := m.Pseudonymise(types.Email, "john@example.com")
	second := m.Pseudonymise(types.Email, "jane@example.com")
	if first != "EMAIL_001" || second != "EMAIL_002" {
		t.Fatalf("got %q, %q; want EMAIL_001, EMAIL_002", first, second)
	}
	if m.Assigned(types.Email) != 2 {
		t.Fatalf("Assigned = %d, want 2", m.Assigned(types.Email))
	}
}

func TestCountersPerEntityType(t *testing.T) {
	m := NewMapper()
	m.Pseudonymise(types.Email, "john@example.com")
	tok := m.Pseudonymise(types.Person, "John Smith")
	if tok != "PERSON_001" {
		t.Fatalf("person token = %q, want PERSON_001", tok)
	}
}

func TestCaseSensitiveLookup(t *testing.T) {
	m := NewMapper()
	a := m.Pseudonymise(types.Email, "John@Example.com")
	b := m.Pseudonymise(types.Email, "john@example.com")
	if a == b {
		t.Fatal("differently-cased values must map to distinct tokens")
	}
}

func TestFreshMapperStartsOver(t *testing.T) {
	m1 := NewMapper()
	m1.Pseudonymise(types.Email, "john@example.com")
	m1.Pseudonymise(types.Email, "jane@example.com")

	m2 := NewMapper()
	if got := m2.Pseudonymise(types.Email, "jane@example.com"); got != "EMAIL_001" {
		t.Fatalf("new run token = %q, want EMAIL_001", got)
	}
}
