// Package patterns is the registry of regex-based PII detectors and the
// checksum-validated detection entrypoint. Detectors are grouped per entity
// type, one file per group. Confidence encodes pattern specificity: a
// region-specific phone format outranks the generic fallback that would match
// the same digits.
package patterns

import (
	"regexp"
	"strings"

	"github.com/veildoc/veildoc/internal/types"
	"github.com/veildoc/veildoc/internal/validate"
)

// Pattern pairs a regex source with the entity type and base confidence it
// asserts. Name identifies the detector in audit output ("pattern:<name>").
type Pattern struct {
	Expr       string
	EntityType types.EntityType
	Confidence int
	Name       string
}

type compiledPattern struct {
	re   *regexp.Regexp
	spec Pattern
}

// registry holds every pattern that compiled. Built once at init.
var registry = compileAll(allPatterns())

func allPatterns() []Pattern {
	var all []Pattern
	for _, group := range [][]Pattern{
		emailPatterns,
		phonePatterns,
		nationalIDPatterns,
		passportPatterns,
		creditCardPatterns,
		bankAccountPatterns,
		ipAddressPatterns,
		datePatterns,
		dateOfBirthPatterns,
		addressPatterns,
		vehiclePatterns,
		medicalIDPatterns,
		onlinePatterns,
		moneyPatterns,
		taxIDPatterns,
	} {
		all = append(all, group...)
	}
	return all
}

// compileAll compiles each pattern case-insensitively and skips any that fail.
// A single malformed pattern must not take the whole library down.
func compileAll(specs []Pattern) []compiledPattern {
	out := make([]compiledPattern, 0, len(specs))
	for _, p := range specs {
		re, err := regexp.Compile("(?i)" + p.Expr)
		if err != nil {
			continue
		}
		out = append(out, compiledPattern{re: re, spec: p})
	}
	return out
}

// Names returns the registered detector names in registration order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, cp := range registry {
		names = append(names, cp.spec.Name)
	}
	return names
}

// Count reports how many patterns compiled into the registry.
func Count() int { return len(registry) }

// Detect runs every registered pattern over text and returns one candidate
// per match, carrying the pattern's base confidence.
func Detect(text string) []types.Candidate {
	var out []types.Candidate
	for _, cp := range registry {
		for _, loc := range cp.re.FindAllStringIndex(text, -1) {
			out = append(out, types.Candidate{
				Start:      loc[0],
				End:        loc[1],
				EntityType: cp.spec.EntityType,
				Value:      text[loc[0]:loc[1]],
				Confidence: cp.spec.Confidence,
				Source:     "pattern:" + cp.spec.Name,
			})
		}
	}
	return out
}

// DetectWithValidation layers checksum validation on top of Detect.
// Payment cards that fail Luhn are dropped outright; a failed card check is a
// false positive that must never reach the user as validated. IBAN-like bank
// codes and national IDs with public checksums are boosted when valid and
// kept at base confidence when not: the structural match still has value as a
// low-confidence signal.
func DetectWithValidation(text string) []types.Candidate {
	matches := Detect(text)
	out := make([]types.Candidate, 0, len(matches))
	for _, m := range matches {
		switch {
		case m.EntityType == types.CreditCard:
			if validate.Luhn(m.Value) {
				m.Confidence = boost(m.Confidence)
				out = append(out, m)
			}
		case m.EntityType == types.BankAccount && strings.Contains(m.Source, "iban"):
			if validate.IBAN(m.Value) {
				m.Confidence = boost(m.Confidence)
			}
			out = append(out, m)
		case m.Source == "pattern:bsn_nl" && validate.DutchBSN(m.Value):
			m.Confidence = boost(m.Confidence)
			out = append(out, m)
		case m.Source == "pattern:id_china" && validate.ChinaID(m.Value):
			m.Confidence = boost(m.Confidence)
			out = append(out, m)
		case m.Source == "pattern:nric_singapore" && validate.SingaporeNRIC(m.Value):
			m.Confidence = boost(m.Confidence)
			out = append(out, m)
		default:
			out = append(out, m)
		}
	}
	return out
}

func boost(confidence int) int {
	if confidence+5 > 100 {
		return 100
	}
	return confidence + 5
}
