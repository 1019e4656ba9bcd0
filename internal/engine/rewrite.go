package engine

import (
	"strings"
	"unicode/utf8"
)

// blockRune is the full-block character used for redaction. A redacted value
// is replaced by a run of these with the same character count, so document
// layout survives.
const blockRune = "█"

func blockRun(value string) string {
	return strings.Repeat(blockRune, utf8.RuneCountInString(value))
}

// mask keeps the first and last two characters and stars the middle.
// Values of four characters or fewer are fully starred.
func mask(value string) string {
	runes := []rune(value)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:2]) + strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-2:])
}

// replacement is one splice against the original text.
type replacement struct {
	start, end int
	text       string
}

// splice applies replacements to the original text in descending start
// order. Replacements change length (masks and pseudonyms rarely match the
// original span), so offsets are only valid against the original string;
// working right-to-left keeps every not-yet-applied offset stable.
func splice(text string, reps []replacement) string {
	out := text
	for i := len(reps) - 1; i >= 0; i-- {
		r := reps[i]
		out = out[:r.start] + r.text + out[r.end:]
	}
	return out
}
