package core_test

import (
	"context"
	"fmt"

	"github.com/veildoc/veildoc/pkg/core"
)

// ExampleScrub demonstrates a single anonymization run over raw text.
func ExampleScrub() {
	res, err := core.Scrub(context.Background(),
		"Contact john@example.com for details.", core.PresetFast())
	if err != nil {
		fmt.Println("scrub failed:", err)
		return
	}

	fmt.Println(res.RedactedText)
	fmt.Println("findings:", len(res.Findings))
	// Output:
	// Contact EMAIL_001 for details.
	// findings: 1
}
