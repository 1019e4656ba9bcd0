// Package core provides a small, stable facade over veildoc's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so embedding tools can depend on a stable import path without
// reaching into internal packages.
//
// Example:
//
//	res, err := core.Scrub(ctx, text, core.PresetStrict())
//	if err != nil { /* handle */ }
//	fmt.Println(res.RedactedText)
//	_ = core.MarshalFindings(os.Stdout, res.Findings)
package core
