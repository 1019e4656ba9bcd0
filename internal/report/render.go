package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"

	"github.com/veildoc/veildoc/internal/types"
)

type PrintOptions struct {
	NoColor        bool
	Duration       time.Duration
	FilesProcessed int
}

// useColor gates ANSI output on the option flag and stdout being a TTY.
func useColor(opts PrintOptions) bool {
	return !opts.NoColor && term.IsTerminal(int(os.Stdout.Fd()))
}

// PrintSummary renders the per-entity detection counts, highest priority
// first, with a footer of run statistics.
func PrintSummary(w io.Writer, summary map[types.EntityType]int, opts PrintOptions) {
	total := 0
	for _, n := range summary {
		total += n
	}
	if total == 0 {
		fmt.Fprintln(w, "No sensitive data found ✅")
	} else {
		ordered := make([]types.EntityType, 0, len(summary))
		for et := range summary {
			ordered = append(ordered, et)
		}
		sort.Slice(ordered, func(i, j int) bool {
			pi, pj := types.Priority(ordered[i]), types.Priority(ordered[j])
			if pi != pj {
				return pi > pj
			}
			return ordered[i] < ordered[j]
		})

		table := tablewriter.NewWriter(w)
		table.Header([]string{"ENTITY TYPE", "PRIORITY", "COUNT"})
		for _, et := range ordered {
			name := string(et)
			if useColor(opts) && types.Priority(et) >= 90 {
				name = "\x1b[31m" + name + "\x1b[0m" // red
			}
			_ = table.Append([]string{name, strconv.Itoa(types.Priority(et)), strconv.Itoa(summary[et])})
		}
		_ = table.Render()
	}

	if opts.Duration > 0 || opts.FilesProcessed > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Detections: %d\n", total)
		if opts.Duration > 0 {
			fmt.Fprintf(w, "Run duration: %.2fs\n", opts.Duration.Seconds())
		}
		if opts.FilesProcessed > 0 {
			fmt.Fprintf(w, "Files processed: %d\n", opts.FilesProcessed)
		}
	}
}

// PrintFindings renders a compact per-finding listing for interactive use.
// Detected values are never printed; the pseudonym or action stands in.
func PrintFindings(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No sensitive data found ✅")
		return
	}
	fmt.Fprintf(w, "Findings: %d\n", len(findings))
	maxType := 8
	for _, f := range findings {
		if l := len(f.EntityType); l > maxType {
			maxType = l
		}
	}
	for _, f := range findings {
		action := string(f.RedactionAction)
		if useColor(opts) && f.RedactionAction == types.ActionRedact {
			action = "\x1b[31m" + action + "\x1b[0m"
		}
		placeholder := f.PseudonymValue
		if placeholder == "" {
			placeholder = "-"
		}
		fmt.Fprintf(w, "%-*s %3d  %s %s:%s  %s\n", maxType, f.EntityType,
			f.ConfidenceScore, action, f.FileID, f.PageOrLocation, placeholder)
	}
}
