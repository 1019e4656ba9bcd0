package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/veildoc/veildoc/internal/engine"
	"github.com/veildoc/veildoc/internal/preset"
	"github.com/veildoc/veildoc/internal/recognizer"
	"github.com/veildoc/veildoc/internal/types"
)

// FileResult is the outcome of one file's run. A failed file carries Err and
// empty findings; the batch keeps going.
type FileResult struct {
	Input      Input
	Hash       string
	OutputName string
	Findings   []types.Finding
	Summary    map[types.EntityType]int
	Err        error
}

// Runner processes discovered inputs concurrently. Each file gets its own
// Analyze call, so pseudonym assignments never correlate across files.
type Runner struct {
	Preset      preset.Preset
	Recognizers *recognizer.Registry
	Concurrency int
	// OutputDir receives the rewritten files; empty disables writing.
	OutputDir string
}

// Process runs every input and returns results in input order. Per-file
// failures are recorded in the result; the returned error is reserved for
// context cancellation.
func (r *Runner) Process(ctx context.Context, inputs []Input) ([]FileResult, error) {
	results := make([]FileResult, len(inputs))

	limit := r.Concurrency
	if limit <= 0 {
		limit = 4
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = r.processOne(ctx, in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (r *Runner) processOne(ctx context.Context, in Input) FileResult {
	res := FileResult{Input: in, OutputName: outputName(in.Name)}

	b, err := os.ReadFile(in.Path)
	if err != nil {
		res.Err = fmt.Errorf("read %s: %w", in.Name, stripPath(err))
		return res
	}
	res.Hash = contentHash(b)

	out, err := engine.Analyze(ctx, string(b), r.Preset, engine.Options{Recognizers: r.Recognizers})
	if err != nil {
		res.Err = fmt.Errorf("analyze %s: %w", in.Name, err)
		return res
	}

	for j := range out.Findings {
		out.Findings[j].FileID = in.FileID
		out.Findings[j].OriginalFilename = in.Name
	}
	res.Findings = out.Findings
	res.Summary = out.Summary

	if r.OutputDir != "" {
		dest := filepath.Join(r.OutputDir, res.OutputName)
		if err := os.WriteFile(dest, []byte(out.RedactedText), 0o644); err != nil {
			res.Err = fmt.Errorf("write %s: %w", res.OutputName, stripPath(err))
		}
	}
	return res
}

// Merge flattens per-file results into the run-level findings list, entity
// summary, and file-hash table. This is the single place batch output is
// combined, after all workers have finished.
func Merge(results []FileResult) ([]types.Finding, map[types.EntityType]int, map[string]string) {
	var findings []types.Finding
	summary := make(map[types.EntityType]int)
	hashes := make(map[string]string)
	for _, res := range results {
		findings = append(findings, res.Findings...)
		for et, n := range res.Summary {
			summary[et] += n
		}
		if res.Hash != "" {
			hashes[res.Input.FileID] = res.Hash
		}
	}
	return findings, summary, hashes
}

// stripPath reduces an I/O error to its cause. The error string ends up in
// the input manifest, an audit artifact that carries basenames only, so the
// full path a *fs.PathError embeds must not survive.
func stripPath(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

// outputName derives the rewritten file's name: witness.txt becomes
// witness_redacted.txt.
func outputName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "_redacted" + ext
}

// contentHash renders the xxhash of the content as 16 hex digits. Empty
// files hash to all zeros.
func contentHash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
