package veildoc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/veildoc/veildoc/internal/audit"
	"github.com/veildoc/veildoc/internal/batch"
	"github.com/veildoc/veildoc/internal/config"
	"github.com/veildoc/veildoc/internal/preset"
	"github.com/veildoc/veildoc/internal/report"
	"github.com/veildoc/veildoc/internal/types"
)

var (
	flagBatchPath      string
	flagBatchInclude   string
	flagBatchExclude   string
	flagBatchRecursive bool
	flagBatchMaxFiles  int
	flagBatchOut       string
)

func init() {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Anonymize a directory of files",
		Long:  "Batch discovers input files, runs one anonymization pass per file, and writes the rewritten files plus the findings table and run artifacts into a per-run directory.",
		RunE:  runBatch,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagBatchPath, "path", "p", ".", "directory to process")
	cmd.Flags().StringVar(&flagBatchInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagBatchExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().BoolVarP(&flagBatchRecursive, "recursive", "r", false, "descend into subdirectories")
	cmd.Flags().IntVar(&flagBatchMaxFiles, "max-files", 0, "stop after this many files (0 = unlimited)")
	cmd.Flags().StringVar(&flagBatchOut, "out", "", `base directory for run artifacts (default "veildoc_runs")`)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	started := time.Now()

	abs, _ := filepath.Abs(flagBatchPath)
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	p, err := resolvePreset(lcfg, gcfg)
	if err != nil {
		return err
	}

	inputs, skipped, err := batch.Discover(batch.Config{
		Root:         abs,
		IncludeGlobs: pickString(flagBatchInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs: pickString(flagBatchExclude, lcfg.Exclude, gcfg.Exclude),
		Recursive:    pickBool(flagBatchRecursive, lcfg.Recursive, gcfg.Recursive),
		MaxFiles:     pickInt(flagBatchMaxFiles, lcfg.MaxFiles, gcfg.MaxFiles),
	})
	if err != nil {
		return err
	}
	if len(inputs) == 0 && len(skipped) == 0 {
		return fmt.Errorf("no input files under %s", abs)
	}

	runID := report.NewRunID(started)
	outBase := pickString(flagBatchOut, lcfg.OutputDir, gcfg.OutputDir)
	if outBase == "" {
		outBase = "veildoc_runs"
	}
	runDir, err := report.CreateRunDir(outBase, runID)
	if err != nil {
		return err
	}

	if !flagJSON {
		fmt.Fprintf(cmd.ErrOrStderr(), "Processing %d files with preset %s...\n", len(inputs), p.PresetID)
	}

	runner := &batch.Runner{
		Preset:      p,
		Concurrency: pickInt(flagConcurrency, lcfg.Concurrency, gcfg.Concurrency),
		OutputDir:   runDir.Output,
	}
	results, err := runner.Process(cmd.Context(), inputs)
	if err != nil {
		return fmt.Errorf("batch error: %w", err)
	}

	findings, summary, hashes := batch.Merge(results)
	processed, failed := 0, 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", res.Err)
			continue
		}
		processed++
	}

	if err := writeRunArtifacts(runDir, runID, p, results, skipped, findings, summary, started); err != nil {
		return err
	}

	csvPath := filepath.Join(runDir.Root, "findings.csv")
	f, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	if err := report.WriteFindingsCSV(f, runID, findings, hashes); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	noAudit := pickBool(flagNoAudit, lcfg.NoAudit, gcfg.NoAudit)
	if !noAudit {
		log := audit.NewAuditLog(outBase)
		rec := audit.CreateRunRecord(runID, p.PresetID, findings, processed, len(skipped)+failed, time.Since(started))
		if err := log.LogRun(rec); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "audit warning:", err)
		}
	}

	if flagJSON {
		if findings == nil {
			findings = []types.Finding{} // no `null` in JSON
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(findings); err != nil {
			return err
		}
	} else {
		noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
		report.PrintSummary(cmd.OutOrStdout(), summary, report.PrintOptions{
			NoColor:        noColor,
			Duration:       time.Since(started),
			FilesProcessed: processed,
		})
		fmt.Fprintf(cmd.OutOrStdout(), "Run artifacts: %s\n", runDir.Root)
	}
	return nil
}

func writeRunArtifacts(runDir report.RunDir, runID string, p preset.Preset, results []batch.FileResult, skipped []batch.Skipped, findings []types.Finding, summary map[types.EntityType]int, started time.Time) error {
	if err := runDir.WritePresetUsed(p); err != nil {
		return err
	}
	if err := runDir.WriteModelInventory(nil); err != nil {
		return err
	}

	manifest := make([]report.ManifestEntry, 0, len(results)+len(skipped))
	processed, failed := 0, 0
	for _, res := range results {
		entry := report.ManifestEntry{
			FileID:           res.Input.FileID,
			OriginalFilename: res.Input.Name,
			FileHash:         res.Hash,
			SizeBytes:        res.Input.Size,
		}
		if res.Err != nil {
			entry.Skipped = true
			entry.SkipReason = res.Err.Error()
			failed++
		} else {
			processed++
		}
		manifest = append(manifest, entry)
	}
	for _, s := range skipped {
		manifest = append(manifest, report.ManifestEntry{
			OriginalFilename: s.Name,
			Skipped:          true,
			SkipReason:       s.Reason,
		})
	}
	if err := runDir.WriteInputManifest(manifest); err != nil {
		return err
	}

	actions := make(map[types.RedactionAction]int)
	for _, f := range findings {
		actions[f.RedactionAction]++
	}
	finished := time.Now()
	return runDir.WriteRunReport(report.RunReport{
		RunID:          runID,
		PresetID:       p.PresetID,
		StartedAt:      started.UTC(),
		FinishedAt:     finished.UTC(),
		Duration:       finished.Sub(started).String(),
		FilesProcessed: processed,
		FilesSkipped:   len(skipped) + failed,
		TotalFindings:  len(findings),
		EntityCounts:   summary,
		ActionCounts:   actions,
	})
}
