package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/veildoc/veildoc/internal/preset"
	"github.com/veildoc/veildoc/internal/types"
)

// NewRunID derives a run identifier from a UTC timestamp, e.g.
// RUN_20260824T143502Z. Runs started within the same second share an ID;
// callers that need stronger uniqueness add their own suffix.
func NewRunID(now time.Time) string {
	return "RUN_" + now.UTC().Format("20060102T150405Z")
}

// RunDir is the on-disk layout of one run's artifacts.
type RunDir struct {
	Root   string
	Output string
	Logs   string
}

// CreateRunDir creates base/runID with its output/ and logs/ subdirectories.
func CreateRunDir(base, runID string) (RunDir, error) {
	d := RunDir{
		Root:   filepath.Join(base, runID),
		Output: filepath.Join(base, runID, "output"),
		Logs:   filepath.Join(base, runID, "logs"),
	}
	for _, dir := range []string{d.Root, d.Output, d.Logs} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return RunDir{}, fmt.Errorf("create run dir: %w", err)
		}
	}
	return d, nil
}

// ModelInfo is one entry in the run's model inventory.
type ModelInfo struct {
	Name    string `json:"name"`
	ModelID string `json:"model_id"`
}

// ManifestEntry records one input file. OriginalFilename is always a
// basename; artifacts never contain caller paths.
type ManifestEntry struct {
	FileID           string `json:"file_id"`
	OriginalFilename string `json:"original_filename"`
	FileHash         string `json:"file_hash"`
	SizeBytes        int64  `json:"size_bytes"`
	Skipped          bool   `json:"skipped,omitempty"`
	SkipReason       string `json:"skip_reason,omitempty"`
}

// RunReport is the machine-readable summary artifact of one run.
type RunReport struct {
	RunID          string                        `json:"run_id"`
	PresetID       string                        `json:"preset_id"`
	StartedAt      time.Time                     `json:"started_at"`
	FinishedAt     time.Time                     `json:"finished_at"`
	Duration       string                        `json:"duration"`
	FilesProcessed int                           `json:"files_processed"`
	FilesSkipped   int                           `json:"files_skipped"`
	TotalFindings  int                           `json:"total_findings"`
	EntityCounts   map[types.EntityType]int      `json:"entity_counts"`
	ActionCounts   map[types.RedactionAction]int `json:"action_counts"`
}

func (d RunDir) writeJSON(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(d.Root, name)
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// WritePresetUsed records the exact configuration the run executed with.
func (d RunDir) WritePresetUsed(p preset.Preset) error {
	return d.writeJSON("preset_used.json", p)
}

// WriteModelInventory records the recognizers that participated in the run.
func (d RunDir) WriteModelInventory(inv []ModelInfo) error {
	if inv == nil {
		inv = []ModelInfo{}
	}
	return d.writeJSON("model_inventory.json", inv)
}

// WriteRunReport writes the run summary.
func (d RunDir) WriteRunReport(r RunReport) error {
	return d.writeJSON("run_report.json", r)
}

// WriteInputManifest records the inputs, including skipped files.
func (d RunDir) WriteInputManifest(entries []ManifestEntry) error {
	if entries == nil {
		entries = []ManifestEntry{}
	}
	return d.writeJSON("input_manifest.json", entries)
}
