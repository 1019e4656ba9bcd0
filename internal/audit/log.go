// Package audit keeps an append-only JSONL history of anonymization runs.
// Records carry counts and file identifiers only; detected values never
// reach the log.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/veildoc/veildoc/internal/types"
)

// RunRecord is one line of the audit log.
type RunRecord struct {
	Timestamp      time.Time        `json:"timestamp"`
	RunID          string           `json:"run_id"`
	PresetID       string           `json:"preset_id"`
	FilesProcessed int              `json:"files_processed"`
	FilesSkipped   int              `json:"files_skipped"`
	TotalFindings  int              `json:"total_findings"`
	EntityCounts   map[string]int   `json:"entity_counts"`
	ActionCounts   map[string]int   `json:"action_counts"`
	Duration       string           `json:"duration"`
	TopFindings    []FindingSummary `json:"top_findings,omitempty"`
}

// FindingSummary identifies a finding without reproducing its value.
type FindingSummary struct {
	FileID     string `json:"file_id"`
	EntityType string `json:"entity_type"`
	Action     string `json:"action"`
	Confidence int    `json:"confidence"`
}

type AuditLog struct {
	logPath string
}

// NewAuditLog returns a log rooted in dir, stored as .veildoc_audit.jsonl.
func NewAuditLog(dir string) *AuditLog {
	return &AuditLog{logPath: filepath.Join(dir, ".veildoc_audit.jsonl")}
}

// LoadHistory returns all records, newest first. Malformed lines are skipped.
func (a *AuditLog) LoadHistory() ([]RunRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	var records []RunRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		var record RunRecord
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read audit log: %w", err)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// LogRun appends one record. The log holds finding metadata, so it is
// created owner-only.
func (a *AuditLog) LogRun(record RunRecord) error {
	if record.RunID == "" {
		record.RunID = fmt.Sprintf("run_%d", time.Now().Unix())
	}

	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(record); err != nil {
		return fmt.Errorf("write audit record: %w", err)
	}
	return nil
}

// CreateRunRecord summarizes a finished run for the log. At most ten
// findings are sampled into TopFindings, by slice order.
func CreateRunRecord(runID, presetID string, findings []types.Finding, filesProcessed, filesSkipped int, duration time.Duration) RunRecord {
	entityCounts := make(map[string]int)
	actionCounts := make(map[string]int)
	for _, f := range findings {
		entityCounts[string(f.EntityType)]++
		actionCounts[string(f.RedactionAction)]++
	}

	top := make([]FindingSummary, 0, 10)
	for i, f := range findings {
		if i >= 10 {
			break
		}
		top = append(top, FindingSummary{
			FileID:     f.FileID,
			EntityType: string(f.EntityType),
			Action:     string(f.RedactionAction),
			Confidence: f.ConfidenceScore,
		})
	}

	return RunRecord{
		Timestamp:      time.Now(),
		RunID:          runID,
		PresetID:       presetID,
		FilesProcessed: filesProcessed,
		FilesSkipped:   filesSkipped,
		TotalFindings:  len(findings),
		EntityCounts:   entityCounts,
		ActionCounts:   actionCounts,
		Duration:       duration.String(),
		TopFindings:    top,
	}
}
