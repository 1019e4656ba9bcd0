package audit

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/veildoc/veildoc/internal/types"
)

func TestLogRunAndLoadHistory(t *testing.T) {
	dir := t.TempDir()
	log := NewAuditLog(dir)

	first := CreateRunRecord("RUN_A", "fast", nil, 1, 0, time.Second)
	second := CreateRunRecord("RUN_B", "strict", []types.Finding{{
		FileID:          "FILE_00001",
		EntityType:      types.Email,
		RedactionAction: types.ActionRedact,
		ConfidenceScore: 95,
	}}, 2, 1, 2*time.Second)

	if err := log.LogRun(first); err != nil {
		t.Fatal(err)
	}
	if err := log.LogRun(second); err != nil {
		t.Fatal(err)
	}

	records, err := log.LoadHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Newest first.
	if records[0].RunID != "RUN_B" || records[1].RunID != "RUN_A" {
		t.Fatalf("order = %q, %q", records[0].RunID, records[1].RunID)
	}
	if records[0].TotalFindings != 1 || records[0].EntityCounts["EMAIL"] != 1 {
		t.Fatalf("record = %+v", records[0])
	}
	if records[0].ActionCounts["redact"] != 1 {
		t.Fatalf("action counts = %v", records[0].ActionCounts)
	}
}

func TestLogNeverContainsDetectedText(t *testing.T) {
	dir := t.TempDir()
	log := NewAuditLog(dir)
	rec := CreateRunRecord("RUN_C", "fast", []types.Finding{{
		FileID:       "FILE_00001",
		EntityType:   types.Email,
		DetectedText: "secret@example.com",
	}}, 1, 0, time.Second)
	if err := log.LogRun(rec); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(log.logPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "secret@example.com") {
		t.Fatal("detected value written to audit log")
	}
}

func TestLoadHistorySkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	log := NewAuditLog(dir)
	if err := log.LogRun(CreateRunRecord("RUN_D", "fast", nil, 1, 0, time.Second)); err != nil {
		t.Fatal(err)
	}
	f, err := os.OpenFile(log.logPath, os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("{not json\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()
	if err := log.LogRun(CreateRunRecord("RUN_E", "fast", nil, 1, 0, time.Second)); err != nil {
		t.Fatal(err)
	}

	records, err := log.LoadHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
}

func TestLoadHistoryMissingFile(t *testing.T) {
	log := NewAuditLog(t.TempDir())
	if _, err := log.LoadHistory(); err == nil {
		t.Fatal("missing log should error")
	}
}
