package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/veildoc/veildoc/internal/preset"
	"github.com/veildoc/veildoc/internal/types"
)

func TestWriteFindingsCSV(t *testing.T) {
	findings := []types.Finding{{
		FileID:              "FILE_00001",
		OriginalFilename:    "witness.txt",
		PageOrLocation:      "chars 10-26",
		EntityType:          types.Email,
		EntityPriority:      80,
		DetectedText:        "a@b.com",
		ContextSnippet:      "mail a@b.com now",
		DetectionSource:     "pattern:email_standard",
		ConfidenceScore:     95,
		ConfidenceThreshold: 80,
		RedactionAction:     types.ActionPseudonym,
		PseudonymValue:      "EMAIL_001",
		Language:            "en",
	}}
	hashes := map[string]string{"FILE_00001": "deadbeef"}

	var buf bytes.Buffer
	if err := WriteFindingsCSV(&buf, "RUN_20260101T000000Z", findings, hashes); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}
	if len(rows[0]) != len(types.FindingsCSVHeader) {
		t.Fatalf("header has %d columns, want %d", len(rows[0]), len(types.FindingsCSVHeader))
	}
	for i, col := range types.FindingsCSVHeader {
		if rows[0][i] != col {
			t.Fatalf("column %d = %q, want %q", i, rows[0][i], col)
		}
	}
	row := rows[1]
	if row[0] != "RUN_20260101T000000Z" || row[1] != "FILE_00001" || row[3] != "deadbeef" {
		t.Fatalf("row = %v", row)
	}
	if row[5] != "EMAIL" || row[14] != "pseudonymise" || row[15] != "EMAIL_001" {
		t.Fatalf("row = %v", row)
	}
}

func TestWriteFindingsCSVMissingHash(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFindingsCSV(&buf, "r", []types.Finding{{FileID: "FILE_00002"}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if rows[1][3] != "" {
		t.Fatalf("hash column = %q, want empty", rows[1][3])
	}
}

func TestNewRunID(t *testing.T) {
	at := time.Date(2026, 8, 24, 14, 35, 2, 0, time.UTC)
	if got := NewRunID(at); got != "RUN_20260824T143502Z" {
		t.Fatalf("NewRunID = %q", got)
	}
	// Non-UTC input normalizes to UTC.
	loc := time.FixedZone("CEST", 2*3600)
	if got := NewRunID(at.In(loc)); got != "RUN_20260824T143502Z" {
		t.Fatalf("NewRunID (zoned) = %q", got)
	}
}

func TestRunDirArtifacts(t *testing.T) {
	base := t.TempDir()
	d, err := CreateRunDir(base, "RUN_20260824T143502Z")
	if err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{d.Root, d.Output, d.Logs} {
		if st, err := os.Stat(dir); err != nil || !st.IsDir() {
			t.Fatalf("missing run directory %s: %v", dir, err)
		}
	}

	if err := d.WritePresetUsed(preset.Strict()); err != nil {
		t.Fatal(err)
	}
	if err := d.WriteModelInventory(nil); err != nil {
		t.Fatal(err)
	}
	if err := d.WriteInputManifest([]ManifestEntry{{
		FileID:           "FILE_00001",
		OriginalFilename: "witness.txt",
		FileHash:         "deadbeef",
		SizeBytes:        42,
	}}); err != nil {
		t.Fatal(err)
	}
	if err := d.WriteRunReport(RunReport{
		RunID:         "RUN_20260824T143502Z",
		PresetID:      "strict",
		TotalFindings: 3,
	}); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"preset_used.json", "model_inventory.json", "input_manifest.json", "run_report.json"} {
		b, err := os.ReadFile(filepath.Join(d.Root, name))
		if err != nil {
			t.Fatalf("artifact %s: %v", name, err)
		}
		if !json.Valid(b) {
			t.Fatalf("artifact %s is not valid JSON", name)
		}
	}

	// Empty inventory serializes as a list, not null.
	b, _ := os.ReadFile(filepath.Join(d.Root, "model_inventory.json"))
	if strings.TrimSpace(string(b)) != "[]" {
		t.Fatalf("empty inventory = %q", b)
	}

	var entries []ManifestEntry
	b, _ = os.ReadFile(filepath.Join(d.Root, "input_manifest.json"))
	if err := json.Unmarshal(b, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].OriginalFilename != "witness.txt" {
		t.Fatalf("manifest = %+v", entries)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, nil, PrintOptions{NoColor: true})
	if !strings.Contains(buf.String(), "No sensitive data found") {
		t.Fatalf("empty summary output = %q", buf.String())
	}

	buf.Reset()
	PrintSummary(&buf, map[types.EntityType]int{
		types.Email:      2,
		types.NationalID: 1,
	}, PrintOptions{NoColor: true, Duration: 2 * time.Second, FilesProcessed: 3})
	out := buf.String()
	if !strings.Contains(out, "EMAIL") || !strings.Contains(out, "NATIONAL_ID") {
		t.Fatalf("summary output = %q", out)
	}
	// Higher priority listed first.
	if strings.Index(out, "NATIONAL_ID") > strings.Index(out, "EMAIL") {
		t.Fatalf("priority order wrong: %q", out)
	}
	if !strings.Contains(out, "Detections: 3") || !strings.Contains(out, "Files processed: 3") {
		t.Fatalf("footer missing: %q", out)
	}
}

func TestPrintFindingsHidesValues(t *testing.T) {
	var buf bytes.Buffer
	PrintFindings(&buf, []types.Finding{{
		FileID:          "FILE_00001",
		EntityType:      types.Email,
		DetectedText:    "secret@example.com",
		ConfidenceScore: 95,
		RedactionAction: types.ActionPseudonym,
		PseudonymValue:  "EMAIL_001",
		PageOrLocation:  "chars 0-18",
	}}, PrintOptions{NoColor: true})
	out := buf.String()
	if strings.Contains(out, "secret@example.com") {
		t.Fatalf("detected value leaked to console: %q", out)
	}
	if !strings.Contains(out, "EMAIL_001") {
		t.Fatalf("pseudonym missing: %q", out)
	}
}
