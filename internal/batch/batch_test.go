package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/veildoc/veildoc/internal/preset"
	"github.com/veildoc/veildoc/internal/types"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestDiscoverAssignsIDsInLexicalOrder(t *testing.T) {
	root := writeTree(t, map[string]string{
		"b.txt": "b",
		"a.txt": "a",
		"c.md":  "c",
	})
	inputs, skipped, err := Discover(Config{Root: root})
	if err != nil {
		t.Fatal(err)
	}
	if len(skipped) != 0 {
		t.Fatalf("skipped = %+v", skipped)
	}
	var names []string
	for _, in := range inputs {
		names = append(names, in.Name)
	}
	if strings.Join(names, ",") != "a.txt,b.txt,c.md" {
		t.Fatalf("order = %v", names)
	}
	if inputs[0].FileID != "FILE_00001" || inputs[2].FileID != "FILE_00003" {
		t.Fatalf("ids = %+v", inputs)
	}
}

func TestDiscoverRecursion(t *testing.T) {
	root := writeTree(t, map[string]string{
		"top.txt":        "x",
		"sub/inner.txt":  "y",
		".hidden/no.txt": "z",
	})

	inputs, _, err := Discover(Config{Root: root})
	if err != nil {
		t.Fatal(err)
	}
	if len(inputs) != 1 || inputs[0].Name != "top.txt" {
		t.Fatalf("non-recursive inputs = %+v", inputs)
	}

	inputs, _, err = Discover(Config{Root: root, Recursive: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(inputs) != 2 {
		t.Fatalf("recursive inputs = %+v", inputs)
	}
	// Hidden directories stay out even when recursing.
	for _, in := range inputs {
		if in.Name == "no.txt" {
			t.Fatal("hidden directory was walked")
		}
	}
}

func TestDiscoverUnsupportedTypes(t *testing.T) {
	root := writeTree(t, map[string]string{
		"doc.txt":   "x",
		"image.png": "x",
	})
	inputs, skipped, err := Discover(Config{Root: root})
	if err != nil {
		t.Fatal(err)
	}
	if len(inputs) != 1 || inputs[0].Name != "doc.txt" {
		t.Fatalf("inputs = %+v", inputs)
	}
	if len(skipped) != 1 || skipped[0].Name != "image.png" || skipped[0].Reason != "unsupported file type" {
		t.Fatalf("skipped = %+v", skipped)
	}
}

func TestDiscoverGlobs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"keep.txt":      "x",
		"drop.txt":      "x",
		"notes/memo.md": "x",
	})
	inputs, _, err := Discover(Config{
		Root:         root,
		Recursive:    true,
		IncludeGlobs: "*.txt,**/*.md",
		ExcludeGlobs: "drop.txt",
	})
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, in := range inputs {
		names = append(names, in.Name)
	}
	if strings.Join(names, ",") != "keep.txt,memo.md" {
		t.Fatalf("inputs = %v", names)
	}
}

func TestDiscoverMaxFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.txt": "x", "b.txt": "x", "c.txt": "x",
	})
	inputs, _, err := Discover(Config{Root: root, MaxFiles: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(inputs) != 2 {
		t.Fatalf("inputs = %+v", inputs)
	}
}

func TestProcessEndToEnd(t *testing.T) {
	root := writeTree(t, map[string]string{
		"one.txt": "mail first@example.com now",
		"two.txt": "mail second@example.com now",
	})
	outDir := t.TempDir()

	inputs, _, err := Discover(Config{Root: root})
	if err != nil {
		t.Fatal(err)
	}
	runner := &Runner{Preset: preset.Fast(), OutputDir: outDir, Concurrency: 2}
	results, err := runner.Process(context.Background(), inputs)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %+v", results)
	}

	for _, res := range results {
		if res.Err != nil {
			t.Fatalf("%s: %v", res.Input.Name, res.Err)
		}
		if len(res.Findings) != 1 {
			t.Fatalf("%s findings = %+v", res.Input.Name, res.Findings)
		}
		f := res.Findings[0]
		if f.FileID != res.Input.FileID || f.OriginalFilename != res.Input.Name {
			t.Fatalf("file identity not attached: %+v", f)
		}
		if strings.Contains(f.OriginalFilename, string(os.PathSeparator)) {
			t.Fatalf("filename contains a path: %q", f.OriginalFilename)
		}
		// Fresh pseudonym state per file.
		if f.PseudonymValue != "EMAIL_001" {
			t.Fatalf("pseudonym = %q", f.PseudonymValue)
		}

		out, err := os.ReadFile(filepath.Join(outDir, res.OutputName))
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(string(out), "@example.com") {
			t.Fatalf("redacted output leaks value: %q", out)
		}
	}

	findings, summary, hashes := Merge(results)
	if len(findings) != 2 || summary[types.Email] != 2 {
		t.Fatalf("merge: %d findings, summary %v", len(findings), summary)
	}
	if len(hashes) != 2 || hashes["FILE_00001"] == "" || len(hashes["FILE_00001"]) != 16 {
		t.Fatalf("hashes = %v", hashes)
	}
	// Distinct contents, distinct hashes.
	if hashes["FILE_00001"] == hashes["FILE_00002"] {
		t.Fatal("different files share a hash")
	}
}

func TestProcessRecordsPerFileErrors(t *testing.T) {
	inputs := []Input{{FileID: "FILE_00001", Path: "/nonexistent/x.txt", Name: "x.txt"}}
	runner := &Runner{Preset: preset.Fast()}
	results, err := runner.Process(context.Background(), inputs)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Err == nil {
		t.Fatal("missing file should record an error")
	}
}

func TestProcessErrorCarriesNoPath(t *testing.T) {
	dir := t.TempDir()
	// A directory masquerading as an input makes os.ReadFile fail with a
	// *fs.PathError that embeds the absolute path.
	bad := filepath.Join(dir, "client.txt")
	if err := os.Mkdir(bad, 0o755); err != nil {
		t.Fatal(err)
	}
	runner := &Runner{Preset: preset.Fast()}
	results, err := runner.Process(context.Background(),
		[]Input{{FileID: "FILE_00001", Path: bad, Name: "client.txt"}})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Err == nil {
		t.Fatal("unreadable input should record an error")
	}
	msg := results[0].Err.Error()
	if strings.Contains(msg, dir) {
		t.Fatalf("error leaks the filesystem path: %q", msg)
	}
	if !strings.Contains(msg, "client.txt") {
		t.Fatalf("error lost the basename: %q", msg)
	}
}

func TestOutputName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"doc.txt", "doc_redacted.txt"},
		{"notes.md", "notes_redacted.md"},
		{"README", "README_redacted"},
	}
	for _, c := range cases {
		if got := outputName(c.in); got != c.want {
			t.Errorf("outputName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestContentHash(t *testing.T) {
	if got := contentHash(nil); got != "0000000000000000" {
		t.Fatalf("empty hash = %q", got)
	}
	a := contentHash([]byte("a"))
	if len(a) != 16 || a == contentHash([]byte("b")) {
		t.Fatalf("hash = %q", a)
	}
	if a != contentHash([]byte("a")) {
		t.Fatal("hash not deterministic")
	}
}
