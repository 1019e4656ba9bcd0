// Package batch discovers input files and fans anonymization runs out over
// them. Discovery is deterministic: files are visited in lexical order and
// file IDs are assigned in that order, so reruns over an unchanged tree
// produce identical manifests.
package batch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Input is one discovered file. Path stays internal to the process;
// artifacts and findings only ever carry Name.
type Input struct {
	FileID string
	Path   string
	Name   string
	Size   int64
}

// Skipped records a file that matched discovery but cannot be processed.
type Skipped struct {
	Name   string
	Reason string
}

type Config struct {
	Root         string
	IncludeGlobs string // comma-separated, positive filter when non-empty
	ExcludeGlobs string // comma-separated, subtracted last
	Recursive    bool
	MaxFiles     int // 0 means unlimited
}

var supportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".text": true,
}

// Discover walks cfg.Root and returns processable inputs plus skip records
// for files that passed the glob filter but have an unsupported type.
func Discover(cfg Config) ([]Input, []Skipped, error) {
	var inputs []Input
	var skipped []Skipped
	full := false

	err := filepath.WalkDir(cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == cfg.Root {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") || !cfg.Recursive {
				return fs.SkipDir
			}
			return nil
		}
		if full || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		rel, err := filepath.Rel(cfg.Root, path)
		if err != nil {
			return err
		}
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if !supportedExtensions[strings.ToLower(filepath.Ext(path))] {
			skipped = append(skipped, Skipped{Name: d.Name(), Reason: "unsupported file type"})
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		inputs = append(inputs, Input{
			Path: path,
			Name: d.Name(),
			Size: info.Size(),
		})
		if cfg.MaxFiles > 0 && len(inputs) >= cfg.MaxFiles {
			full = true
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("discover inputs: %w", err)
	}

	for i := range inputs {
		inputs[i].FileID = fmt.Sprintf("FILE_%05d", i+1)
	}
	return inputs, skipped, nil
}

// allowedByGlobs applies the include filter first, then the excludes, with
// forward-slash semantics. Each glob is tried against the relative path and
// against the basename.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}
