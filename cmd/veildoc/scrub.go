package veildoc

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/veildoc/veildoc/internal/config"
	"github.com/veildoc/veildoc/internal/engine"
	"github.com/veildoc/veildoc/internal/report"
	"github.com/veildoc/veildoc/internal/types"
)

var (
	flagScrubOutput   string
	flagScrubFindings bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scrub [file]",
		Short: "Anonymize a single file or stdin",
		Long:  "Scrub runs one anonymization pass over a file (or stdin when no file is given) and writes the rewritten text to stdout or --output.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScrub,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagScrubOutput, "output", "o", "", "write rewritten text to this file instead of stdout")
	cmd.Flags().BoolVar(&flagScrubFindings, "findings", false, "print the findings listing to stderr")
}

func runScrub(cmd *cobra.Command, args []string) error {
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal("."); err == nil {
		lcfg = c
	}

	p, err := resolvePreset(lcfg, gcfg)
	if err != nil {
		return err
	}

	var text []byte
	name := "stdin"
	if len(args) == 1 {
		text, err = os.ReadFile(args[0])
		if err != nil {
			return err
		}
		name = filepath.Base(args[0])
	} else {
		text, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	res, err := engine.Analyze(cmd.Context(), string(text), p, engine.Options{
		Language: pickString(flagLanguage, lcfg.Language, gcfg.Language),
	})
	if err != nil {
		return fmt.Errorf("scrub error: %w", err)
	}
	for i := range res.Findings {
		res.Findings[i].OriginalFilename = name
	}

	if flagScrubOutput != "" {
		if err := os.WriteFile(flagScrubOutput, []byte(res.RedactedText), 0o644); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), res.RedactedText)
	}

	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	switch {
	case flagJSON:
		findings := res.Findings
		if findings == nil {
			findings = []types.Finding{} // no `null` in JSON
		}
		enc := json.NewEncoder(cmd.ErrOrStderr())
		enc.SetIndent("", "  ")
		if err := enc.Encode(findings); err != nil {
			return err
		}
	case flagScrubFindings:
		report.PrintFindings(cmd.ErrOrStderr(), res.Findings, report.PrintOptions{NoColor: noColor})
	}
	return nil
}
