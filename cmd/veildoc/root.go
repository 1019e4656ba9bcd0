package veildoc

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagPreset      string
	flagPresetFile  string
	flagNoColor     bool
	flagJSON        bool
	flagLanguage    string
	flagConcurrency int
	flagNoAudit     bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the veildoc CLI.
var rootCmd = &cobra.Command{
	Use:           "veildoc",
	Short:         "Detect and redact sensitive data in documents",
	Long:          "Veildoc detects personal and sensitive data in text documents and rewrites it according to a redaction preset, with a full audit trail per run.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the veildoc CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "built-in preset: fast|balanced|strict (default balanced)")
	rootCmd.PersistentFlags().StringVar(&flagPresetFile, "preset-file", "", "load preset from a YAML file (overrides --preset)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit findings as JSON")
	rootCmd.PersistentFlags().StringVar(&flagLanguage, "language", "", "override document language (e.g. en, nl)")
	rootCmd.PersistentFlags().IntVar(&flagConcurrency, "concurrency", 0, "batch worker count (0 = default)")
	rootCmd.PersistentFlags().BoolVar(&flagNoAudit, "no-audit", false, "do not append to the audit log")
}
