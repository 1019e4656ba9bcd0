package veildoc

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veildoc/veildoc/internal/audit"
)

var flagHistoryDir string

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past anonymization runs from the audit log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := audit.NewAuditLog(flagHistoryDir)
			records, err := log.LoadHistory()
			if err != nil {
				return fmt.Errorf("no run history: %w", err)
			}
			if flagJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  preset=%s  files=%d  findings=%d  %s\n",
					r.Timestamp.Format("2006-01-02 15:04:05"), r.RunID, r.PresetID,
					r.FilesProcessed, r.TotalFindings, r.Duration)
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagHistoryDir, "dir", "veildoc_runs", "directory holding the audit log")
}
