package veildoc

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veildoc/veildoc/internal/patterns"
)

func init() {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List available detection patterns",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range patterns.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d patterns\n", patterns.Count())
		},
	}
	rootCmd.AddCommand(cmd)
}
