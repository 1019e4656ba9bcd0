package veildoc

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/veildoc/veildoc/internal/preset"
)

func init() {
	cmd := &cobra.Command{
		Use:   "presets [id]",
		Short: "List built-in presets or show one as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, id := range preset.BuiltinIDs() {
					p, err := preset.Builtin(id)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%-10s layer %d  min-confidence %d  on-uncertainty %s\n",
						p.PresetID, p.Layer, p.MinimumConfidence, p.UncertaintyPolicy)
				}
				return nil
			}
			p, err := preset.Builtin(args[0])
			if err != nil {
				return err
			}
			b, err := yaml.Marshal(p)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	rootCmd.AddCommand(cmd)
}
