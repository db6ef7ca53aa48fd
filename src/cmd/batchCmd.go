package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/simivar/dpf-sprite-browser/src/app"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch <manifest.json>",
	Short: "Renders every job of a JSON manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir := app.ExpandPath(stringSetting("output", OutputPath))
		log.Info().
			Str("manifest", args[0]).
			Str("output", outputDir).
			Msg("DPF batch running")

		summary, err := app.RunBatch(app.ExpandPath(args[0]), outputDir)
		if err != nil {
			return err
		}
		if summary.Failed > 0 {
			return fmt.Errorf("%d of %d batch jobs failed", summary.Failed, summary.Failed+summary.Rendered)
		}

		log.Info().Msg("DPF batch finished")
		return nil
	},
}
