package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/simivar/dpf-sprite-browser/src/app"
	"github.com/simivar/dpf-sprite-browser/src/dump"
	"github.com/spf13/cobra"
)

var analyzeFlags struct {
	inspect   bool
	candidate int
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeFlags.inspect, "inspect", false, "print a diagnostic report for the selected candidate")
	analyzeCmd.Flags().IntVarP(&analyzeFlags.candidate, "candidate", "n", 0, "candidate to inspect")
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <dump>",
	Short: "Lists the plausible interpretations of a sprite dump",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info().Str("dump", args[0]).Msg("DPF analyze running")

		words, err := app.ReadWords(app.ExpandPath(args[0]))
		if err != nil {
			return err
		}
		printAnalysis(cmd.OutOrStdout(), dump.NewSession(args[0], words), analyzeFlags.inspect, analyzeFlags.candidate)

		log.Info().Msg("DPF analyze finished")
		return nil
	},
}

func printAnalysis(w io.Writer, s dump.Session, inspect bool, candidate int) {
	report := s.Analyze()
	fmt.Fprintf(w, "%s: %s\n", s.Name, report.Summary())
	for _, line := range report.Lines() {
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w, "--- Candidates ---")
	for i, c := range s.Candidates {
		fmt.Fprintln(w, c.Label(i))
	}

	if !inspect {
		return
	}
	c, i := s.Candidate(candidate)
	fmt.Fprintf(w, "--- Candidate %d ---\n", i)
	for _, line := range dump.InspectCandidate(c).Lines() {
		fmt.Fprintln(w, line)
	}
}
