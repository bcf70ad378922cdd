package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"quicdiff/internal/compare"
	"quicdiff/internal/result"
	"quicdiff/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui <baseline-dir> <candidate-dir>",
	Short: "Browse a batch comparison interactively",
	Long: `Launch the full-screen terminal UI over a directory pair: a pair
overview table plus a per-pair metric detail view. Press r to reload.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := tableFromFlags(cmd)
		if err != nil {
			return err
		}
		workers, _ := cmd.Flags().GetInt64("workers")
		basePrefix, _ := cmd.Flags().GetString("baseline-prefix")
		candPrefix, _ := cmd.Flags().GetString("candidate-prefix")
		profiles, _ := cmd.Flags().GetStringSlice("profiles")
		loads, _ := cmd.Flags().GetStringSlice("loads")

		deps := tui.Deps{
			Loader:       result.NewLoader(result.LoaderConfig{Workers: workers}, appInstance.Logger),
			Comparator:   compare.NewComparator(table),
			BaselineDir:  args[0],
			CandidateDir: args[1],
			Opts: compare.PairOptions{
				BaselinePrefix:  basePrefix,
				CandidatePrefix: candPrefix,
				Profiles:        profiles,
				Loads:           loads,
			},
		}

		p := tui.NewProgram(deps)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	},
}

func init() {
	tuiCmd.Flags().Int64P("workers", "w", 8, "number of concurrent file loaders")
	tuiCmd.Flags().String("baseline-prefix", "baseline_bbrv2", "file stem prefix on the baseline side")
	tuiCmd.Flags().String("candidate-prefix", "baseline_bbrv3", "file stem prefix on the candidate side")
	tuiCmd.Flags().StringSlice("profiles", nil, "restrict pairing to these network profiles")
	tuiCmd.Flags().StringSlice("loads", nil, "restrict pairing to these load levels")
	tuiCmd.Flags().Float64P("threshold", "t", 0, "classification threshold in percent (default from metric table)")

	rootCmd.AddCommand(tuiCmd)
}
