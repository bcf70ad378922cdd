package cli

import (
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics [key...]",
	Short: "Print the active metric descriptor table",
	Long: `Print the metric descriptors comparisons run with, either the built-in
table or the one loaded via --metrics. Pass keys to filter the listing.`,
	ValidArgsFunction: completeMetricKeys,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := appInstance.Table

		fmt.Printf("Threshold: ±%.1f%%\n\n", table.Threshold)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tKEY\tBETTER")
		fmt.Fprintln(w, "----\t---\t------")
		for _, d := range table.Metrics {
			if len(args) > 0 && !slices.Contains(args, d.Key) {
				continue
			}
			better := "lower"
			if d.HigherIsBetter {
				better = "higher"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name, d.Key, better)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
