package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"quicdiff/internal/app"
)

// ensureApp lazily initializes appInstance for shell completion.
// Cobra may invoke ValidArgsFunction without running PersistentPreRunE.
func ensureApp() error {
	if appInstance != nil {
		return nil
	}
	var err error
	appInstance, err = app.New(app.Options{})
	return err
}

// completeMetricKeys provides shell completion for canonical metric keys.
func completeMetricKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if err := ensureApp(); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var completions []string
	for _, d := range appInstance.Table.Metrics {
		if slices.Contains(args, d.Key) {
			continue
		}
		if strings.HasPrefix(d.Key, strings.ToLower(toComplete)) {
			completions = append(completions, d.Key)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
