package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"quicdiff/internal/compare"
)

// loadComparisons loads both result directories, pairs their stems, and
// compares every pair.
func loadComparisons(deps Deps) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		baseColl, baseReport, err := deps.Loader.LoadDir(ctx, deps.BaselineDir, nil)
		if err != nil {
			return comparisonsLoadedMsg{err: err}
		}
		candColl, candReport, err := deps.Loader.LoadDir(ctx, deps.CandidateDir, nil)
		if err != nil {
			return comparisonsLoadedMsg{err: err}
		}

		set := compare.BuildPairs(baseColl.Extract(), candColl.Extract(), deps.Opts)
		comparisons := deps.Comparator.CompareSet(set)

		return comparisonsLoadedMsg{
			comparisons:   comparisons,
			baselineOnly:  set.BaselineOnly,
			candidateOnly: set.CandidateOnly,
			loadFailures:  baseReport.Failed + candReport.Failed,
		}
	}
}

// clearNotification returns a command that fires after a delay.
func clearNotification(d time.Duration, version int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearNotificationMsg{version: version}
	})
}
