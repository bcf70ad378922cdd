package tui

import "quicdiff/internal/compare"

// Data loading messages.

type comparisonsLoadedMsg struct {
	comparisons   []compare.PairComparison
	baselineOnly  []string
	candidateOnly []string
	loadFailures  int
	err           error
}

// Notification message.

type clearNotificationMsg struct {
	version int
}
