package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"quicdiff/internal/compare"
)

// detailModel manages the per-pair metric detail tab.
type detailModel struct {
	table      table.Model
	comparison *compare.PairComparison
	width      int
	height     int
}

func newDetailModel() detailModel {
	cols := []table.Column{
		{Title: "Metric", Width: 22},
		{Title: "Baseline", Width: 12},
		{Title: "Candidate", Width: 12},
		{Title: "Change", Width: 10},
		{Title: "Status", Width: 15},
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles())

	return detailModel{table: t}
}

func (dm *detailModel) setSize(w, h int) {
	dm.width = w
	dm.height = h
	dm.adjustTableHeight()

	if w > 100 {
		dm.table.SetColumns([]table.Column{
			{Title: "Metric", Width: w/3 - 4},
			{Title: "Baseline", Width: 14},
			{Title: "Candidate", Width: 14},
			{Title: "Change", Width: 12},
			{Title: "Status", Width: 15},
		})
	}
}

// adjustTableHeight subtracts the heading lines rendered above the table.
func (dm *detailModel) adjustTableHeight() {
	overhead := 0
	if dm.comparison != nil {
		overhead = 3
	}
	th := dm.height - overhead
	if th < 1 {
		th = 1
	}
	dm.table.SetHeight(th)
}

func (dm *detailModel) setComparison(pc *compare.PairComparison) {
	dm.comparison = pc

	rows := make([]table.Row, len(pc.Results))
	for i, r := range pc.Results {
		rows[i] = table.Row{
			r.MetricName,
			formatVal(r.BaselineValue),
			formatVal(r.CandidateValue),
			formatPct(r.PercentChange),
			statusCell(r.Classification),
		}
	}
	dm.table.SetRows(rows)
	dm.table.GotoTop()
	dm.adjustTableHeight()
}

func (dm *detailModel) Update(msg tea.Msg, root *Model) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Back) {
			root.activeTab = tabPairs
			return nil
		}
	}

	var cmd tea.Cmd
	dm.table, cmd = dm.table.Update(msg)
	return cmd
}

func (dm *detailModel) View() string {
	if dm.comparison == nil {
		return forceHeight(dimStyle.Render("Select a pair on the Pairs tab and press enter."), dm.width, dm.height)
	}

	var b strings.Builder
	pair := dm.comparison.Pair
	title := pair.Key
	if pair.Profile != "" && pair.Load != "" {
		title = pair.Profile + " / " + pair.Load
	}
	b.WriteString(titleStyle.Render("📡 " + title))
	b.WriteString("\n")

	s := dm.comparison.Summary
	b.WriteString(successStyle.Render(fmt.Sprintf("%d improved", len(s.Improvements))))
	b.WriteString(dimStyle.Render(" | "))
	b.WriteString(errorStyle.Render(fmt.Sprintf("%d degraded", len(s.Degradations))))
	b.WriteString(dimStyle.Render(" | "))
	b.WriteString(verdictStyle(s.Verdict).Render(string(s.Verdict)))
	b.WriteString("\n")

	b.WriteString(dm.table.View())
	return forceHeight(b.String(), dm.width, dm.height)
}

func formatVal(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatPct(pct float64) string {
	return fmt.Sprintf("%+.2f%%", pct)
}

func statusCell(c compare.Classification) string {
	switch c {
	case compare.Improvement:
		return "✅ improvement"
	case compare.Degradation:
		return "⚠ degradation"
	}
	return "· neutral"
}
