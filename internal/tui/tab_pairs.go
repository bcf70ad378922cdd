package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quicdiff/internal/compare"
)

// pairsModel manages the pair overview tab.
type pairsModel struct {
	table       table.Model
	comparisons []compare.PairComparison
	width       int
	height      int
}

func newPairsModel() pairsModel {
	cols := []table.Column{
		{Title: "Pair", Width: 22},
		{Title: "Profile", Width: 12},
		{Title: "Load", Width: 8},
		{Title: "Throughput", Width: 11},
		{Title: "Improved", Width: 9},
		{Title: "Degraded", Width: 9},
		{Title: "Verdict", Width: 10},
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles())

	return pairsModel{table: t}
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(colorPurple)
	s.Selected = s.Selected.
		Foreground(colorFg).
		Background(colorRowSelect).
		Bold(true)
	return s
}

func (pm *pairsModel) setSize(w, h int) {
	pm.width = w
	pm.height = h
	th := h
	if th < 1 {
		th = 1
	}
	pm.table.SetHeight(th)

	if w > 100 {
		pm.table.SetColumns([]table.Column{
			{Title: "Pair", Width: w/4 - 4},
			{Title: "Profile", Width: 14},
			{Title: "Load", Width: 10},
			{Title: "Throughput", Width: 12},
			{Title: "Improved", Width: 10},
			{Title: "Degraded", Width: 10},
			{Title: "Verdict", Width: 12},
		})
	}
}

func (pm *pairsModel) setComparisons(comparisons []compare.PairComparison) {
	pm.comparisons = comparisons

	rows := make([]table.Row, len(comparisons))
	for i, pc := range comparisons {
		rows[i] = table.Row{
			pc.Pair.Key,
			pc.Pair.Profile,
			pc.Pair.Load,
			throughputChange(pc),
			fmt.Sprintf("%d", len(pc.Summary.Improvements)),
			fmt.Sprintf("%d", len(pc.Summary.Degradations)),
			string(pc.Summary.Verdict),
		}
	}
	pm.table.SetRows(rows)
	pm.table.GotoTop()
}

// throughputChange pulls the throughput delta for the overview column.
func throughputChange(pc compare.PairComparison) string {
	for _, r := range pc.Results {
		if r.Key == "throughput_mbps" {
			return formatPct(r.PercentChange)
		}
	}
	return "-"
}

func (pm *pairsModel) selectedComparison() *compare.PairComparison {
	idx := pm.table.Cursor()
	if idx >= 0 && idx < len(pm.comparisons) {
		return &pm.comparisons[idx]
	}
	return nil
}

func (pm *pairsModel) Update(msg tea.Msg, root *Model) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Enter) {
			if pc := pm.selectedComparison(); pc != nil {
				root.detailTab.setComparison(pc)
				root.activeTab = tabDetail
			}
			return nil
		}
	}

	var cmd tea.Cmd
	pm.table, cmd = pm.table.Update(msg)
	return cmd
}

func (pm *pairsModel) View(s spinner.Model, loading bool, loadErr error) string {
	if loading {
		return forceHeight(s.View()+" Loading results...", pm.width, pm.height)
	}
	if loadErr != nil {
		return forceHeight(errorStyle.Render("Load failed: ")+loadErr.Error(), pm.width, pm.height)
	}
	if len(pm.comparisons) == 0 {
		return forceHeight(dimStyle.Render("No pairs found. Press r to reload."), pm.width, pm.height)
	}
	return forceHeight(pm.table.View(), pm.width, pm.height)
}
