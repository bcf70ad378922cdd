package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quicdiff/internal/compare"
	"quicdiff/internal/result"
)

// Tab indices.
const (
	tabPairs  = 0
	tabDetail = 1
	tabCount  = 2
)

// Model is the root BubbleTea model.
type Model struct {
	// Dependencies.
	deps Deps

	// Dimensions.
	width  int
	height int

	// Navigation.
	activeTab int
	showHelp  bool

	// Load state.
	loading bool
	loadErr error

	// Tab models.
	pairsTab  pairsModel
	detailTab detailModel

	// Notification.
	notification    string
	notificationErr bool
	notifVersion    int

	// Spinner for async loads.
	spinner spinner.Model
}

// Deps holds all dependencies injected into the TUI.
type Deps struct {
	Loader       *result.Loader
	Comparator   *compare.Comparator
	BaselineDir  string
	CandidateDir string
	Opts         compare.PairOptions
}

// NewModel creates a new root Model.
func NewModel(deps Deps) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return &Model{
		deps:      deps,
		activeTab: tabPairs,
		loading:   true,
		spinner:   s,
		pairsTab:  newPairsModel(),
		detailTab: newDetailModel(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(loadComparisons(m.deps), m.spinner.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	prevNotifVersion := m.notifVersion

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		ch := m.contentHeight()
		m.pairsTab.setSize(msg.Width, ch)
		m.detailTab.setSize(msg.Width, ch)
		return m, nil

	case tea.KeyMsg:
		if cmd := m.handleGlobalKey(msg); cmd != nil {
			return m, cmd
		}

	// Data loading.
	case comparisonsLoadedMsg:
		m.loading = false
		m.loadErr = msg.err
		if msg.err != nil {
			m.setNotification(fmt.Sprintf("Load failed: %v", msg.err), true)
		} else {
			m.pairsTab.setComparisons(msg.comparisons)
			skipped := len(msg.baselineOnly) + len(msg.candidateOnly)
			if msg.loadFailures > 0 || skipped > 0 {
				m.setNotification(fmt.Sprintf("%d pairs, %d skipped, %d files failed",
					len(msg.comparisons), skipped, msg.loadFailures), msg.loadFailures > 0)
			}
		}

	// Notification.
	case clearNotificationMsg:
		if msg.version == m.notifVersion {
			m.notification = ""
			m.notificationErr = false
		}
	}

	// Spinner.
	if m.loading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Schedule notification auto-clear when a new notification was set.
	if m.notifVersion > prevNotifVersion && m.notification != "" {
		cmds = append(cmds, clearNotification(4*time.Second, m.notifVersion))
	}

	// Delegate to active tab.
	switch m.activeTab {
	case tabPairs:
		cmds = append(cmds, m.pairsTab.Update(msg, m))
	case tabDetail:
		cmds = append(cmds, m.detailTab.Update(msg, m))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := renderHeader(m.activeTab, m.loading, m.loadErr != nil, len(m.pairsTab.comparisons), m.width)

	var content string
	switch m.activeTab {
	case tabPairs:
		content = m.pairsTab.View(m.spinner, m.loading, m.loadErr)
	case tabDetail:
		content = m.detailTab.View()
	}

	var notif string
	if m.notification != "" {
		if m.notificationErr {
			notif = notifErrorStyle.Render("! " + m.notification)
		} else {
			notif = notifSuccessStyle.Render("* " + m.notification)
		}
	}

	helpText := renderHelpBar(m.showHelp)
	footer := renderFooter(helpText, m.width)

	parts := []string{header}
	if notif != "" {
		parts = append(parts, notif)
	}
	parts = append(parts, content, footer)
	output := lipgloss.JoinVertical(lipgloss.Left, parts...)

	// Force exactly m.height lines to prevent BubbleTea rendering drift.
	return forceHeight(output, m.width, m.height)
}

// forceHeight ensures the string has exactly `height` lines, each padded to `width`.
// This prevents BubbleTea from leaving ghost lines when switching tabs.
func forceHeight(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	// Truncate excess lines.
	if len(lines) > height {
		lines = lines[:height]
	}
	// Pad missing lines with blank space.
	blank := strings.Repeat(" ", width)
	for len(lines) < height {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) contentHeight() int {
	overhead := 5
	if m.showHelp {
		overhead++
	}
	h := m.height - overhead
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) handleGlobalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		ch := m.contentHeight()
		m.pairsTab.setSize(m.width, ch)
		m.detailTab.setSize(m.width, ch)
		return nil

	case key.Matches(msg, keys.TabNext):
		m.activeTab = (m.activeTab + 1) % tabCount
		return nil

	case key.Matches(msg, keys.TabPrev):
		m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		return nil

	case key.Matches(msg, keys.Refresh):
		m.loading = true
		m.loadErr = nil
		return tea.Batch(loadComparisons(m.deps), m.spinner.Tick)
	}

	return nil
}

func (m *Model) setNotification(text string, isErr bool) {
	m.notification = text
	m.notificationErr = isErr
	m.notifVersion++
}

// NewProgram creates a bubbletea program with alt screen.
func NewProgram(deps Deps) *tea.Program {
	return tea.NewProgram(NewModel(deps), tea.WithAltScreen())
}
