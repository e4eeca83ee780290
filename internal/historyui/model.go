// Package historyui provides the Bubble Tea run-history interface.
package historyui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordsort/internal/model"
	"github.com/verte-zerg/wordsort/internal/stats"
	"github.com/verte-zerg/wordsort/internal/store"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Model implements the Bubble Tea history UI.
type Model struct {
	store *store.Store
	cfg   model.HistoryConfig

	runs    []model.RunRecord
	summary stats.Summary
	errMsg  string

	runTable table.Model

	width  int
	height int
}

// NewModel constructs a history UI model.
func NewModel(st *store.Store, cfg model.HistoryConfig) *Model {
	m := &Model{
		store:    st,
		cfg:      cfg,
		runTable: buildRunTable(nil, 1),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "r":
			m.refresh()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.runTable, cmd = m.runTable.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := titleStyle.Render("wordsort history")
	summary := summaryStyle.Render(m.summaryLine())
	footer := footerStyle.Render("↑/↓ scroll · r refresh · q quit")
	parts := []string{header, summary, m.runTable.View(), footer}
	if m.errMsg != "" {
		parts = append(parts, errorStyle.Render(m.errMsg))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) refresh() {
	runs, err := m.store.ListRuns(context.Background(), m.cfg)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load runs: %v", err)
		return
	}
	m.errMsg = ""
	m.runs = runs
	m.summary = stats.BuildSummary(runs)
	m.runTable = buildRunTable(runs, tableHeight(m.height))
	m.updateLayout()
}

func (m *Model) updateLayout() {
	m.runTable.SetHeight(tableHeight(m.height))
	if m.width > 0 {
		m.runTable.SetWidth(m.width)
	}
}

func (m *Model) summaryLine() string {
	if m.summary.Runs == 0 {
		return "No runs recorded yet."
	}
	return fmt.Sprintf("Runs: %d  Words: %d  Empty: %d  Avg duration: %dms",
		m.summary.Runs, m.summary.TotalWords, m.summary.TotalEmpty, m.summary.AvgDurationMs)
}

func tableHeight(total int) int {
	// Title box, summary line, footer, and the table header.
	height := total - 6
	if height < 1 {
		height = 1
	}
	return height
}

func buildRunTable(runs []model.RunRecord, height int) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Finished", Width: 19},
		{Title: "Source", Width: 18},
		{Title: "Output", Width: 18},
		{Title: "Words", Width: 6},
		{Title: "Empty", Width: 6},
		{Title: "ms", Width: 6},
	}
	rows := make([]table.Row, 0, len(runs))
	// Newest first for browsing.
	for i := len(runs) - 1; i >= 0; i-- {
		run := runs[i]
		rows = append(rows, table.Row{
			strconv.FormatInt(run.RunID, 10),
			run.EndedAt.Local().Format(time.DateTime),
			run.SourcePath,
			run.OutputPath,
			strconv.Itoa(run.Words),
			strconv.Itoa(run.EmptyLines),
			strconv.FormatInt(run.DurationMs, 10),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(lipgloss.Color("#3A3A3A")).
		Bold(false)
	t.SetStyles(styles)
	return t
}
