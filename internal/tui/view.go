package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Panel geometry. Row hit-testing in handleMouse must agree with the
// layout View produces.
const (
	inputRow  = 0 // query input line
	headerRow = 1 // status or panel header line
	panelTop  = 2 // first result/history row
)

// retailMarkup converts the provider base price into the storefront's
// display price.
const retailMarkup = 3

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewInput())
	b.WriteRune('\n')

	switch {
	case m.state.HistoryVisible():
		b.WriteString(headerStyle.Render("Recent searches"))
		b.WriteRune('\n')
		b.WriteString(m.viewHistory())

	case m.showingResults():
		b.WriteString(m.viewStatus())
		b.WriteRune('\n')
		b.WriteString(m.viewResults())
	}

	return b.String()
}

// showingResults reports whether the ranked-result panel is on screen.
func (m Model) showingResults() bool {
	return m.state.SuggestionsVisible && utf8.RuneCountInString(m.state.Query) > 1
}

// resultRowAt maps a terminal row to a result index, if one is there.
func (m Model) resultRowAt(y int) (int, bool) {
	if !m.showingResults() || m.state.Pending {
		return 0, false
	}
	idx := y - panelTop
	if idx < 0 || idx >= len(m.state.Results) {
		return 0, false
	}
	return idx, true
}

// panelContains reports whether terminal row y falls inside the open
// panel, header row included. Clicks there never count as outside.
func (m Model) panelContains(y int) bool {
	if y < headerRow {
		return false
	}
	switch {
	case m.state.HistoryVisible():
		return y < panelTop+len(m.state.History)
	case m.showingResults():
		if m.state.Pending {
			// Only the "Searching..." status line is on screen.
			return y == headerRow
		}
		return y < panelTop+len(m.state.Results)
	}
	return false
}

// historyRowAt maps a terminal row to a history entry index, if one is
// there.
func (m Model) historyRowAt(y int) (int, bool) {
	if !m.state.HistoryVisible() {
		return 0, false
	}
	idx := y - panelTop
	if idx < 0 || idx >= len(m.state.History) {
		return 0, false
	}
	return idx, true
}

func (m Model) viewInput() string {
	line := m.input.View()
	if m.state.Pending {
		line += " " + m.spin.View()
	}
	return line
}

func (m Model) viewStatus() string {
	switch {
	case m.state.Pending:
		return dimStyle.Render("Searching...")
	case len(m.state.Results) == 0:
		return dimStyle.Render(fmt.Sprintf("No products match %q", m.state.Query))
	default:
		return dimStyle.Render(fmt.Sprintf("%d results", len(m.state.Results)))
	}
}

func (m Model) viewResults() string {
	if m.state.Pending {
		return ""
	}
	var b strings.Builder
	for i, c := range m.state.Results {
		marker := "  "
		style := normalStyle
		if i == m.state.SelectedIndex {
			marker = "> "
			style = selectedStyle
		}

		title := c.Title
		if m.width > 4 {
			title = MiddleTruncate(title, m.width/2)
		}

		b.WriteString(marker)
		b.WriteString(style.Render(title))
		if c.Category != "" {
			b.WriteString(categoryStyle.Render(" · " + c.Category))
		}
		if c.Price > 0 {
			b.WriteString(priceStyle.Render(fmt.Sprintf("  $%.2f", c.Price*retailMarkup)))
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %d", c.Score)))
		if i < len(m.state.Results)-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func (m Model) viewHistory() string {
	var b strings.Builder
	for i, entry := range m.state.History {
		display := entry
		if m.width > 4 {
			display = MiddleTruncate(display, m.width-4)
		}
		b.WriteString(normalStyle.Render("  " + display))
		if i < len(m.state.History)-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}
