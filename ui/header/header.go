// Package header renders the folio title and the collection tab bar.
package header

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/miosa/folio/style"
	"github.com/miosa/folio/ui/common"
)

// Tab is one collection in the tab bar.
type Tab struct {
	Label string
	Count int
}

// Model holds the header state. It has no Update loop.
type Model struct {
	title   string
	version string
	tabs    []Tab
	active  int
	width   int
}

// New returns a header titled title.
func New(title, version string) Model {
	return Model{title: title, version: version}
}

// SetTabs replaces the tabs, keeping the active index in range.
func (m *Model) SetTabs(tabs []Tab) {
	m.tabs = tabs
	m.SetActive(m.active)
}

// SetCount updates the entry count shown on tab i.
func (m *Model) SetCount(i, n int) {
	if i >= 0 && i < len(m.tabs) {
		m.tabs[i].Count = n
	}
}

// SetActive selects tab i, clamped to the available tabs.
func (m *Model) SetActive(i int) {
	m.active = min(max(i, 0), max(len(m.tabs)-1, 0))
}

// Active returns the selected tab index.
func (m Model) Active() int { return m.active }

// SetWidth updates the width used for the separator.
func (m *Model) SetWidth(w int) { m.width = w }

// Height is the number of rows HeaderView renders.
func (m Model) Height() int { return 2 }

// View returns the one-line title and tab bar.
func (m Model) View() string {
	title := style.ApplyBoldForegroundGrad(m.title)
	if m.version != "" {
		title += style.Faint.Render(" " + m.version)
	}

	parts := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		label := fmt.Sprintf("%s %d", t.Label, t.Count)
		if i == m.active {
			parts[i] = style.TabActive.Render(label)
		} else {
			parts[i] = style.TabInactive.Render(label)
		}
	}
	sep := style.HeaderSeparator.Render(" │ ")
	line := title + "   " + strings.Join(parts, sep)
	if m.width > 0 {
		line = common.FitWidth(line, m.width)
	}
	return line
}

// HeaderView returns View plus a thin separator line.
func (m Model) HeaderView() string {
	sep := lipgloss.NewStyle().Foreground(style.Border).Render(strings.Repeat("─", max(m.width, 0)))
	return m.View() + "\n" + sep
}
