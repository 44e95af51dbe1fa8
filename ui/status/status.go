// Package status renders the one-line status bar under the gallery: which
// entries are shown, how they are sorted and filtered, and autoplay state.
package status

import (
	"fmt"
	"strings"

	"github.com/miosa/folio/style"
	"github.com/miosa/folio/ui/common"
)

// Model is the status bar state. Drive it via setter methods; it has no
// Update loop.
type Model struct {
	shown, total int
	sort         string
	filter       string
	autoplay     string // "", "auto", "paused"
	loop         string
	err          string
}

// New returns an empty status bar.
func New() Model { return Model{} }

// SetCounts records how many entries pass the filter out of the total.
func (m *Model) SetCounts(shown, total int) {
	m.shown = shown
	m.total = total
}

// SetSort records the active sort order name.
func (m *Model) SetSort(s string) { m.sort = s }

// SetFilter records the active filter query.
func (m *Model) SetFilter(q string) { m.filter = q }

// SetAutoplay records the autoplay state label.
func (m *Model) SetAutoplay(s string) { m.autoplay = s }

// SetLoop records the effective loop mode name.
func (m *Model) SetLoop(s string) { m.loop = s }

// SetError shows err instead of the usual status; nil clears it.
func (m *Model) SetError(err error) {
	if err == nil {
		m.err = ""
		return
	}
	m.err = err.Error()
}

// View renders the bar exactly width cells wide.
func (m Model) View(width int) string {
	if m.err != "" {
		return common.FitWidth(style.StatusError.Render(common.Truncate(m.err, max(width-2, 1))), width)
	}
	parts := []string{fmt.Sprintf("%d/%d", m.shown, m.total)}
	if m.sort != "" {
		parts = append(parts, "sort:"+m.sort)
	}
	if m.filter != "" {
		parts = append(parts, fmt.Sprintf("filter:%q", m.filter))
	}
	if m.loop != "" && m.loop != "none" {
		parts = append(parts, "loop:"+m.loop)
	}
	if m.autoplay != "" {
		parts = append(parts, m.autoplay)
	}
	return common.FitWidth(style.StatusBar.Render(strings.Join(parts, " · ")), width)
}
