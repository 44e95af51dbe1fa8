// Package toast provides auto-dismissing notifications, used for partial
// load failures and config reloads.
package toast

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/miosa/folio/style"
)

// Level classifies toast severity.
type Level int

const (
	Info Level = iota
	Warning
	Error
)

const (
	maxToasts = 3
	ttl       = 4 * time.Second
)

// TickMsg prunes expired toasts.
type TickMsg struct{ At time.Time }

type toast struct {
	message string
	level   Level
	expiry  time.Time
}

// Model is a bounded queue of notifications.
type Model struct {
	queue []toast
}

// New creates an empty queue.
func New() Model { return Model{} }

// Add enqueues a toast at time now and returns the tick that will expire it.
// The oldest toasts are dropped past maxToasts.
func (m *Model) Add(message string, level Level, now time.Time) tea.Cmd {
	m.queue = append(m.queue, toast{message: message, level: level, expiry: now.Add(ttl)})
	if len(m.queue) > maxToasts {
		m.queue = m.queue[len(m.queue)-maxToasts:]
	}
	return tea.Tick(ttl, func(t time.Time) tea.Msg { return TickMsg{At: t} })
}

// Prune drops toasts expired at now.
func (m *Model) Prune(now time.Time) {
	alive := m.queue[:0]
	for _, t := range m.queue {
		if now.Before(t.expiry) {
			alive = append(alive, t)
		}
	}
	m.queue = alive
}

// Len returns the number of visible toasts.
func (m Model) Len() int { return len(m.queue) }

// View renders the toasts as right-aligned colored lines.
func (m Model) View(width int) string {
	if len(m.queue) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.queue))
	for _, t := range m.queue {
		icon, col := iconColor(t.level)
		rendered := lipgloss.NewStyle().Foreground(col).Render(fmt.Sprintf(" %s %s ", icon, t.message))
		pad := max(width-lipgloss.Width(rendered), 0)
		lines = append(lines, strings.Repeat(" ", pad)+rendered)
	}
	return strings.Join(lines, "\n")
}

func iconColor(level Level) (string, color.Color) {
	switch level {
	case Warning:
		return "⚠", style.Warning
	case Error:
		return "✘", style.Error
	default:
		return "✓", style.Success
	}
}
