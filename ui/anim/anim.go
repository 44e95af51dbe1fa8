// Package anim provides the gradient spinner shown while collections load.
//
// The glyphs are pre-rendered once per color pair. With reduced motion the
// spinner draws a single static glyph and never schedules a tick.
package anim

import (
	"image/color"
	"math"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/miosa/folio/style"
)

const (
	fps           = 12
	frameDuration = time.Second / fps
	// ellipsisFrames is how many frames elapse per ellipsis state.
	ellipsisFrames = 5
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var ellipsisStates = []string{"", ".", "..", "..."}

// idCounter gives each spinner a unique ID so TickMsg events don't cross-talk.
var idCounter atomic.Int64

// TickMsg advances the spinner with the matching ID.
type TickMsg struct {
	ID int64
}

// Opts configures the spinner.
type Opts struct {
	Label string

	// GradColorA and GradColorB default to the theme gradient.
	GradColorA color.Color
	GradColorB color.Color

	// Static disables animation (reduced motion).
	Static bool
}

// Model is a gradient braille spinner.
type Model struct {
	id          int64
	opts        Opts
	spinning    bool
	frame       int
	ellipsisIdx int
	glyphs      []string
}

// New creates a stopped spinner.
func New(opts Opts) Model {
	if opts.GradColorA == nil {
		opts.GradColorA = style.GradColorA
	}
	if opts.GradColorB == nil {
		opts.GradColorB = style.GradColorB
	}
	m := Model{id: idCounter.Add(1), opts: opts}
	m.glyphs = m.render()
	return m
}

// Start begins spinning and returns the first tick, if any.
func (m *Model) Start() tea.Cmd {
	m.spinning = true
	m.frame, m.ellipsisIdx = 0, 0
	return m.tick()
}

// Tick schedules the next frame of a running spinner. Use it when Start was
// called on a copy that is no longer in the update loop.
func (m Model) Tick() tea.Cmd { return m.tick() }

// Stop halts the spinner; View renders nothing afterwards.
func (m *Model) Stop() { m.spinning = false }

// IsSpinning reports whether the spinner is running.
func (m Model) IsSpinning() bool { return m.spinning }

// SetLabel changes the label text.
func (m *Model) SetLabel(s string) { m.opts.Label = s }

// Update advances the animation on each TickMsg addressed to this spinner.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != m.id || !m.spinning {
		return m, nil
	}
	m.frame = (m.frame + 1) % len(frames)
	if m.frame%ellipsisFrames == 0 {
		m.ellipsisIdx = (m.ellipsisIdx + 1) % len(ellipsisStates)
	}
	return m, m.tick()
}

// View renders the current frame, or "" when stopped.
func (m Model) View() string {
	if !m.spinning {
		return ""
	}
	glyph := m.glyphs[m.frame%len(m.glyphs)]
	if m.opts.Label == "" {
		return glyph
	}
	label := m.opts.Label
	if !m.opts.Static {
		label += ellipsisStates[m.ellipsisIdx]
	}
	return glyph + " " + style.Faint.Render(label)
}

func (m Model) tick() tea.Cmd {
	if m.opts.Static || !m.spinning {
		return nil
	}
	id := m.id
	return tea.Tick(frameDuration, func(time.Time) tea.Msg {
		return TickMsg{ID: id}
	})
}

// render pre-renders one colored string per glyph. The gradient follows a
// half sine so it bounces between the two colors instead of wrapping.
func (m Model) render() []string {
	n := len(frames)
	out := make([]string, n)
	for i, glyph := range frames {
		t := math.Sin(math.Pi * float64(i) / float64(n-1))
		c := style.LerpColor(m.opts.GradColorA, m.opts.GradColorB, t)
		out[i] = lipgloss.NewStyle().Foreground(c).Render(glyph)
	}
	return out
}
