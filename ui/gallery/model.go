// Package gallery provides an endless horizontal strip of items for the folio
// browser.
//
// The strip scrolls under a fixed-width viewport. When looping is requested
// and the items do not fit, the gallery keeps scrolling forever in one of two
// ways: recycling items from one end of the strip to the other, or rendering
// the items twice and rewinding at the seam. Autoplay advances the strip at a
// constant speed, page buttons jump by whole items, and everything is driven
// by Bubble Tea ticks that can be invalidated wholesale on Close.
package gallery

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/miosa/folio/style"
	"github.com/miosa/folio/ui/common"
)

// Item is an opaque value supplied by the caller and handed back to the
// render callback.
type Item any

// Identifier is implemented by items that carry a stable key.
type Identifier interface {
	ID() string
}

// RenderFunc renders one item. Every item should render to the same width;
// the first item's width defines the step between slots.
type RenderFunc func(item Item) string

// arrowWidth is the number of columns reserved on each side for the page
// buttons.
const arrowWidth = 2

// idCounter gives each Model a unique ID so messages are routed to the
// gallery that scheduled them.
var idCounter atomic.Int64

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// FrameMsg is one animation frame of the autoplay / smooth-scroll loop.
type FrameMsg struct {
	ID  int64
	Gen uint64
	At  time.Time
}

// ScrollTickMsg runs the throttled scroll correction.
type ScrollTickMsg struct {
	ID  int64
	Gen uint64
}

// SettleMsg fires SettleDelay after a page scroll.
type SettleMsg struct {
	ID  int64
	Gen uint64
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type cachedRender struct {
	lines []string
	width int
}

// Model is the Bubble Tea component around an Engine. Copies of a Model share
// the same engine and render cache, so only one copy should be driven.
type Model struct {
	id     int64
	eng    *Engine
	cfg    Config
	log    *zap.Logger
	render RenderFunc

	items []Item
	keys  []string

	width  int
	height int
	x, y   int

	cache map[string]cachedRender
}

// New constructs a gallery over items.
func New(items []Item, render RenderFunc, opts ...Option) Model {
	m := Model{
		id:     idCounter.Add(1),
		cfg:    DefaultConfig(),
		log:    zap.NewNop(),
		render: render,
		cache:  make(map[string]cachedRender),
	}
	for _, o := range opts {
		o(&m)
	}
	m.eng = NewEngine(m.cfg, 0, m.log)
	m.eng.SetViewportWidth(float64(m.stripWidth()))
	m.setItems(items)
	m.measure()
	return m
}

// Init schedules the first scroll correction and starts autoplay.
func (m Model) Init() tea.Cmd {
	return m.kick()
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// SetSize updates the gallery dimensions and re-measures.
func (m *Model) SetSize(w, h int) tea.Cmd {
	m.width = w
	m.height = h
	m.eng.SetViewportWidth(float64(m.stripWidth()))
	return m.measure()
}

// SetItems replaces the items. Cached renders are kept for unchanged keys.
func (m *Model) SetItems(items []Item) tea.Cmd {
	m.setItems(items)
	return m.measure()
}

// Reconfigure applies a new configuration. Pending frames, scroll ticks and
// settle timers from the old configuration are dropped.
func (m *Model) Reconfigure(cfg Config) tea.Cmd {
	m.cfg = cfg
	m.eng.Reconfigure(cfg)
	m.cache = make(map[string]cachedRender)
	return m.measure()
}

// Refresh discards cached renders (after a theme change, for instance) and
// re-measures if the first item's width changed. Position, order and pending
// work are kept when the width is unchanged.
func (m *Model) Refresh() tea.Cmd {
	prev := m.eng.ItemWidth()
	m.cache = make(map[string]cachedRender)
	if w, ok := m.firstItemWidth(); ok && float64(w) == prev {
		return nil
	}
	return m.measure()
}

// PageScroll jumps one page left (dir=-1) or right (dir=+1). Disabled
// directions are ignored.
func (m *Model) PageScroll(dir int) tea.Cmd {
	if !m.CanPage(dir) || !m.eng.PageScroll(dir) {
		return nil
	}
	return tea.Batch(m.settleAfter(), m.startFrames())
}

// TogglePause flips the explicit autoplay pause and returns the new state.
func (m *Model) TogglePause() bool {
	return m.eng.TogglePause()
}

// SetHovered records pointer hover for callers that hit-test themselves.
func (m *Model) SetHovered(h bool) {
	m.eng.SetHovered(h)
}

// Close stops the gallery: nothing it scheduled will run afterwards.
func (m *Model) Close() {
	m.eng.Close()
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// Engine exposes the underlying controller.
func (m Model) Engine() *Engine { return m.eng }

// Config returns the configuration in use.
func (m Model) Config() Config { return m.cfg }

// Width returns the configured width.
func (m Model) Width() int { return m.width }

// Height returns the number of rows View produces: title, strip, indicator.
func (m Model) Height() int {
	if len(m.items) == 0 {
		return 0
	}
	return m.stripRows() + 2
}

// Overflow reports whether the items are wider than the viewport.
func (m Model) Overflow() bool { return m.eng.Overflow() }

// Edges returns the start/end flags.
func (m Model) Edges() (atStart, atEnd bool) { return m.eng.Edges() }

// Paused reports whether autoplay is currently held back.
func (m Model) Paused() bool { return m.eng.Paused() }

// Items returns the input items in their original order.
func (m Model) Items() []Item { return m.items }

// Order returns the items as currently rendered from left to right.
func (m Model) Order() []Item {
	seq := m.eng.Sequence()
	out := make([]Item, 0, seq.Len())
	for slot := 0; slot < seq.Len(); slot++ {
		if idx, _ := m.eng.ItemAt(slot); idx >= 0 {
			out = append(out, m.items[idx])
		}
	}
	return out
}

// Keys returns the render keys of the rendered slots from left to right.
// Duplicated copies get distinct keys.
func (m Model) Keys() []string {
	seq := m.eng.Sequence()
	out := make([]string, 0, seq.Len())
	for slot := 0; slot < seq.Len(); slot++ {
		idx, copyNo := m.eng.ItemAt(slot)
		if idx < 0 {
			continue
		}
		if m.eng.Mode() == LoopDuplicate && seq.Len() > len(m.items) {
			out = append(out, fmt.Sprintf("%s#%d", m.keys[idx], copyNo))
		} else {
			out = append(out, m.keys[idx])
		}
	}
	return out
}

// Focused returns the left-most fully visible item.
func (m Model) Focused() (Item, bool) {
	if len(m.items) == 0 {
		return nil, false
	}
	idx, _ := m.eng.ItemAt(m.eng.FocusedSlot())
	if idx < 0 {
		return nil, false
	}
	return m.items[idx], true
}

// CanPage reports whether the page button for dir is enabled.
func (m Model) CanPage(dir int) bool {
	if !m.eng.Overflow() {
		return false
	}
	if m.eng.EffectiveLoop() {
		return true
	}
	atStart, atEnd := m.eng.Edges()
	if dir < 0 {
		return !atStart
	}
	return !atEnd
}

// ---------------------------------------------------------------------------
// Update (bubbletea)
// ---------------------------------------------------------------------------

// Update handles the gallery's own scheduling messages plus the mouse events
// the caller forwards: horizontal wheel, motion (hover) and clicks on the
// page buttons.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.ID != m.id || !m.eng.AcceptFrame(msg.Gen) {
			return m, nil
		}
		m.eng.Frame(msg.At)
		if !m.eng.ContinueFrames() {
			return m, nil
		}
		return m, m.frame(msg.Gen)

	case ScrollTickMsg:
		if msg.ID != m.id || !m.eng.AcceptScrollTick(msg.Gen) {
			return m, nil
		}
		m.eng.ScrollTick()
		return m, nil

	case SettleMsg:
		if msg.ID != m.id || !m.eng.AcceptSettle(msg.Gen) {
			return m, nil
		}
		m.eng.Settle()
		return m, m.startFrames()

	case tea.MouseWheelMsg:
		if !m.contains(msg.X, msg.Y) {
			return m, nil
		}
		var dx float64
		switch msg.Button {
		case tea.MouseWheelLeft:
			dx = -3
		case tea.MouseWheelRight:
			dx = 3
		case tea.MouseWheelUp:
			if msg.Mod.Contains(tea.ModShift) {
				dx = -3
			}
		case tea.MouseWheelDown:
			if msg.Mod.Contains(tea.ModShift) {
				dx = 3
			}
		}
		if dx == 0 {
			return m, nil
		}
		m.eng.ScrollBy(dx)
		return m, tea.Batch(m.requestTick(), m.startFrames())

	case tea.MouseMotionMsg:
		m.eng.SetHovered(m.contains(msg.X, msg.Y))
		return m, nil

	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return m, nil
		}
		if dir := m.arrowAt(msg.X, msg.Y); dir != 0 {
			return m, m.PageScroll(dir)
		}
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

// View renders the title row, the clipped strip framed by the page buttons,
// and the position indicator.
func (m Model) View() string {
	if m.width <= 0 || len(m.items) == 0 {
		return ""
	}

	rows := m.stripRows()
	strip := m.renderStrip(rows)
	mid := rows / 2

	lines := make([]string, 0, rows+2)
	lines = append(lines, common.FitWidth(m.titleLine(), m.width))
	for r := 0; r < rows; r++ {
		left, right := common.Blank(arrowWidth), common.Blank(arrowWidth)
		if r == mid {
			left = m.arrow(-1) + " "
			right = " " + m.arrow(1)
		}
		lines = append(lines, left+strip[r]+right)
	}
	lines = append(lines, common.FitWidth(common.Blank(arrowWidth)+m.indicator(), m.width))

	out := strings.Join(lines, "\n")
	if m.cfg.Class != "" {
		out = style.Class(m.cfg.Class).Render(out)
	}
	return out
}

func (m Model) titleLine() string {
	var parts []string
	if m.cfg.AriaLabel != "" {
		parts = append(parts, style.GalleryTitle.Render(m.cfg.AriaLabel))
	}
	switch {
	case !m.eng.AutoplayEnabled():
	case m.eng.Paused():
		parts = append(parts, style.GalleryStatus.Render("⏸ paused"))
	default:
		parts = append(parts, style.GalleryStatus.Render("▶ auto"))
	}
	if idx, _ := m.eng.ItemAt(m.eng.FocusedSlot()); idx >= 0 {
		parts = append(parts, style.GalleryStatus.Render(fmt.Sprintf("%d/%d", idx+1, len(m.items))))
	}
	return strings.Join(parts, "  ")
}

func (m Model) arrow(dir int) string {
	glyph := "‹"
	if dir > 0 {
		glyph = "›"
	}
	if m.CanPage(dir) {
		return style.GalleryArrow.Render(glyph)
	}
	return style.GalleryArrowDisabled.Render(glyph)
}

func (m Model) indicator() string {
	pos, span := m.eng.Progress()
	vw := m.stripWidth()
	if span <= 0 || vw <= 0 {
		return common.Blank(vw)
	}
	bar := common.HScrollbar(vw, int(math.Round(span))+vw, int(math.Round(pos)))
	return common.FitWidth(bar, vw)
}

// renderStrip composes the visible window of the strip, one string per row,
// each exactly the viewport width. Only slots that intersect the viewport
// are rendered.
func (m Model) renderStrip(rows int) []string {
	vw := m.stripWidth()
	out := make([]string, rows)
	step := int(math.Round(m.eng.Step()))
	cw := int(math.Round(m.eng.ItemWidth()))
	if vw <= 0 || step <= 0 || cw <= 0 {
		for r := range out {
			out[r] = common.Blank(vw)
		}
		return out
	}

	pad := m.eng.Config().PaddingX
	gap := common.Blank(step - cw)
	off := int(math.Round(m.eng.Offset()))
	slots := m.eng.Sequence().Len()

	first := 0
	if off > pad {
		first = (off - pad) / step
	}
	startX := pad + first*step
	base := min(off, startX)

	bufs := make([]strings.Builder, rows)
	for r := range bufs {
		bufs[r].WriteString(common.Blank(startX - base))
	}
	wraps := m.eng.Wraps()
	for slot := first; (wraps || slot < slots) && pad+slot*step < off+vw; slot++ {
		idx, _ := m.eng.ItemAt(slot)
		lines := m.slotLines(idx, cw, rows)
		for r := range bufs {
			bufs[r].WriteString(lines[r])
			bufs[r].WriteString(gap)
		}
	}
	for r := range bufs {
		out[r] = common.FitWidth(ansi.Cut(bufs[r].String(), off-base, off-base+vw), vw)
	}
	return out
}

// slotLines returns rows lines of exactly width cells for item idx.
func (m Model) slotLines(idx, width, rows int) []string {
	c := m.renderItem(idx)
	lines := make([]string, rows)
	for r := range lines {
		line := ""
		if r < len(c.lines) {
			line = c.lines[r]
		}
		lines[r] = common.FitWidth(line, width)
	}
	return lines
}

// ---------------------------------------------------------------------------
// Internal helpers
// ---------------------------------------------------------------------------

func (m *Model) setItems(items []Item) {
	m.items = items
	m.keys = itemKeys(items)
	m.eng.SetCount(len(items))
}

// itemKeys derives a unique key per item: its ID when it has one, its index
// otherwise.
func itemKeys(items []Item) []string {
	keys := make([]string, len(items))
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		k := ""
		if id, ok := it.(Identifier); ok {
			k = id.ID()
		}
		if k == "" {
			k = fmt.Sprintf("idx-%d", i)
		}
		if seen[k] {
			k = fmt.Sprintf("%s~%d", k, i)
		}
		seen[k] = true
		keys[i] = k
	}
	return keys
}

func (m Model) renderItem(idx int) cachedRender {
	key := m.keys[idx]
	if c, ok := m.cache[key]; ok {
		return c
	}
	var s string
	if m.render != nil {
		s = m.render(m.items[idx])
	}
	if m.cfg.ItemClass != "" {
		s = style.Class(m.cfg.ItemClass).Render(s)
	}
	c := cachedRender{lines: strings.Split(s, "\n"), width: lipgloss.Width(s)}
	m.cache[key] = c
	return c
}

func (m Model) firstItemWidth() (int, bool) {
	if len(m.items) == 0 || m.render == nil {
		return 0, false
	}
	c := m.renderItem(0)
	return c.width, c.width > 0
}

func (m *Model) measure() tea.Cmd {
	w, ok := m.firstItemWidth()
	m.eng.Measure(float64(w), ok)
	return m.kick()
}

// kick queues a scroll correction and makes sure the frame loop runs if it
// has anything to do.
func (m Model) kick() tea.Cmd {
	return tea.Batch(m.requestTick(), m.startFrames())
}

func (m Model) stripWidth() int {
	return max(0, m.width-2*arrowWidth)
}

func (m Model) stripRows() int {
	rows := 1
	for i := range m.items {
		rows = max(rows, len(m.renderItem(i).lines))
	}
	if m.height > 2 {
		rows = min(rows, m.height-2)
	}
	return rows
}

func (m Model) contains(x, y int) bool {
	return x >= m.x && x < m.x+m.width && y >= m.y && y < m.y+m.Height()
}

// arrowAt returns -1 or +1 when (x, y) is on a page button row, 0 otherwise.
func (m Model) arrowAt(x, y int) int {
	if y < m.y+1 || y > m.y+m.stripRows() {
		return 0
	}
	switch {
	case x >= m.x && x < m.x+arrowWidth:
		return -1
	case x >= m.x+m.width-arrowWidth && x < m.x+m.width:
		return 1
	}
	return 0
}

func (m Model) startFrames() tea.Cmd {
	gen, ok := m.eng.StartFrames()
	if !ok {
		return nil
	}
	return m.frame(gen)
}

func (m Model) frame(gen uint64) tea.Cmd {
	id := m.id
	return tea.Tick(frameDuration, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Gen: gen, At: t}
	})
}

func (m Model) requestTick() tea.Cmd {
	gen, ok := m.eng.RequestScrollTick()
	if !ok {
		return nil
	}
	id := m.id
	return tea.Tick(frameDuration, func(time.Time) tea.Msg {
		return ScrollTickMsg{ID: id, Gen: gen}
	})
}

func (m Model) settleAfter() tea.Cmd {
	gen := m.eng.ArmSettle()
	id := m.id
	return tea.Tick(SettleDelay, func(time.Time) tea.Msg {
		return SettleMsg{ID: id, Gen: gen}
	})
}
