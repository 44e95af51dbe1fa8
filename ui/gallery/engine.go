package gallery

import (
	"math"
	"time"

	"go.uber.org/zap"
)

// Engine is the controller behind one gallery. It owns the rendered order,
// the viewport, the cached item step, and the autoplay and page navigation
// state. It never blocks and never schedules work on its own: the caller
// drives it with frames, scroll ticks and settle notifications, and asks the
// schedule methods whether a given notification is still current.
type Engine struct {
	cfg  Config
	mode LoopMode
	n    int

	seq Sequence
	vp  Viewport

	itemWidth float64
	step      float64
	overflow  bool

	atStart bool
	atEnd   bool

	hovered    bool
	userPaused bool
	suspended  bool
	lastFrame  time.Time
	haveLast   bool

	settling        bool
	resumeSuspended bool

	sched schedule
	log   *zap.Logger
}

// NewEngine returns an engine for n items. Nothing is measured yet, so
// paging, recycling and autoplay are no-ops until Measure succeeds.
func NewEngine(cfg Config, n int, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if n < 0 {
		n = 0
	}
	e := &Engine{
		cfg:     cfg.normalized(),
		n:       n,
		vp:      newViewport(),
		atStart: true,
		log:     log,
	}
	e.mode = e.cfg.Mode()
	e.seq = NewSequence(e.rendered())
	return e
}

// -- Accessors ----------------------------------------------------------------

func (e *Engine) Config() Config      { return e.cfg }
func (e *Engine) Mode() LoopMode      { return e.mode }
func (e *Engine) Len() int            { return e.n }
func (e *Engine) Sequence() Sequence  { return e.seq }
func (e *Engine) Offset() float64     { return e.vp.Offset() }
func (e *Engine) Viewport() *Viewport { return &e.vp }
func (e *Engine) Step() float64       { return e.step }
func (e *Engine) ItemWidth() float64  { return e.itemWidth }
func (e *Engine) Overflow() bool      { return e.overflow }
func (e *Engine) Settling() bool      { return e.settling }
func (e *Engine) Edges() (bool, bool) { return e.atStart, e.atEnd }
func (e *Engine) Hovered() bool       { return e.hovered }
func (e *Engine) UserPaused() bool    { return e.userPaused }

// EffectiveLoop reports whether looping is both requested and possible, i.e.
// the natural content is wider than the viewport.
func (e *Engine) EffectiveLoop() bool {
	return e.mode != LoopNone && e.overflow
}

func (e *Engine) recycling() bool {
	return e.mode == LoopRecycle && e.overflow && e.step > 0
}

func (e *Engine) duplicating() bool {
	return e.mode == LoopDuplicate && e.overflow && e.step > 0
}

// rendered is the number of slots in the strip: every item once, or twice
// while duplicating.
func (e *Engine) rendered() int {
	if e.mode == LoopDuplicate && e.overflow {
		return 2 * e.n
	}
	return e.n
}

func (e *Engine) contentFor(count int) float64 {
	if count <= 0 {
		return 0
	}
	gap := float64(e.cfg.Gap)
	return 2*float64(e.cfg.PaddingX) + float64(count)*e.itemWidth + float64(count-1)*gap
}

// extent is the scrollable width of the strip. While recycling the strip is
// a ring, so it extends one page plus one step past the last slot: enough
// for the headroom step and for a whole page scroll from there, even when
// the items only just overflow.
func (e *Engine) extent() float64 {
	w := e.contentFor(e.seq.Len())
	if e.recycling() {
		w += float64(e.ItemsPerPage()+1) * e.step
	}
	return w
}

// Wraps reports whether slots past the end of the sequence repeat it.
func (e *Engine) Wraps() bool { return e.recycling() }

// SlotX returns the content-space column where slot i starts.
func (e *Engine) SlotX(i int) float64 {
	return float64(e.cfg.PaddingX) + float64(i)*e.step
}

// ItemAt maps a slot to the input index of the item rendered there and the
// copy number (always 0 unless duplicating).
func (e *Engine) ItemAt(slot int) (index, copyNo int) {
	p := e.seq.At(slot)
	if p < 0 || e.n == 0 {
		return -1, 0
	}
	return p % e.n, p / e.n
}

// -- Layout -------------------------------------------------------------------

// SetCount replaces the item count. The order goes back to the input order
// and the cached measurement must be refreshed with Measure.
func (e *Engine) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	e.n = n
	e.seq = NewSequence(e.rendered())
	e.vp.SetExtent(e.vp.Width(), e.extent())
	e.haveLast = false
	e.updateEdges()
}

// SetViewportWidth updates the visible width. Callers re-measure afterwards.
func (e *Engine) SetViewportWidth(w float64) {
	e.vp.SetExtent(w, e.vp.Content())
	e.vp.SetExtent(w, e.extent())
	e.updateEdges()
}

// Reconfigure swaps the configuration. Pending frames, ticks and settle
// timers are invalidated first; the caller re-measures afterwards.
func (e *Engine) Reconfigure(cfg Config) {
	e.Cancel()
	e.cfg = cfg.normalized()
	e.mode = e.cfg.Mode()
	e.seq = NewSequence(e.rendered())
	e.vp.SetExtent(e.vp.Width(), e.extent())
	e.haveLast = false
	e.updateEdges()
}

// Measure records the rendered width of the first item. It returns false and
// keeps the previous cached values when there is nothing to measure: no
// viewport, no items, or no rendered first item.
//
// The offset is reset to 0 so the overflow flag reflects the natural layout
// of a single copy of the items.
func (e *Engine) Measure(itemWidth float64, ok bool) bool {
	if !ok || itemWidth <= 0 || e.n == 0 || e.vp.Width() <= 0 {
		e.log.Debug("gallery measure skipped",
			zap.Bool("rendered", ok),
			zap.Int("items", e.n),
			zap.Float64("viewport", e.vp.Width()))
		return false
	}

	e.vp.Jump(0)
	e.itemWidth = itemWidth
	e.step = itemWidth + float64(e.cfg.Gap)
	e.overflow = e.contentFor(e.n) > e.vp.Width()+1

	count := e.rendered()
	if count != e.seq.Len() || !e.EffectiveLoop() {
		e.seq = NewSequence(count)
	}
	e.vp.SetExtent(e.vp.Width(), e.extent())
	e.vp.Jump(0)
	e.updateEdges()

	e.log.Debug("gallery measured",
		zap.Float64("step", e.step),
		zap.Float64("viewport", e.vp.Width()),
		zap.Float64("content", e.vp.Content()),
		zap.Bool("overflow", e.overflow),
		zap.Stringer("mode", e.mode))
	return true
}

// -- Scrolling ----------------------------------------------------------------

// ScrollBy moves the viewport by dx using the active behavior. Callers follow
// up with a scroll tick so recycling and edge flags catch up.
func (e *Engine) ScrollBy(dx float64) {
	if e.vp.Animating() {
		e.vp.ScrollTo(e.vp.Target() + dx)
		return
	}
	e.vp.ScrollBy(dx)
}

// ScrollTick is the throttled reaction to scrolling: recycle first, then
// recompute the edge flags, so the flags never see a pre-rotation offset.
// Recycling waits while a page scroll is settling; Settle normalizes once.
func (e *Engine) ScrollTick() int {
	moved := 0
	if !e.settling {
		moved = e.Recycle()
	}
	e.updateEdges()
	return moved
}

// Recycle rotates items between the ends of the strip so the offset returns
// to the first item step, leaving one step of headroom on the left. Each
// rotation is paired with an offset shift of exactly one step so nothing
// moves on screen. It returns the number of slots moved.
//
// Only the net rotation is applied: a head-to-tail pass that would be undone
// by the headroom move is skipped, which makes the routine a fixed point for
// offsets in (1, step+1].
func (e *Engine) Recycle() int {
	if !e.recycling() {
		return 0
	}
	off := e.vp.Offset()
	passes := int(math.Floor(off / e.step))
	off -= float64(passes) * e.step
	net := passes
	if off <= 1 {
		net--
	}
	if net == 0 {
		return 0
	}
	e.seq.Rotate(net)
	e.vp.Shift(-float64(net) * e.step)
	if net < 0 {
		net = -net
	}
	e.log.Debug("gallery recycled",
		zap.Int("moved", net),
		zap.Int("rotation", e.seq.Rotation()),
		zap.Float64("offset", e.vp.Offset()))
	return net
}

// rewind is the duplicate-mode correction: once the offset is past the first
// copy, jump back by half the scrollable width.
func (e *Engine) rewind() bool {
	if !e.duplicating() {
		return false
	}
	half := (e.vp.Content() - e.vp.Width()) / 2
	if half <= 0 || e.vp.Offset() < half+1 {
		return false
	}
	e.vp.Shift(-half)
	return true
}

func (e *Engine) updateEdges() {
	if e.EffectiveLoop() {
		e.atStart, e.atEnd = false, false
		return
	}
	off := e.vp.Offset()
	e.atStart = off <= 0
	e.atEnd = off+e.vp.Width() >= e.vp.Content()-1
}

// -- Autoplay -----------------------------------------------------------------

// AutoplayEnabled reports whether the driver is allowed to run at all.
func (e *Engine) AutoplayEnabled() bool {
	return e.cfg.AutoScroll && e.n > 0 && !e.cfg.ReduceMotion
}

// Paused reports whether a running driver is currently held back.
func (e *Engine) Paused() bool {
	return e.userPaused || e.suspended || (e.cfg.PauseOnHover && e.hovered)
}

// Running reports whether the next frame will move the offset.
func (e *Engine) Running() bool {
	return e.AutoplayEnabled() && !e.Paused()
}

// SetHovered records whether the pointer is over the gallery.
func (e *Engine) SetHovered(h bool) { e.hovered = h }

// SetPaused sets the explicit pause toggle.
func (e *Engine) SetPaused(p bool) { e.userPaused = p }

// TogglePause flips the explicit pause toggle and returns the new value.
func (e *Engine) TogglePause() bool {
	e.userPaused = !e.userPaused
	return e.userPaused
}

// WantsFrames reports whether the frame loop has anything to do: autoplay is
// enabled (paused frames still tick so resuming is immediate) or a smooth
// scroll is in flight. Without a viewport or items the loop is torn down.
func (e *Engine) WantsFrames() bool {
	if e.vp.Width() <= 0 || e.n == 0 {
		return false
	}
	return e.AutoplayEnabled() || e.vp.Animating()
}

// Frame advances one animation frame at time now.
func (e *Engine) Frame(now time.Time) {
	e.vp.Advance()

	if !e.Running() || e.step <= 0 {
		e.haveLast = false
		e.updateEdges()
		return
	}
	if !e.haveLast {
		e.lastFrame = now
		e.haveLast = true
		e.updateEdges()
		return
	}

	dt := now.Sub(e.lastFrame).Seconds()
	e.lastFrame = now
	if dt > 0 {
		e.vp.ScrollBy(e.cfg.Speed * dt)
	}
	switch {
	case e.recycling():
		e.Recycle()
	case e.duplicating():
		e.rewind()
	}
	e.updateEdges()
}

// -- Page navigation ----------------------------------------------------------

// ItemsPerPage is how many whole items fit in the viewport, at least one.
func (e *Engine) ItemsPerPage() int {
	if e.step <= 0 {
		return 1
	}
	return max(1, int(math.Round(e.vp.Width()/e.step)))
}

// PageScroll starts a smooth jump of one page in direction dir (-1 or +1).
// Autoplay is suspended until Settle. It returns false when nothing was
// started; the caller arms the settle timer otherwise.
func (e *Engine) PageScroll(dir int) bool {
	if (dir != -1 && dir != 1) || e.step <= 0 || e.n == 0 || e.vp.Width() <= 0 {
		return false
	}
	dist := float64(dir*e.ItemsPerPage()) * e.step
	if e.recycling() {
		e.makeRoom(dist)
	}

	if !e.settling {
		e.resumeSuspended = e.suspended
		e.settling = true
	}
	e.suspended = true
	e.haveLast = false

	e.vp.SetBehavior(BehaviorSmooth)
	e.vp.ScrollTo(e.vp.Target() + dist)
	e.updateEdges()
	return true
}

// makeRoom rotates items across the ends of the ring until a scroll of dist
// from the current target stays inside the scroll range and keeps the usual
// headroom step on the left. Each rotation is paired with a one-step shift;
// a rotation whose shift would be clamped is not applied.
func (e *Engine) makeRoom(dist float64) {
	for range e.seq.Len() + e.ItemsPerPage() {
		t := e.vp.Target() + dist
		var k int
		switch {
		case t <= 1:
			k = -1
		case t > e.vp.Max():
			k = 1
		default:
			return
		}
		if !e.rotate(k) {
			return
		}
	}
}

// rotate moves k items head to tail (k > 0) or tail to head (k < 0) and
// shifts the offset to match. It reports false and changes nothing when the
// shift does not fit the scroll range.
func (e *Engine) rotate(k int) bool {
	dx := -float64(k) * e.step
	if !e.vp.CanShift(dx) {
		return false
	}
	e.seq.Rotate(k)
	e.vp.Shift(dx)
	return true
}

// Settle ends a page scroll: the offset lands on its target, the behavior
// returns to instant, the previous suspension state is restored and, when
// recycling, positions are normalized onto item boundaries.
func (e *Engine) Settle() {
	if !e.settling {
		return
	}
	e.endSettle()
	e.Recycle()
	e.updateEdges()
}

func (e *Engine) endSettle() {
	e.settling = false
	e.vp.Finish()
	e.vp.SetBehavior(BehaviorInstant)
	e.suspended = e.resumeSuspended
	e.haveLast = false
}

// -- Focus and progress -------------------------------------------------------

// FocusedSlot is the left-most slot whose item is fully inside the viewport.
func (e *Engine) FocusedSlot() int {
	if e.step <= 0 || e.seq.Len() == 0 {
		return 0
	}
	slot := max(int(math.Ceil((e.vp.Offset()-float64(e.cfg.PaddingX))/e.step)), 0)
	if e.Wraps() {
		return slot
	}
	return min(slot, e.seq.Len()-1)
}

// Progress returns the logical position and the span it moves through. In a
// loop the position wraps once per cycle of all items.
func (e *Engine) Progress() (pos, span float64) {
	if e.EffectiveLoop() && e.step > 0 {
		cycle := float64(e.n) * e.step
		pos = math.Mod(float64(e.seq.Rotation())*e.step+e.vp.Offset(), cycle)
		return pos, cycle
	}
	return e.vp.Offset(), e.vp.Max()
}
