package gallery

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Behavior selects how ScrollTo reaches its target.
type Behavior int

const (
	BehaviorInstant Behavior = iota // jump in one step
	BehaviorSmooth                  // spring towards the target over several frames
)

const (
	// springFrequency is tuned so a full page settles well within SettleDelay.
	springFrequency = 25.0
	springDamping   = 1.0

	// settleEpsilon is the distance and velocity below which a smooth scroll
	// snaps onto its target.
	settleEpsilon = 0.5
)

// Viewport models the horizontal scroll container: the visible width, the
// scrollable content width and the current offset. The offset is always
// clamped to [0, Max].
type Viewport struct {
	offset  float64
	width   float64
	content float64

	behavior  Behavior
	target    float64
	velocity  float64
	animating bool
	spring    harmonica.Spring
}

func newViewport() Viewport {
	return Viewport{
		spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
	}
}

// Offset returns the current scroll offset in cells.
func (v *Viewport) Offset() float64 { return v.offset }

// Width returns the visible width in cells.
func (v *Viewport) Width() float64 { return v.width }

// Content returns the scrollable content width in cells.
func (v *Viewport) Content() float64 { return v.content }

// Max returns the largest reachable offset.
func (v *Viewport) Max() float64 {
	if m := v.content - v.width; m > 0 {
		return m
	}
	return 0
}

// Animating reports whether a smooth scroll is still in flight.
func (v *Viewport) Animating() bool { return v.animating }

// Target returns where a smooth scroll is heading, or the offset when idle.
func (v *Viewport) Target() float64 {
	if v.animating {
		return v.target
	}
	return v.offset
}

// SetExtent updates the visible and content widths and re-clamps the offset.
func (v *Viewport) SetExtent(width, content float64) {
	v.width = math.Max(0, width)
	v.content = math.Max(0, content)
	v.offset = v.clamp(v.offset)
	v.target = v.clamp(v.target)
}

// SetBehavior switches between instant and smooth scrolling. Leaving smooth
// mode does not cancel an in-flight animation; use Finish for that.
func (v *Viewport) SetBehavior(b Behavior) { v.behavior = b }

// Behavior returns the active scroll behavior.
func (v *Viewport) Behavior() Behavior { return v.behavior }

// ScrollTo moves to x using the active behavior.
func (v *Viewport) ScrollTo(x float64) {
	x = v.clamp(x)
	if v.behavior == BehaviorSmooth {
		v.target = x
		v.animating = x != v.offset || v.velocity != 0
		return
	}
	v.offset = x
	v.target = x
	v.velocity = 0
	v.animating = false
}

// Jump moves to x immediately, ending any smooth scroll, whatever the
// active behavior.
func (v *Viewport) Jump(x float64) {
	v.offset = v.clamp(x)
	v.target = v.offset
	v.velocity = 0
	v.animating = false
}

// ScrollBy moves by dx relative to the current offset.
func (v *Viewport) ScrollBy(dx float64) { v.ScrollTo(v.offset + dx) }

// Shift moves the offset and any smooth-scroll target by dx in a single step.
// It is used when items are rotated so the picture on screen stays put. The
// offset is clamped; Shift returns how far it actually moved, and callers
// pairing it with a rotation check CanShift first.
func (v *Viewport) Shift(dx float64) float64 {
	prev := v.offset
	v.offset = v.clamp(v.offset + dx)
	if v.animating {
		v.target = v.clamp(v.target + dx)
	} else {
		v.target = v.offset
	}
	return v.offset - prev
}

// CanShift reports whether Shift(dx) would move both the offset and the
// target by exactly dx.
func (v *Viewport) CanShift(dx float64) bool {
	in := func(x float64) bool { return x >= 0 && x <= v.Max() }
	return in(v.offset+dx) && in(v.Target()+dx)
}

// Advance steps an in-flight smooth scroll by one frame. It returns true when
// the offset changed.
func (v *Viewport) Advance() bool {
	if !v.animating {
		return false
	}
	prev := v.offset
	pos, vel := v.spring.Update(v.offset, v.velocity, v.target)
	v.offset, v.velocity = v.clamp(pos), vel
	if math.Abs(v.offset-v.target) < settleEpsilon && math.Abs(v.velocity) < settleEpsilon {
		v.Finish()
	}
	return v.offset != prev
}

// Finish ends any smooth scroll by snapping onto its target.
func (v *Viewport) Finish() {
	if v.animating {
		v.offset = v.clamp(v.target)
	}
	v.target = v.offset
	v.velocity = 0
	v.animating = false
}

func (v *Viewport) clamp(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if m := v.Max(); x > m {
		return m
	}
	return x
}
