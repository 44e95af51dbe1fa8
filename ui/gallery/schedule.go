package gallery

// schedule tracks which frame, scroll tick and settle notifications are
// still current. Bubble Tea cannot cancel a scheduled tick, so every kind of
// notification carries the generation it was issued under; bumping the
// generation drops everything in flight.
type schedule struct {
	frameGen  uint64
	tickGen   uint64
	settleGen uint64

	frameActive bool // a frame loop is running for frameGen
	tickPending bool // a scroll tick is queued for tickGen
	closed      bool
}

// StartFrames begins a frame loop if one is wanted and none is running. It
// returns the generation the loop's frames must carry.
func (e *Engine) StartFrames() (uint64, bool) {
	s := &e.sched
	if s.closed || s.frameActive || !e.WantsFrames() {
		return 0, false
	}
	s.frameActive = true
	s.frameGen++
	return s.frameGen, true
}

// AcceptFrame reports whether a frame issued under gen should run.
func (e *Engine) AcceptFrame(gen uint64) bool {
	s := &e.sched
	return !s.closed && s.frameActive && gen == s.frameGen
}

// ContinueFrames is consulted after each frame. When nothing is left to
// animate the loop is marked stopped and false is returned.
func (e *Engine) ContinueFrames() bool {
	s := &e.sched
	if s.closed || !e.WantsFrames() {
		s.frameActive = false
		return false
	}
	return s.frameActive
}

// FramesActive reports whether a frame loop is currently running.
func (e *Engine) FramesActive() bool { return e.sched.frameActive }

// RequestScrollTick queues a scroll correction for the next frame. Requests
// made while one is already pending are coalesced into it.
func (e *Engine) RequestScrollTick() (uint64, bool) {
	s := &e.sched
	if s.closed || s.tickPending {
		return 0, false
	}
	s.tickPending = true
	return s.tickGen, true
}

// AcceptScrollTick reports whether a tick issued under gen should run and
// clears the pending flag if so.
func (e *Engine) AcceptScrollTick(gen uint64) bool {
	s := &e.sched
	if s.closed || !s.tickPending || gen != s.tickGen {
		return false
	}
	s.tickPending = false
	return true
}

// TickPending reports whether a scroll correction is queued.
func (e *Engine) TickPending() bool { return e.sched.tickPending }

// ArmSettle invalidates any earlier settle timer and returns the generation
// the new one must carry.
func (e *Engine) ArmSettle() uint64 {
	e.sched.settleGen++
	return e.sched.settleGen
}

// AcceptSettle reports whether a settle timer issued under gen should run.
func (e *Engine) AcceptSettle(gen uint64) bool {
	s := &e.sched
	return !s.closed && e.settling && gen == s.settleGen
}

// Cancel drops every pending frame, tick and settle timer. An unfinished page
// scroll is ended in place and the previous suspension state restored.
func (e *Engine) Cancel() {
	s := &e.sched
	s.frameGen++
	s.tickGen++
	s.settleGen++
	s.frameActive = false
	s.tickPending = false
	if e.settling {
		e.endSettle()
	}
}

// Close tears the engine down. Every later notification is ignored and no
// new loop can be started.
func (e *Engine) Close() {
	e.Cancel()
	e.sched.closed = true
}

// Closed reports whether Close has been called.
func (e *Engine) Closed() bool { return e.sched.closed }
