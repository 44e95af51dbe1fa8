package gallery

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fourItems is the reference layout: four 100-cell items with no gap or
// padding under a 250-cell viewport, so content=400 and the max offset is 150.
func fourItems(t *testing.T, cfg Config) *Engine {
	t.Helper()
	cfg.Gap = 0
	cfg.PaddingX = 0
	e := NewEngine(cfg, 4, zaptest.NewLogger(t))
	e.SetViewportWidth(250)
	require.True(t, e.Measure(100, true))
	return e
}

func isRotation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	for i := range order {
		if order[i] != (order[0]+i)%n {
			return false
		}
	}
	return true
}

// virtualPos is the offset measured from the start of the original first
// item, wrapped to one cycle.
func virtualPos(e *Engine) float64 {
	cycle := float64(e.Len()) * e.Step()
	return math.Mod(float64(e.Sequence().Rotation())*e.Step()+e.Offset(), cycle)
}

// -- Measurement --------------------------------------------------------------

func TestMeasure_SetsStepAndOverflow(t *testing.T) {
	e := fourItems(t, Config{})
	assert.Equal(t, 100.0, e.Step())
	assert.True(t, e.Overflow())
	assert.Equal(t, 400.0, e.Viewport().Content())
}

func TestMeasure_IncludesGapAndPadding(t *testing.T) {
	e := NewEngine(Config{Gap: 2, PaddingX: 3}, 3, nil)
	e.SetViewportWidth(100)
	require.True(t, e.Measure(20, true))
	assert.Equal(t, 22.0, e.Step())
	// 2*3 + 3*20 + 2*2
	assert.Equal(t, 70.0, e.Viewport().Content())
	assert.False(t, e.Overflow())
}

func TestMeasure_OverflowToleranceIsOneCell(t *testing.T) {
	e := NewEngine(Config{Gap: 0, PaddingX: 0}, 2, nil)
	e.SetViewportWidth(199)
	require.True(t, e.Measure(100, true))
	assert.False(t, e.Overflow(), "200 is within 1 cell of 199")

	e.SetViewportWidth(198)
	require.True(t, e.Measure(100, true))
	assert.True(t, e.Overflow())
}

func TestMeasure_ResetsOffset(t *testing.T) {
	e := fourItems(t, Config{})
	e.ScrollBy(120)
	require.Equal(t, 120.0, e.Offset())
	require.True(t, e.Measure(100, true))
	assert.Equal(t, 0.0, e.Offset())
}

func TestMeasure_SkippedKeepsCachedValues(t *testing.T) {
	e := fourItems(t, Config{})
	assert.False(t, e.Measure(0, false))
	assert.Equal(t, 100.0, e.Step())

	e.SetViewportWidth(0)
	assert.False(t, e.Measure(100, true))
	assert.Equal(t, 100.0, e.Step())
}

func TestUnmeasured_OperationsAreNoops(t *testing.T) {
	e := NewEngine(Config{Loop: true, AutoScroll: true}, 4, nil)
	e.SetViewportWidth(250)
	assert.Equal(t, 0.0, e.Step())
	assert.False(t, e.PageScroll(1))
	assert.Equal(t, 0, e.Recycle())

	now := time.Now()
	e.Frame(now)
	e.Frame(now.Add(time.Second))
	assert.Equal(t, 0.0, e.Offset())
}

// -- Edge tracking ------------------------------------------------------------

func TestEdges_ScenarioNoLoop(t *testing.T) {
	e := fourItems(t, Config{})
	atStart, atEnd := e.Edges()
	assert.True(t, atStart)
	assert.False(t, atEnd)

	require.Equal(t, 3, e.ItemsPerPage())
	require.True(t, e.PageScroll(1))
	e.Settle()

	assert.Equal(t, 150.0, e.Offset(), "300 is clamped to content-viewport")
	atStart, atEnd = e.Edges()
	assert.False(t, atStart)
	assert.True(t, atEnd)
}

func TestEdges_AlwaysFalseWhenLooping(t *testing.T) {
	for _, strategy := range []Strategy{StrategyRecycle, StrategyDuplicate} {
		e := fourItems(t, Config{Loop: true, Strategy: strategy})
		for _, off := range []float64{0, 0.5, 50, 149, 150, 10000} {
			e.Viewport().Jump(off)
			e.ScrollTick()
			atStart, atEnd := e.Edges()
			assert.False(t, atStart, "strategy=%s offset=%v", strategy, off)
			assert.False(t, atEnd, "strategy=%s offset=%v", strategy, off)
		}
	}
}

func TestEdges_LoopWithoutOverflowBehavesStatic(t *testing.T) {
	e := NewEngine(Config{Loop: true, Gap: 0, PaddingX: 0}, 2, nil)
	e.SetViewportWidth(400)
	require.True(t, e.Measure(100, true))
	assert.False(t, e.EffectiveLoop())
	atStart, atEnd := e.Edges()
	assert.True(t, atStart)
	assert.True(t, atEnd)
	assert.Equal(t, 0, e.ScrollTick())
}

// -- No loop ------------------------------------------------------------------

func TestNoLoop_OrderNeverChanges(t *testing.T) {
	e := fourItems(t, Config{AutoScroll: true, Speed: 40})
	rng := rand.New(rand.NewSource(1))
	now := time.Unix(0, 0)
	for i := 0; i < 500; i++ {
		switch rng.Intn(4) {
		case 0:
			e.ScrollBy(rng.Float64()*200 - 100)
			e.ScrollTick()
		case 1:
			if e.PageScroll([]int{-1, 1}[rng.Intn(2)]) {
				e.Settle()
			}
		default:
			now = now.Add(frameDuration)
			e.Frame(now)
		}
		if diff := cmp.Diff([]int{0, 1, 2, 3}, e.Sequence().Order()); diff != "" {
			t.Fatalf("step %d: order changed (-want +got):\n%s", i, diff)
		}
	}
}

// -- Recycle ------------------------------------------------------------------

func TestRecycle_ScenarioAutoplayPastOneStep(t *testing.T) {
	e := fourItems(t, Config{Loop: true, Strategy: StrategyRecycle, AutoScroll: true, Speed: 20})
	t0 := time.Unix(100, 0)
	e.Frame(t0) // first frame only records the timestamp
	assert.Equal(t, 0.0, e.Offset())

	e.Frame(t0.Add(7500 * time.Millisecond)) // 150 cells
	if diff := cmp.Diff([]int{1, 2, 3, 0}, e.Sequence().Order()); diff != "" {
		t.Errorf("want A moved to tail (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 50, e.Offset(), 1e-9)
}

func TestRecycle_HeadroomAtZero(t *testing.T) {
	e := fourItems(t, Config{Loop: true})
	moved := e.ScrollTick()
	assert.Equal(t, 1, moved)
	if diff := cmp.Diff([]int{3, 0, 1, 2}, e.Sequence().Order()); diff != "" {
		t.Errorf("want D moved to head (-want +got):\n%s", diff)
	}
	assert.Equal(t, 100.0, e.Offset())
}

func TestRecycle_MultiplePassesInOneTick(t *testing.T) {
	cfg := Config{Loop: true, Gap: 0, PaddingX: 0}
	e := NewEngine(cfg, 10, nil)
	e.SetViewportWidth(250)
	require.True(t, e.Measure(100, true))

	e.Viewport().Jump(530)
	moved := e.Recycle()
	assert.Equal(t, 5, moved)
	assert.InDelta(t, 30, e.Offset(), 1e-9)
	assert.Equal(t, 5, e.Sequence().Rotation())
}

func TestRecycle_IsIdempotent(t *testing.T) {
	cfg := Config{Loop: true, Gap: 0, PaddingX: 0}
	e := NewEngine(cfg, 8, nil)
	e.SetViewportWidth(250)
	require.True(t, e.Measure(100, true))

	for off := 0.0; off <= e.Viewport().Max(); off += 7.5 {
		e.Viewport().Jump(off)
		e.Recycle()
		order := e.Sequence().Order()
		pos := e.Offset()

		assert.Equal(t, 0, e.Recycle(), "second pass at offset %v moved items", off)
		assert.Equal(t, order, e.Sequence().Order())
		assert.Equal(t, pos, e.Offset())
	}
}

func TestRecycle_PreservesVisualPosition(t *testing.T) {
	cfg := Config{Loop: true, Gap: 0, PaddingX: 0}
	e := NewEngine(cfg, 8, nil)
	e.SetViewportWidth(250)
	require.True(t, e.Measure(100, true))

	e.Viewport().Jump(420)
	before := virtualPos(e)
	e.Recycle()
	assert.InDelta(t, before, virtualPos(e), 1e-9)
}

func TestRecycle_AlwaysARotation(t *testing.T) {
	cfg := Config{Loop: true, AutoScroll: true, Speed: 90, Gap: 1, PaddingX: 2}
	e := NewEngine(cfg, 7, nil)
	e.SetViewportWidth(35)
	require.True(t, e.Measure(10, true))
	require.True(t, e.EffectiveLoop())

	rng := rand.New(rand.NewSource(7))
	now := time.Unix(0, 0)
	for i := 0; i < 2000; i++ {
		switch rng.Intn(5) {
		case 0:
			e.ScrollBy(rng.Float64()*60 - 30)
			e.ScrollTick()
		case 1:
			if e.PageScroll([]int{-1, 1}[rng.Intn(2)]) {
				for f := 0; f < 3; f++ {
					now = now.Add(frameDuration)
					e.Frame(now)
				}
				e.Settle()
			}
		default:
			now = now.Add(frameDuration)
			e.Frame(now)
		}
		order := e.Sequence().Order()
		require.True(t, isRotation(order, 7), "step %d: %v is not a rotation", i, order)
	}
}

func TestRecycle_NoopInDuplicateMode(t *testing.T) {
	e := fourItems(t, Config{Loop: true, Strategy: StrategyDuplicate})
	e.Viewport().Jump(250)
	assert.Equal(t, 0, e.Recycle())
}

// -- Duplicate ----------------------------------------------------------------

func twoItemsDuplicated(t *testing.T, speed float64) *Engine {
	t.Helper()
	cfg := Config{Loop: true, Strategy: StrategyDuplicate, AutoScroll: true, Speed: speed, Gap: 0, PaddingX: 0}
	e := NewEngine(cfg, 2, zaptest.NewLogger(t))
	e.SetViewportWidth(150)
	require.True(t, e.Measure(100, true))
	require.True(t, e.EffectiveLoop())
	return e
}

func TestDuplicate_RendersTwoCopies(t *testing.T) {
	e := twoItemsDuplicated(t, 20)
	assert.Equal(t, 4, e.Sequence().Len())
	assert.Equal(t, 400.0, e.Viewport().Content())
}

func TestDuplicate_OffsetStaysBounded(t *testing.T) {
	e := twoItemsDuplicated(t, 120)
	half := (e.Viewport().Content() - e.Viewport().Width()) / 2

	now := time.Unix(0, 0)
	for i := 0; i < fps*60; i++ {
		now = now.Add(frameDuration)
		e.Frame(now)
		require.GreaterOrEqual(t, e.Offset(), 0.0)
		require.Less(t, e.Offset(), half+1, "frame %d", i)
	}
}

func TestDuplicate_SnapsOncePerCrossing(t *testing.T) {
	e := twoItemsDuplicated(t, 60)
	half := (e.Viewport().Content() - e.Viewport().Width()) / 2

	now := time.Unix(0, 0)
	e.Frame(now)
	prev := e.Offset()
	snaps := 0
	lastSnap := -10
	for i := 1; i <= fps*20; i++ {
		now = now.Add(frameDuration)
		e.Frame(now)
		if e.Offset() < prev {
			snaps++
			assert.InDelta(t, prev+60.0/fps-half, e.Offset(), 1e-6, "snap must subtract exactly half")
			assert.Greater(t, i-lastSnap, 1, "snapped on consecutive frames")
			lastSnap = i
		}
		prev = e.Offset()
	}
	// 20s at 60 cells/s = 1200 cells of travel over a 125-cell half width.
	assert.InDelta(t, 1200/half, float64(snaps), 1)
}

func TestDuplicate_ManualScrollDoesNotRewind(t *testing.T) {
	e := twoItemsDuplicated(t, 20)
	e.ScrollBy(200)
	e.ScrollTick()
	assert.Equal(t, 200.0, e.Offset())
}

// -- Autoplay -----------------------------------------------------------------

func TestAutoplay_FirstFrameHasNoDelta(t *testing.T) {
	e := fourItems(t, Config{AutoScroll: true, Speed: 20})
	e.Frame(time.Unix(1000, 0))
	assert.Equal(t, 0.0, e.Offset())
	e.Frame(time.Unix(1001, 0))
	assert.InDelta(t, 20, e.Offset(), 1e-9)
}

func TestAutoplay_ResumeSkipsPausedTime(t *testing.T) {
	e := fourItems(t, Config{AutoScroll: true, Speed: 20, PauseOnHover: true})
	t0 := time.Unix(0, 0)
	e.Frame(t0)
	e.Frame(t0.Add(time.Second))
	require.InDelta(t, 20, e.Offset(), 1e-9)

	e.SetHovered(true)
	e.Frame(t0.Add(2 * time.Second))
	e.Frame(t0.Add(30 * time.Second))
	require.InDelta(t, 20, e.Offset(), 1e-9, "paused frames must not move")

	e.SetHovered(false)
	e.Frame(t0.Add(31 * time.Second))
	assert.InDelta(t, 20, e.Offset(), 1e-9, "first frame after a pause has no delta")
	e.Frame(t0.Add(32 * time.Second))
	assert.InDelta(t, 40, e.Offset(), 1e-9)
}

func TestAutoplay_HoverIgnoredWithoutPauseOnHover(t *testing.T) {
	e := fourItems(t, Config{AutoScroll: true})
	e.SetHovered(true)
	assert.False(t, e.Paused())
	assert.True(t, e.Running())
}

func TestAutoplay_ReducedMotionNeverStarts(t *testing.T) {
	e := fourItems(t, Config{AutoScroll: true, ReduceMotion: true})
	assert.False(t, e.AutoplayEnabled())
	assert.False(t, e.WantsFrames())
	_, ok := e.StartFrames()
	assert.False(t, ok)
}

func TestAutoplay_NoItemsNeverStarts(t *testing.T) {
	e := NewEngine(Config{AutoScroll: true}, 0, nil)
	e.SetViewportWidth(100)
	assert.False(t, e.AutoplayEnabled())
	assert.False(t, e.WantsFrames())
}

func TestAutoplay_DefaultSpeed(t *testing.T) {
	e := fourItems(t, Config{AutoScroll: true})
	assert.Equal(t, DefaultSpeed, e.Config().Speed)
}

// -- Page navigation ----------------------------------------------------------

func TestPageScroll_RejectsBadDirection(t *testing.T) {
	e := fourItems(t, Config{})
	assert.False(t, e.PageScroll(0))
	assert.False(t, e.PageScroll(2))
}

func TestPageScroll_SuspendsAutoplayUntilSettle(t *testing.T) {
	e := fourItems(t, Config{AutoScroll: true})
	require.False(t, e.Paused())
	require.True(t, e.PageScroll(1))
	assert.True(t, e.Paused())
	assert.Equal(t, BehaviorSmooth, e.Viewport().Behavior())

	e.Settle()
	assert.False(t, e.Paused())
	assert.Equal(t, BehaviorInstant, e.Viewport().Behavior())
}

func TestPageScroll_RestoresExplicitPause(t *testing.T) {
	e := fourItems(t, Config{AutoScroll: true})
	e.SetPaused(true)
	require.True(t, e.PageScroll(1))
	e.Settle()
	assert.True(t, e.Paused())
	e.SetPaused(false)
	assert.False(t, e.Paused())
}

func TestPageScroll_OverlappingCallsRestoreOriginalState(t *testing.T) {
	e := fourItems(t, Config{AutoScroll: true})
	require.True(t, e.PageScroll(1))
	require.True(t, e.PageScroll(-1))
	e.Settle()
	assert.False(t, e.Paused(), "second page scroll must not capture the suspension of the first")
}

func TestPageScroll_ForwardAdvancesOnePage(t *testing.T) {
	cfg := Config{Loop: true, Gap: 0, PaddingX: 0}
	e := NewEngine(cfg, 10, nil)
	e.SetViewportWidth(250)
	require.True(t, e.Measure(100, true))
	e.ScrollTick()

	before := virtualPos(e)
	require.True(t, e.PageScroll(1))
	now := time.Unix(0, 0)
	for i := 0; i < 5; i++ {
		now = now.Add(frameDuration)
		e.Frame(now)
	}
	e.Settle()

	cycle := 10 * e.Step()
	want := math.Mod(before+3*e.Step(), cycle)
	assert.InDelta(t, want, virtualPos(e), 1e-9)
	assert.True(t, isRotation(e.Sequence().Order(), 10))
}

func TestPageScroll_BackwardCreatesHeadroom(t *testing.T) {
	cfg := Config{Loop: true, Gap: 0, PaddingX: 0}
	e := NewEngine(cfg, 10, nil)
	e.SetViewportWidth(250)
	require.True(t, e.Measure(100, true))
	e.ScrollTick()
	require.Equal(t, 100.0, e.Offset())

	before := virtualPos(e)
	require.True(t, e.PageScroll(-1))
	// Three tail-to-head moves happened first, so the target is not clamped.
	assert.Equal(t, 100.0, e.Viewport().Target())
	e.Settle()

	cycle := 10 * e.Step()
	want := math.Mod(before-3*e.Step()+cycle, cycle)
	assert.InDelta(t, want, virtualPos(e), 1e-9)
}

func TestPageScroll_SettleRecyclesOntoBoundary(t *testing.T) {
	cfg := Config{Loop: true, Gap: 0, PaddingX: 0}
	e := NewEngine(cfg, 10, nil)
	e.SetViewportWidth(250)
	require.True(t, e.Measure(100, true))
	e.ScrollTick()

	require.True(t, e.PageScroll(1))
	e.Settle()
	assert.Greater(t, e.Offset(), 1.0)
	assert.LessOrEqual(t, e.Offset(), e.Step()+1)
	assert.Equal(t, 0, e.Recycle())
}

// pageAndSettle page-scrolls e in dir, runs the smooth scroll and settles.
// It fails the test if the rotation done before the scroll moves the picture
// or a frame moves against the page direction.
func pageAndSettle(t *testing.T, e *Engine, dir int) {
	t.Helper()
	cycle := float64(e.Len()) * e.Step()

	prev := virtualPos(e)
	require.True(t, e.PageScroll(dir))
	drift := math.Mod(virtualPos(e)-prev+1.5*cycle, cycle) - cycle/2
	assert.InDelta(t, 0, drift, 1e-9, "rotating before the scroll moved the picture")

	rot := e.Sequence().Rotation()
	off := e.Offset()
	now := time.Unix(0, 0)
	for i := 0; i < 20; i++ {
		now = now.Add(frameDuration)
		e.Frame(now)
		require.Equal(t, rot, e.Sequence().Rotation(), "frame %d rotated while settling", i)
		require.GreaterOrEqual(t, (e.Offset()-off)*float64(dir), -1e-9, "frame %d moved against the page direction", i)
		off = e.Offset()
	}
	e.Settle()
}

func TestPageScroll_SmallOverflowMovesOnePage(t *testing.T) {
	for _, dir := range []int{1, -1} {
		e := fourItems(t, Config{Loop: true})
		e.ScrollTick()
		require.Equal(t, 3, e.ItemsPerPage())

		cycle := 4 * e.Step()
		before := virtualPos(e)
		pageAndSettle(t, e, dir)

		want := math.Mod(before+float64(dir)*3*e.Step()+cycle, cycle)
		assert.InDelta(t, want, virtualPos(e), 1e-9, "dir %d", dir)
		assert.True(t, isRotation(e.Sequence().Order(), 4))
		assert.Greater(t, e.Offset(), 1.0, "dir %d", dir)
		assert.LessOrEqual(t, e.Offset(), e.Step()+1, "dir %d", dir)
	}
}

func TestPageScroll_RepeatedPagesStayExact(t *testing.T) {
	e := fourItems(t, Config{Loop: true})
	e.ScrollTick()
	cycle := 4 * e.Step()
	for i, dir := range []int{1, 1, -1, 1, -1, -1, -1} {
		before := virtualPos(e)
		pageAndSettle(t, e, dir)
		want := math.Mod(before+float64(dir)*3*e.Step()+cycle, cycle)
		assert.InDelta(t, want, virtualPos(e), 1e-9, "page %d", i)
	}
}

func TestScrollTick_DefersRecycleWhileSettling(t *testing.T) {
	cfg := Config{Loop: true, Gap: 0, PaddingX: 0}
	e := NewEngine(cfg, 10, nil)
	e.SetViewportWidth(250)
	require.True(t, e.Measure(100, true))
	require.True(t, e.PageScroll(1))
	assert.Equal(t, 0, e.ScrollTick())
	assert.Equal(t, 0, e.Sequence().Rotation())
}

// -- Scheduling ---------------------------------------------------------------

func TestSchedule_ScrollTicksCoalesce(t *testing.T) {
	e := fourItems(t, Config{})
	gen, ok := e.RequestScrollTick()
	require.True(t, ok)
	_, ok = e.RequestScrollTick()
	assert.False(t, ok, "second request while pending must be coalesced")

	require.True(t, e.AcceptScrollTick(gen))
	assert.False(t, e.AcceptScrollTick(gen), "a tick runs once")
	_, ok = e.RequestScrollTick()
	assert.True(t, ok)
}

func TestSchedule_OneFrameLoop(t *testing.T) {
	e := fourItems(t, Config{AutoScroll: true})
	gen, ok := e.StartFrames()
	require.True(t, ok)
	_, ok = e.StartFrames()
	assert.False(t, ok)
	assert.True(t, e.AcceptFrame(gen))
	assert.False(t, e.AcceptFrame(gen+1))
}

func TestSchedule_FrameLoopStopsWhenIdle(t *testing.T) {
	e := fourItems(t, Config{})
	require.True(t, e.PageScroll(1))
	gen, ok := e.StartFrames()
	require.True(t, ok, "smooth scroll needs frames")

	now := time.Unix(0, 0)
	for i := 0; i < fps*2; i++ {
		require.True(t, e.AcceptFrame(gen))
		now = now.Add(frameDuration)
		e.Frame(now)
		if !e.ContinueFrames() {
			break
		}
	}
	assert.False(t, e.FramesActive())
	assert.False(t, e.Viewport().Animating())
}

func TestSchedule_CloseDropsEverything(t *testing.T) {
	e := fourItems(t, Config{AutoScroll: true})
	frameGen, _ := e.StartFrames()
	tickGen, _ := e.RequestScrollTick()
	require.True(t, e.PageScroll(1))
	settleGen := e.ArmSettle()

	e.Close()
	assert.True(t, e.Closed())
	assert.False(t, e.AcceptFrame(frameGen))
	assert.False(t, e.AcceptScrollTick(tickGen))
	assert.False(t, e.AcceptSettle(settleGen))
	_, ok := e.StartFrames()
	assert.False(t, ok)
	_, ok = e.RequestScrollTick()
	assert.False(t, ok)
}

func TestSchedule_RearmedSettleDropsOldTimer(t *testing.T) {
	e := fourItems(t, Config{})
	require.True(t, e.PageScroll(1))
	first := e.ArmSettle()
	require.True(t, e.PageScroll(1))
	second := e.ArmSettle()
	assert.False(t, e.AcceptSettle(first))
	assert.True(t, e.AcceptSettle(second))
}

func TestReconfigure_CancelsPendingWork(t *testing.T) {
	e := fourItems(t, Config{AutoScroll: true, Loop: true})
	frameGen, _ := e.StartFrames()
	tickGen, _ := e.RequestScrollTick()
	require.True(t, e.PageScroll(1))
	settleGen := e.ArmSettle()

	e.Reconfigure(Config{AutoScroll: true, Loop: true, Strategy: StrategyDuplicate})
	assert.False(t, e.AcceptFrame(frameGen))
	assert.False(t, e.AcceptScrollTick(tickGen))
	assert.False(t, e.AcceptSettle(settleGen))
	assert.False(t, e.Settling())
	assert.False(t, e.Paused(), "suspension from the cancelled page scroll is released")
	assert.Equal(t, LoopDuplicate, e.Mode())
}

func TestWantsFrames_TornDownWithoutViewport(t *testing.T) {
	e := fourItems(t, Config{AutoScroll: true})
	require.True(t, e.WantsFrames())
	e.SetViewportWidth(0)
	assert.False(t, e.WantsFrames())
}

// -- Focus --------------------------------------------------------------------

func TestFocusedSlot(t *testing.T) {
	e := fourItems(t, Config{})
	assert.Equal(t, 0, e.FocusedSlot())
	e.ScrollBy(10)
	assert.Equal(t, 1, e.FocusedSlot())
	e.ScrollBy(90)
	assert.Equal(t, 1, e.FocusedSlot())
}
