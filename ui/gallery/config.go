package gallery

import "time"

// Strategy selects how a looping gallery produces the illusion of endless
// content.
type Strategy string

const (
	// StrategyRecycle rotates items between the ends of the strip as the
	// viewport scrolls past them.
	StrategyRecycle Strategy = "recycle"
	// StrategyDuplicate renders the items twice and rewinds at the seam.
	StrategyDuplicate Strategy = "duplicate"
)

// LoopMode is the loop behavior derived from Config.Loop and Config.Strategy.
type LoopMode int

const (
	LoopNone LoopMode = iota
	LoopRecycle
	LoopDuplicate
)

func (m LoopMode) String() string {
	switch m {
	case LoopRecycle:
		return "recycle"
	case LoopDuplicate:
		return "duplicate"
	default:
		return "none"
	}
}

const (
	DefaultSpeed    = 20.0
	DefaultGap      = 24
	DefaultPaddingX = 40

	// SettleDelay is how long a page scroll keeps autoplay suspended and the
	// smooth behavior active before positions are normalized.
	SettleDelay = 360 * time.Millisecond

	fps           = 30
	frameDuration = time.Second / fps
)

// Config is the gallery's configuration surface.
type Config struct {
	AutoScroll   bool
	Speed        float64 // cells per second
	PauseOnHover bool
	Loop         bool
	Strategy     Strategy
	Gap          int // blank cells between consecutive items
	PaddingX     int // blank cells before the first and after the last item

	// ReduceMotion keeps autoplay from ever starting.
	ReduceMotion bool

	// AriaLabel is rendered as the gallery title. Class and ItemClass pick
	// named styles for the frame and for each item slot.
	AriaLabel string
	Class     string
	ItemClass string
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Speed:    DefaultSpeed,
		Strategy: StrategyRecycle,
		Gap:      DefaultGap,
		PaddingX: DefaultPaddingX,
	}
}

// Mode derives the loop mode. Unknown strategies fall back to recycle.
func (c Config) Mode() LoopMode {
	if !c.Loop {
		return LoopNone
	}
	if c.Strategy == StrategyDuplicate {
		return LoopDuplicate
	}
	return LoopRecycle
}

func (c Config) normalized() Config {
	if c.Speed <= 0 {
		c.Speed = DefaultSpeed
	}
	if c.Gap < 0 {
		c.Gap = 0
	}
	if c.PaddingX < 0 {
		c.PaddingX = 0
	}
	if c.Strategy == "" {
		c.Strategy = StrategyRecycle
	}
	return c
}
