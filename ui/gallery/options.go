package gallery

import "go.uber.org/zap"

// Option is a functional option for New.
type Option func(*Model)

// WithConfig sets the gallery configuration.
func WithConfig(cfg Config) Option {
	return func(m *Model) { m.cfg = cfg }
}

// WithSize sets the initial width and height in cells.
func WithSize(w, h int) Option {
	return func(m *Model) {
		m.width = w
		m.height = h
	}
}

// WithOrigin sets where the gallery is drawn on screen, used to hit-test
// mouse events.
func WithOrigin(x, y int) Option {
	return func(m *Model) {
		m.x = x
		m.y = y
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(m *Model) {
		if log != nil {
			m.log = log
		}
	}
}
