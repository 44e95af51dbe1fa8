// Package markdown renders entry summaries with glamour.
package markdown

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/miosa/folio/style"
)

type rendererKey struct {
	width int
	style string
}

var (
	mu        sync.Mutex
	renderers = map[rendererKey]*glamour.TermRenderer{}
)

// standardStyle picks the glamour style for the active theme. Auto-detection
// would query the terminal while the UI owns it.
func standardStyle() string {
	if os.Getenv("NO_COLOR") != "" {
		return "notty"
	}
	if style.IsDark() {
		return "dark"
	}
	return "light"
}

func renderer(width int) (*glamour.TermRenderer, error) {
	key := rendererKey{width: width, style: standardStyle()}
	mu.Lock()
	defer mu.Unlock()
	if r, ok := renderers[key]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(key.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderers[key] = r
	return r, nil
}

// Render converts markdown text to styled ANSI output at a default width.
func Render(md string) string {
	return RenderWidth(md, 100)
}

// RenderWidth renders md wrapped to width. Falls back to the raw text if the
// renderer is unavailable.
func RenderWidth(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return md
	}
	if width < 10 {
		width = 10
	}
	r, err := renderer(width)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	// glamour adds surrounding newlines; trim for inline display.
	return strings.Trim(out, "\n")
}
