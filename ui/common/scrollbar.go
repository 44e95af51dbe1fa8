// Horizontal scroll indicator for galleries.

package common

import (
	"strings"

	"github.com/miosa/folio/style"
)

const (
	scrollTrackChar = "─"
	scrollThumbChar = "━"
)

// ScrollbarModel tracks the dimensions needed to render a horizontal
// scrollbar under a strip.
type ScrollbarModel struct {
	viewportWidth int
	contentWidth  int
	offset        int
}

// NewScrollbar creates a ScrollbarModel with the given dimensions.
func NewScrollbar(viewportWidth, contentWidth, offset int) ScrollbarModel {
	return ScrollbarModel{
		viewportWidth: viewportWidth,
		contentWidth:  contentWidth,
		offset:        offset,
	}
}

// SetDimensions updates the scrollbar dimensions.
func (s *ScrollbarModel) SetDimensions(viewportWidth, contentWidth, offset int) {
	s.viewportWidth = viewportWidth
	s.contentWidth = contentWidth
	s.offset = offset
}

// Thumb returns the start column and width of the thumb. The width is 0 when
// the content fits within the viewport.
func (s ScrollbarModel) Thumb() (start, width int) {
	vw := s.viewportWidth
	cw := s.contentWidth
	if vw <= 0 || cw <= vw {
		return 0, 0
	}

	width = vw * vw / cw
	if width < 1 {
		width = 1
	}
	if width > vw {
		width = vw
	}

	scrollable := cw - vw
	if scrollable > 0 {
		start = (s.offset * (vw - width)) / scrollable
	}
	if start+width > vw {
		start = vw - width
	}
	if start < 0 {
		start = 0
	}
	return start, width
}

// View renders the track and thumb as a single row. When the content fits
// within the viewport the returned string is empty.
func (s ScrollbarModel) View() string {
	start, width := s.Thumb()
	if width == 0 {
		return ""
	}
	return style.ScrollbarTrack.Render(strings.Repeat(scrollTrackChar, start)) +
		style.ScrollbarThumb.Render(strings.Repeat(scrollThumbChar, width)) +
		style.ScrollbarTrack.Render(strings.Repeat(scrollTrackChar, s.viewportWidth-start-width))
}

// HScrollbar is a convenience function that builds a one-shot scrollbar
// string without creating a persistent model.
func HScrollbar(viewportWidth, contentWidth, offset int) string {
	return NewScrollbar(viewportWidth, contentWidth, offset).View()
}
