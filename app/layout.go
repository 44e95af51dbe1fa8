package app

import "github.com/miosa/folio/ui/card"

const (
	// minCardWidth keeps at least a readable title on narrow terminals.
	minCardWidth = card.MinWidth

	// galleryChrome is the gallery's title row plus its position indicator.
	galleryChrome = 2
)

// Layout holds computed dimensions for the current frame.
type Layout struct {
	TermWidth     int
	TermHeight    int
	HeaderHeight  int // tab bar + separator
	GalleryY      int // first row of the gallery
	GalleryHeight int
	CardWidth     int
	DetailHeight  int // 0 when the detail pane is hidden or does not fit
	FooterHeight  int // status bar + help (+ filter input)
}

// ComputeLayout calculates the layout dimensions.
//
// The gallery always gets one card row plus its chrome; the detail pane takes
// whatever is left between the gallery and the footer.
func ComputeLayout(termW, termH, cardWidth int, showDetail, filtering bool) Layout {
	l := Layout{
		TermWidth:    termW,
		TermHeight:   termH,
		HeaderHeight: 2,
		FooterHeight: 2,
	}
	if filtering {
		l.FooterHeight++
	}
	l.GalleryY = l.HeaderHeight
	l.GalleryHeight = card.Rows + galleryChrome

	// Cards never get wider than the strip between the page buttons.
	l.CardWidth = min(max(cardWidth, minCardWidth), max(termW-4, minCardWidth))

	if showDetail {
		l.DetailHeight = max(termH-l.HeaderHeight-l.GalleryHeight-l.FooterHeight, 0)
	}
	return l
}
