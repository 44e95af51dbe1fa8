package style

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors, initialized to dark theme defaults. Updated via SetTheme().
var (
	Primary   color.Color = lipgloss.Color("#7C3AED")
	Secondary color.Color = lipgloss.Color("#06B6D4")
	Success   color.Color = lipgloss.Color("#22C55E")
	Warning   color.Color = lipgloss.Color("#F59E0B")
	Error     color.Color = lipgloss.Color("#EF4444")
	Muted     color.Color = lipgloss.Color("#6B7280")
	Dim       color.Color = lipgloss.Color("#374151")
	Border    color.Color = lipgloss.Color("#4B5563")

	CardBorderColor      color.Color = lipgloss.Color("#374151")
	CardBorderFocusColor color.Color = lipgloss.Color("#06B6D4")
	SelectionBgColor     color.Color = lipgloss.Color("#312E81")

	// Gradient endpoints, dark theme violet→cyan by default
	GradColorA color.Color = lipgloss.Color("#7C3AED")
	GradColorB color.Color = lipgloss.Color("#06B6D4")
)

// Base styles, rebuilt when the theme changes via rebuildStyles().
var (
	Bold      lipgloss.Style
	Faint     lipgloss.Style
	ErrorText lipgloss.Style
	Hint      lipgloss.Style

	// Header / tabs
	HeaderSeparator lipgloss.Style
	TabActive       lipgloss.Style
	TabInactive     lipgloss.Style

	// Gallery
	GalleryTitle         lipgloss.Style
	GalleryStatus        lipgloss.Style
	GalleryArrow         lipgloss.Style
	GalleryArrowDisabled lipgloss.Style
	ScrollbarThumb       lipgloss.Style
	ScrollbarTrack       lipgloss.Style

	// Cards
	Card       lipgloss.Style
	CardFocus  lipgloss.Style
	CardTitle  lipgloss.Style
	CardMeta   lipgloss.Style
	CardTag    lipgloss.Style
	CardYear   lipgloss.Style
	DetailPane lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusError lipgloss.Style
)

// classes maps the names accepted by gallery Class / ItemClass to styles.
var classes map[string]lipgloss.Style

func init() {
	rebuildStyles()
}

// SetTheme applies a named theme, updating all color vars and rebuilding styles.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		return false
	}
	CurrentThemeName = name
	Primary = t.Primary
	Secondary = t.Secondary
	Success = t.Success
	Warning = t.Warning
	Error = t.Error
	Muted = t.Muted
	Dim = t.Dim
	Border = t.Border
	CardBorderColor = t.CardBorder
	CardBorderFocusColor = t.CardBorderFocus
	SelectionBgColor = t.SelectionBg
	GradColorA = t.GradA
	GradColorB = t.GradB
	rebuildStyles()
	return true
}

// IsDark returns whether the current theme is dark.
func IsDark() bool {
	return CurrentThemeName != "light"
}

// Class returns the named presentation class. Unknown or empty names yield
// an empty style.
func Class(name string) lipgloss.Style {
	if s, ok := classes[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

func rebuildStyles() {
	Bold = lipgloss.NewStyle().Bold(true)
	Faint = lipgloss.NewStyle().Foreground(Muted)
	ErrorText = lipgloss.NewStyle().Foreground(Error).Bold(true)
	Hint = lipgloss.NewStyle().Foreground(Dim)

	HeaderSeparator = lipgloss.NewStyle().Foreground(Dim)
	TabActive = lipgloss.NewStyle().Foreground(Primary).Bold(true).Underline(true)
	TabInactive = lipgloss.NewStyle().Foreground(Muted)

	GalleryTitle = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	GalleryStatus = lipgloss.NewStyle().Foreground(Muted)
	GalleryArrow = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	GalleryArrowDisabled = lipgloss.NewStyle().Foreground(Dim)
	ScrollbarThumb = lipgloss.NewStyle().Foreground(Primary)
	ScrollbarTrack = lipgloss.NewStyle().Foreground(Dim)

	Card = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(CardBorderColor).Padding(0, 1)
	CardFocus = Card.BorderForeground(CardBorderFocusColor)
	CardTitle = lipgloss.NewStyle().Bold(true)
	CardMeta = lipgloss.NewStyle().Foreground(Muted)
	CardTag = lipgloss.NewStyle().Foreground(Secondary)
	CardYear = lipgloss.NewStyle().Foreground(Warning).Bold(true)
	DetailPane = lipgloss.NewStyle().BorderTop(true).BorderStyle(lipgloss.NormalBorder()).BorderForeground(Dim)

	StatusBar = lipgloss.NewStyle().Foreground(Muted).PaddingLeft(1)
	StatusError = lipgloss.NewStyle().Foreground(Error).PaddingLeft(1)

	classes = map[string]lipgloss.Style{
		"muted":     Faint,
		"accent":    lipgloss.NewStyle().Foreground(Secondary),
		"highlight": lipgloss.NewStyle().Background(SelectionBgColor),
		"bold":      Bold,
	}
}
