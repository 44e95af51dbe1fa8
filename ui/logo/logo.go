// Package logo renders the folio wordmark shown while loading and on errors.
package logo

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/miosa/folio/style"
)

// Full is the block-letter wordmark.
const Full = `┏━╸┏━┓╻  ╻┏━┓
┣╸ ┃ ┃┃  ┃┃ ┃
╹  ┗━┛┗━╸╹┗━┛`

// Compact is used when the terminal is too narrow for Full.
const Compact = "▦ folio"

// fullMinWidth is the narrowest terminal that gets the full wordmark.
const fullMinWidth = 30

// Render returns the wordmark for width with the theme gradient applied to
// each row.
func Render(width int) string {
	if width < fullMinWidth {
		return style.ApplyBoldForegroundGrad(Compact)
	}
	lines := strings.Split(Full, "\n")
	for i, line := range lines {
		lines[i] = style.GradientText(line, style.GradColorA, style.GradColorB, false)
	}
	return strings.Join(lines, "\n")
}

// Banner is the wordmark with a tagline and version, indented by two cells.
func Banner(width int, version string) string {
	if version != "" && !strings.HasPrefix(version, "v") && version != "dev" {
		version = "v" + version
	}
	tag := lipgloss.NewStyle().Foreground(style.Muted).Italic(true).Render("research portfolio browser")
	body := Render(width) + "\n" + tag
	if version != "" {
		body += "  " + lipgloss.NewStyle().Foreground(style.Muted).Render(version)
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(body)
}
