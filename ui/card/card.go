// Package card renders portfolio entries as fixed-size gallery cards and as
// a markdown detail pane.
package card

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/miosa/folio/markdown"
	"github.com/miosa/folio/portfolio"
	"github.com/miosa/folio/style"
	"github.com/miosa/folio/ui/common"
)

// Rows is the height of every card including its border.
const Rows = 7

// MinWidth is the narrowest card that still shows a title.
const MinWidth = 12

// chrome is the border plus horizontal padding of style.Card.
const chrome = 4

// Render draws e as a bordered card exactly width cells wide and Rows tall.
func Render(e portfolio.Entry, width int) string {
	return render(e, width, style.Card)
}

// RenderFocused is Render with the focus border.
func RenderFocused(e portfolio.Entry, width int) string {
	return render(e, width, style.CardFocus)
}

func render(e portfolio.Entry, width int, frame lipgloss.Style) string {
	inner := max(width, MinWidth) - chrome

	head := e.Kind.Label()
	if e.Year > 0 {
		head = style.CardYear.Render(strconv.Itoa(e.Year)) + "  " + style.CardMeta.Render(head)
	} else {
		head = style.CardMeta.Render(head)
	}

	title := titleLines(e.Title, inner, 2)
	meta := firstNonEmpty(e.Venue, e.Subtitle)

	lines := []string{
		common.FitWidth(head, inner),
		common.FitWidth(style.CardTitle.Render(title[0]), inner),
		common.FitWidth(style.CardTitle.Render(title[1]), inner),
		common.FitWidth(style.CardMeta.Render(ansi.Truncate(meta, inner, "…")), inner),
		common.FitWidth(style.CardTag.Render(ansi.Truncate(tagLine(e.Tags), inner, "…")), inner),
	}
	return frame.Render(strings.Join(lines, "\n"))
}

// titleLines word-wraps title into exactly n lines, ellipsizing the last one
// if the title is longer.
func titleLines(title string, width, n int) []string {
	wrapped := strings.Split(ansi.Wordwrap(title, width, ""), "\n")
	out := make([]string, n)
	for i := range out {
		if i < len(wrapped) {
			out[i] = ansi.Truncate(wrapped[i], width, "…")
		}
	}
	if len(wrapped) > n {
		last := strings.TrimRight(out[n-1], " ")
		if ansi.StringWidth(last) >= width {
			last = ansi.Truncate(last, width-1, "")
		}
		out[n-1] = last + "…"
	}
	return out
}

func tagLine(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = "#" + t
	}
	return strings.Join(parts, " ")
}

// Detail renders the focused entry with its summary as markdown.
func Detail(e portfolio.Entry, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", e.Title)

	var meta []string
	for _, s := range []string{e.Subtitle, e.Venue, e.Date} {
		if s != "" {
			meta = append(meta, s)
		}
	}
	if e.Date == "" && e.Year > 0 {
		meta = append(meta, strconv.Itoa(e.Year))
	}
	if len(meta) > 0 {
		fmt.Fprintf(&b, "*%s*\n\n", strings.Join(meta, " · "))
	}
	if e.Summary != "" {
		b.WriteString(e.Summary)
		b.WriteString("\n\n")
	}
	if len(e.Tags) > 0 {
		fmt.Fprintf(&b, "%s\n\n", tagLine(e.Tags))
	}
	if e.URL != "" {
		fmt.Fprintf(&b, "<%s>\n", e.URL)
	}
	return markdown.RenderWidth(b.String(), width)
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
