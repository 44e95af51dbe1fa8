package header

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestHeader_Tabs(t *testing.T) {
	m := New("folio", "dev")
	m.SetTabs([]Tab{{Label: "Publications", Count: 3}, {Label: "Awards"}})
	m.SetCount(1, 2)
	m.SetWidth(80)

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "folio")
	assert.Contains(t, out, "Publications 3")
	assert.Contains(t, out, "Awards 2")
	assert.Equal(t, 80, lipgloss.Width(m.View()))
}

func TestHeader_ActiveClamped(t *testing.T) {
	m := New("folio", "")
	m.SetTabs([]Tab{{Label: "A"}, {Label: "B"}})
	m.SetActive(5)
	assert.Equal(t, 1, m.Active())
	m.SetActive(-1)
	assert.Equal(t, 0, m.Active())

	m.SetTabs(nil)
	assert.Equal(t, 0, m.Active())
}

func TestHeaderView_TwoRows(t *testing.T) {
	m := New("folio", "")
	m.SetWidth(20)
	lines := strings.Split(m.HeaderView(), "\n")
	assert.Len(t, lines, m.Height())
	assert.Equal(t, strings.Repeat("─", 20), ansi.Strip(lines[1]))
}
