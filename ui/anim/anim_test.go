package anim

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestSpinner_StartStop(t *testing.T) {
	m := New(Opts{Label: "Loading"})
	assert.Equal(t, "", m.View())

	cmd := m.Start()
	assert.NotNil(t, cmd)
	assert.True(t, m.IsSpinning())
	assert.Contains(t, ansi.Strip(m.View()), "Loading")

	m.Stop()
	assert.Equal(t, "", m.View())
}

func TestSpinner_AdvancesOnOwnTicks(t *testing.T) {
	m := New(Opts{})
	m.Start()
	first := m.View()

	m, cmd := m.Update(TickMsg{ID: m.id})
	assert.NotNil(t, cmd)
	assert.NotEqual(t, first, m.View())

	_, cmd = m.Update(TickMsg{ID: m.id + 1})
	assert.Nil(t, cmd)
}

func TestSpinner_EllipsisCycles(t *testing.T) {
	m := New(Opts{Label: "Loading"})
	m.Start()
	for i := 0; i < ellipsisFrames; i++ {
		m, _ = m.Update(TickMsg{ID: m.id})
	}
	assert.Contains(t, ansi.Strip(m.View()), "Loading.")
}

func TestSpinner_StaticNeverTicks(t *testing.T) {
	m := New(Opts{Label: "Loading", Static: true})
	assert.Nil(t, m.Start())
	assert.True(t, m.IsSpinning())
	assert.Equal(t, "⠋ Loading", ansi.Strip(m.View()))
}
