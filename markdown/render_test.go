package markdown

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRenderWidth_Empty(t *testing.T) {
	assert.Equal(t, "  ", RenderWidth("  ", 40))
}

func TestRenderWidth_KeepsText(t *testing.T) {
	out := ansi.Strip(RenderWidth("Some **bold** words about galleries.", 40))
	assert.Contains(t, out, "bold")
	assert.Contains(t, out, "galleries")
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestRenderWidth_Wraps(t *testing.T) {
	md := strings.Repeat("word ", 40)
	out := ansi.Strip(RenderWidth(md, 30))
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(strings.TrimRight(line, " ")), 30)
	}
}
