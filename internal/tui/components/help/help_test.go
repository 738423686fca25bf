package help

import (
	"io"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func plainStyles() Styles {
	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(termenv.Ascii)

	return Styles{
		Key:       renderer.NewStyle().Bold(true),
		Desc:      renderer.NewStyle(),
		Separator: renderer.NewStyle(),
	}
}

func bindings() []key.Binding {
	disabled := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"))
	disabled.SetEnabled(false)

	return []key.Binding{
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		key.NewBinding(key.WithKeys("esc")),
		disabled,
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func TestViewJoinsHints(t *testing.T) {
	assert.Equal(t, "t theme • q quit", View(bindings(), plainStyles(), 0))
}

func TestViewTruncatesToWidth(t *testing.T) {
	assert.Equal(t, "t theme • q quit", View(bindings(), plainStyles(), 16))

	line := View(bindings(), plainStyles(), 12)
	assert.Equal(t, "t theme …", line)
	assert.LessOrEqual(t, lipgloss.Width(line), 12)

	assert.Equal(t, "", View(bindings(), plainStyles(), 1))
}

func TestViewEmpty(t *testing.T) {
	assert.Empty(t, View(nil, plainStyles(), 80))
}
