package colors

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Returns n colors evenly spread between from and to, inclusive.
func Ramp(from, to lipgloss.Color, n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}

	start, err := colorful.Hex(string(from))
	if err != nil {
		start = colorful.Color{}
	}
	end, err := colorful.Hex(string(to))
	if err != nil {
		end = start
	}

	ramp := make([]lipgloss.Color, n)
	ramp[0] = lipgloss.Color(start.Hex())
	if n == 1 {
		return ramp
	}

	for i := 1; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		ramp[i] = lipgloss.Color(start.BlendLuv(end, t).Clamped().Hex())
	}
	ramp[n-1] = lipgloss.Color(end.Hex())
	return ramp
}

// Renders text with its foreground fading from one color to another,
// one step per rune. Everything else comes from base.
func Gradient(base lipgloss.Style, text string, from, to lipgloss.Color) string {
	runes := []rune(text)
	ramp := Ramp(from, to, len(runes))

	var b strings.Builder
	for i, r := range runes {
		b.WriteString(base.Foreground(ramp[i]).Render(string(r)))
	}
	return b.String()
}
