package colors

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/shivamrai009/portfolio/internal/theme"
)

// Terminal colors for one theme. Translucent tokens are already
// composited over the background, so every value here is opaque.
type ColorPalette struct {
	Name   string
	IsDark bool

	Background     lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	AccentGradient lipgloss.Color
	Surface        lipgloss.Color
	Border         lipgloss.Color
	Glow1          lipgloss.Color
	Glow2          lipgloss.Color
}

// Builds the terminal palette for a theme palette.
func FromPalette(p theme.Palette) (ColorPalette, error) {
	palette, err := FromTokens(theme.Derive(p))
	if err != nil {
		return ColorPalette{}, errors.Wrapf(err, "palette %q", p.Name)
	}

	palette.Name = p.Name
	palette.IsDark = p.IsDark
	return palette, nil
}

func FromTokens(tokens theme.TokenSet) (ColorPalette, error) {
	background, err := Solid(tokens.Background, "")
	if err != nil {
		return ColorPalette{}, errors.Wrap(err, "background")
	}
	bg := string(background)

	var palette ColorPalette
	palette.Background = background

	slots := []struct {
		name  string
		value string
		into  *lipgloss.Color
	}{
		{"text", tokens.TextMain, &palette.Text},
		{"muted", tokens.TextMuted, &palette.Muted},
		{"accent", tokens.Accent, &palette.Accent},
		{"accent gradient", tokens.AccentGradient, &palette.AccentGradient},
		{"glass background", tokens.GlassBackground, &palette.Surface},
		{"glass border", tokens.GlassBorder, &palette.Border},
		{"glow 1", tokens.Glow1, &palette.Glow1},
		{"glow 2", tokens.Glow2, &palette.Glow2},
	}
	for _, slot := range slots {
		color, err := Solid(slot.value, bg)
		if err != nil {
			return ColorPalette{}, errors.Wrap(err, slot.name)
		}
		*slot.into = color
	}

	return palette, nil
}
