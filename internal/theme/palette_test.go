package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validColors() map[Token]string {
	return map[Token]string{
		TokenBackground:      "#000000",
		TokenTextMain:        "#ffffff",
		TokenTextMuted:       "#888888",
		TokenAccent:          "#22d3ee",
		TokenAccentGradient:  "#c084fc",
		TokenGlassBackground: "rgba(255, 255, 255, 0.05)",
		TokenGlassBorder:     "rgba(255, 255, 255, 0.1)",
		TokenGlow1:           "rgba(147, 51, 234, 0.2)",
		TokenGlow2:           "rgba(8, 145, 178, 0.1)",
	}
}

func TestNewPaletteMissingTokenFails(t *testing.T) {
	for _, token := range RequiredTokens {
		t.Run(string(token), func(t *testing.T) {
			colors := validColors()
			delete(colors, token)

			_, err := NewPalette("Broken", false, colors)

			var configErr *ConfigError
			require.True(t, errors.As(err, &configErr), "got %v", err)
			assert.Equal(t, "Broken", configErr.Palette)
			assert.Equal(t, token, configErr.Token)
		})
	}
}

func TestNewPaletteRejectsBlankValuesAndNames(t *testing.T) {
	colors := validColors()
	colors[TokenAccent] = "   "
	_, err := NewPalette("Blank", false, colors)
	var configErr *ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, TokenAccent, configErr.Token)

	_, err = NewPalette(" ", true, validColors())
	require.True(t, errors.As(err, &configErr))
	assert.Contains(t, err.Error(), "name")
}

func TestNewPaletteRejectsUnknownTokens(t *testing.T) {
	colors := validColors()
	colors["shadow"] = "#111111"

	_, err := NewPalette("Extra", false, colors)

	var configErr *ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, Token("shadow"), configErr.Token)
}

func TestPaletteIsImmutable(t *testing.T) {
	colors := validColors()
	palette, err := NewPalette("Mine", true, colors)
	require.NoError(t, err)

	colors[TokenBackground] = "#123456"
	palette.Colors()[TokenBackground] = "#654321"

	assert.Equal(t, "#000000", palette.Color(TokenBackground))
}

func TestMalformedSetDoesNotProduceEngine(t *testing.T) {
	good := MustBuiltin()

	colors := validColors()
	delete(colors, TokenGlow2)
	bad, err := NewPalette("Half Done", false, colors)
	require.Error(t, err)

	engine, err := NewEngine(append(good[:1:1], bad)...)
	assert.Nil(t, engine)
	assert.Error(t, err)
}

func TestConfigErrorMessages(t *testing.T) {
	assert.Equal(t, `theme config: palette "A": token "bg": missing required color`,
		(&ConfigError{Palette: "A", Token: TokenBackground, Reason: "missing required color"}).Error())
	assert.Equal(t, `theme config: palette "A": duplicate palette name`,
		(&ConfigError{Palette: "A", Reason: "duplicate palette name"}).Error())
	assert.Equal(t, "theme config: at least one palette is required",
		(&ConfigError{Reason: "at least one palette is required"}).Error())
}

func TestBuiltinHasOneDarkPalette(t *testing.T) {
	palettes, err := Builtin()
	require.NoError(t, err)
	require.Len(t, palettes, 4)

	dark := 0
	for _, p := range palettes {
		if p.IsDark {
			dark++
		}
	}
	assert.Equal(t, 1, dark)
	assert.True(t, palettes[0].IsDark)
	assert.Equal(t, "Dark Void (dark)", palettes[0].String())
}
