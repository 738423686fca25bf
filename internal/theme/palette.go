package theme

import (
	"fmt"
	"strings"
)

// A named color slot on a palette.
type Token string

const (
	TokenBackground      Token = "bg"
	TokenTextMain        Token = "textMain"
	TokenTextMuted       Token = "textMuted"
	TokenAccent          Token = "accent"
	TokenAccentGradient  Token = "accentGradient"
	TokenGlassBackground Token = "glassBg"
	TokenGlassBorder     Token = "glassBorder"
	TokenGlow1           Token = "glow1"
	TokenGlow2           Token = "glow2"
)

// Every palette has to define all of these.
var RequiredTokens = []Token{
	TokenBackground,
	TokenTextMain,
	TokenTextMuted,
	TokenAccent,
	TokenAccentGradient,
	TokenGlassBackground,
	TokenGlassBorder,
	TokenGlow1,
	TokenGlow2,
}

// Represents one visual theme. A palette cannot be modified once it
// has been constructed, the color map is never handed out directly.
type Palette struct {
	Name   string
	IsDark bool

	colors map[Token]string
}

// Constructs a palette, validating that every required token carries
// a color value.
func NewPalette(name string, isDark bool, colors map[Token]string) (Palette, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Palette{}, &ConfigError{Reason: "palette name must not be empty"}
	}

	copied := make(map[Token]string, len(RequiredTokens))
	for _, token := range RequiredTokens {
		value, ok := colors[token]
		if !ok {
			return Palette{}, &ConfigError{Palette: name, Token: token, Reason: "missing required color"}
		}

		value = strings.TrimSpace(value)
		if value == "" {
			return Palette{}, &ConfigError{Palette: name, Token: token, Reason: "color must not be empty"}
		}
		copied[token] = value
	}

	if len(colors) != len(copied) {
		for token := range colors {
			if _, ok := copied[token]; !ok {
				return Palette{}, &ConfigError{Palette: name, Token: token, Reason: "unknown color token"}
			}
		}
	}

	return Palette{Name: name, IsDark: isDark, colors: copied}, nil
}

// Returns the color assigned to a token, or an empty string for tokens
// that are not part of the palette.
func (p Palette) Color(token Token) string {
	return p.colors[token]
}

// Returns a copy of the color map.
func (p Palette) Colors() map[Token]string {
	out := make(map[Token]string, len(p.colors))
	for token, value := range p.colors {
		out[token] = value
	}
	return out
}

func (p Palette) String() string {
	mode := "light"
	if p.IsDark {
		mode = "dark"
	}
	return fmt.Sprintf("%s (%s)", p.Name, mode)
}
