package theme

// The style tokens a presentation layer binds to visual elements.
type TokenSet struct {
	Background      string
	TextMain        string
	TextMuted       string
	Accent          string
	AccentGradient  string
	GlassBackground string
	GlassBorder     string
	Glow1           string
	Glow2           string
}

// Maps a palette onto its token set.
func Derive(p Palette) TokenSet {
	return TokenSet{
		Background:      p.Color(TokenBackground),
		TextMain:        p.Color(TokenTextMain),
		TextMuted:       p.Color(TokenTextMuted),
		Accent:          p.Color(TokenAccent),
		AccentGradient:  p.Color(TokenAccentGradient),
		GlassBackground: p.Color(TokenGlassBackground),
		GlassBorder:     p.Color(TokenGlassBorder),
		Glow1:           p.Color(TokenGlow1),
		Glow2:           p.Color(TokenGlow2),
	}
}

func (t TokenSet) Map() map[Token]string {
	return map[Token]string{
		TokenBackground:      t.Background,
		TokenTextMain:        t.TextMain,
		TokenTextMuted:       t.TextMuted,
		TokenAccent:          t.Accent,
		TokenAccentGradient:  t.AccentGradient,
		TokenGlassBackground: t.GlassBackground,
		TokenGlassBorder:     t.GlassBorder,
		TokenGlow1:           t.Glow1,
		TokenGlow2:           t.Glow2,
	}
}

// Names of the CSS custom properties, in declaration order.
var CSSVariableNames = []string{
	"--bg-main",
	"--text-main",
	"--text-muted",
	"--accent",
	"--accent-grad",
	"--glass-bg",
	"--glass-border",
}

// Returns the custom property set consumed by component styling on the
// web. The glows are standalone fills and are not part of it.
func (t TokenSet) CSSVariables() map[string]string {
	return map[string]string{
		"--bg-main":      t.Background,
		"--text-main":    t.TextMain,
		"--text-muted":   t.TextMuted,
		"--accent":       t.Accent,
		"--accent-grad":  t.AccentGradient,
		"--glass-bg":     t.GlassBackground,
		"--glass-border": t.GlassBorder,
	}
}
