package theme

type definition struct {
	name   string
	isDark bool
	colors map[Token]string
}

// Dark first, then the light loop.
var builtin = []definition{
	{
		name:   "Dark Void",
		isDark: true,
		colors: map[Token]string{
			TokenBackground:      "#020617",
			TokenTextMain:        "#e2e8f0",
			TokenTextMuted:       "#94a3b8",
			TokenAccent:          "#22d3ee",
			TokenAccentGradient:  "#c084fc",
			TokenGlassBackground: "rgba(255, 255, 255, 0.05)",
			TokenGlassBorder:     "rgba(255, 255, 255, 0.1)",
			TokenGlow1:           "rgba(147, 51, 234, 0.2)",
			TokenGlow2:           "rgba(8, 145, 178, 0.1)",
		},
	},
	{
		name: "Daylight Blue",
		colors: map[Token]string{
			TokenBackground:      "#f8fafc",
			TokenTextMain:        "#0f172a",
			TokenTextMuted:       "#475569",
			TokenAccent:          "#2563eb",
			TokenAccentGradient:  "#7c3aed",
			TokenGlassBackground: "rgba(0, 0, 0, 0.04)",
			TokenGlassBorder:     "rgba(0, 0, 0, 0.08)",
			TokenGlow1:           "rgba(59, 130, 246, 0.15)",
			TokenGlow2:           "rgba(139, 92, 246, 0.15)",
		},
	},
	{
		name: "Sunset Warmth",
		colors: map[Token]string{
			TokenBackground:      "#fff7ed",
			TokenTextMain:        "#431407",
			TokenTextMuted:       "#9a3412",
			TokenAccent:          "#ea580c",
			TokenAccentGradient:  "#db2777",
			TokenGlassBackground: "rgba(67, 20, 7, 0.04)",
			TokenGlassBorder:     "rgba(67, 20, 7, 0.08)",
			TokenGlow1:           "rgba(234, 88, 12, 0.15)",
			TokenGlow2:           "rgba(219, 39, 119, 0.15)",
		},
	},
	{
		name: "Neo Mint",
		colors: map[Token]string{
			TokenBackground:      "#f0fdf4",
			TokenTextMain:        "#064e3b",
			TokenTextMuted:       "#166534",
			TokenAccent:          "#059669",
			TokenAccentGradient:  "#0d9488",
			TokenGlassBackground: "rgba(6, 78, 59, 0.04)",
			TokenGlassBorder:     "rgba(6, 78, 59, 0.08)",
			TokenGlow1:           "rgba(16, 185, 129, 0.15)",
			TokenGlow2:           "rgba(20, 184, 166, 0.15)",
		},
	},
}

// Constructs the built-in palettes in cycling order.
func Builtin() ([]Palette, error) {
	palettes := make([]Palette, 0, len(builtin))
	for _, def := range builtin {
		palette, err := NewPalette(def.name, def.isDark, def.colors)
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, palette)
	}
	return palettes, nil
}

// Like Builtin, but panics. Only meant for process startup.
func MustBuiltin() []Palette {
	palettes, err := Builtin()
	if err != nil {
		panic(err)
	}
	return palettes
}

// Creates an engine over the built-in palettes.
func NewBuiltinEngine() (*Engine, error) {
	palettes, err := Builtin()
	if err != nil {
		return nil, err
	}
	return NewEngine(palettes...)
}
