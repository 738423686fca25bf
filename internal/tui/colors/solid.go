package colors

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

var rgbaPattern = regexp.MustCompile(
	`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*(\d*\.?\d+)\s*)?\)$`,
)

// Turns a css color into something a terminal can draw. Hex colors are
// normalized, rgb()/rgba() colors are composited over the opaque color
// given in over. over may be empty for values that are already opaque.
func Solid(value string, over string) (lipgloss.Color, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	if strings.HasPrefix(value, "#") {
		c, err := colorful.Hex(value)
		if err != nil {
			return "", errors.Errorf("invalid hex color %q", value)
		}
		return lipgloss.Color(c.Hex()), nil
	}

	matches := rgbaPattern.FindStringSubmatch(value)
	if matches == nil {
		return "", errors.Errorf("unsupported color %q", value)
	}

	var channels [3]float64
	for i := range channels {
		n, _ := strconv.Atoi(matches[i+1])
		if n > 255 {
			return "", errors.Errorf("channel out of range in %q", value)
		}
		channels[i] = float64(n) / 255
	}
	fg := colorful.Color{R: channels[0], G: channels[1], B: channels[2]}

	alpha := 1.0
	if matches[4] != "" {
		parsed, err := strconv.ParseFloat(matches[4], 64)
		if err != nil || parsed > 1 {
			return "", errors.Errorf("alpha out of range in %q", value)
		}
		alpha = parsed
	}

	if alpha == 1 {
		return lipgloss.Color(fg.Hex()), nil
	}

	if over == "" {
		return "", errors.Errorf("translucent color %q needs a background", value)
	}
	base, err := colorful.Hex(strings.ToLower(over))
	if err != nil {
		return "", errors.Errorf("invalid background color %q", over)
	}

	return lipgloss.Color(base.BlendRgb(fg, alpha).Clamped().Hex()), nil
}
