package help

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const (
	separator = " • "
	ellipsis  = " …"
)

type Styles struct {
	Key       lipgloss.Style
	Desc      lipgloss.Style
	Separator lipgloss.Style
}

// Renders the key hints on a single line no wider than width. Hints that do
// not fit are replaced by an ellipsis. A width of zero means unbounded.
func View(bindings []key.Binding, styles Styles, width int) string {
	line := ""
	used := 0

	for _, binding := range bindings {
		if !binding.Enabled() {
			continue
		}

		hint := binding.Help()
		if hint.Key == "" || hint.Desc == "" {
			continue
		}

		item := styles.Key.Render(hint.Key) + styles.Desc.Render(" "+hint.Desc)
		if used > 0 {
			item = styles.Separator.Render(separator) + item
		}

		next := used + lipgloss.Width(item)
		if width > 0 && next > width {
			if used+lipgloss.Width(ellipsis) <= width {
				line += styles.Separator.Render(ellipsis)
			}
			break
		}

		line += item
		used = next
	}

	return line
}
