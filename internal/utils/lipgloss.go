package utils

import "github.com/charmbracelet/lipgloss"

func Box(renderer *lipgloss.Renderer, width, height int, xCentered bool, yCentered bool) lipgloss.Style {
	style := renderer.NewStyle().Width(width).Height(height)

	if xCentered {
		style = style.AlignHorizontal(lipgloss.Center)
	}
	if yCentered {
		style = style.AlignVertical(lipgloss.Center)
	}

	return style
}
