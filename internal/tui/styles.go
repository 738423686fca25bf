package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shivamrai009/portfolio/internal/tui/colors"
	"github.com/shivamrai009/portfolio/internal/tui/components/help"
)

// Styles derived from the active palette. Everything that is drawn on the
// page carries the page background, everything inside a card carries the
// card surface, so nested resets never leave holes in the fill.
type Styles struct {
	Page     lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Emphasis lipgloss.Style
	Accent   lipgloss.Style
	Heading  lipgloss.Style
	Badge    lipgloss.Style
	Rule     lipgloss.Style
	Divider  lipgloss.Style

	LinkLabel lipgloss.Style
	LinkHref  lipgloss.Style

	Card         lipgloss.Style
	FocusedCard  lipgloss.Style
	CardIcon     lipgloss.Style
	CardTitle    lipgloss.Style
	FocusedTitle lipgloss.Style
	CardText     lipgloss.Style
	CardMuted    lipgloss.Style
	CardLink     lipgloss.Style
	Tag          lipgloss.Style

	Help help.Styles
}

func NewStyles(renderer *lipgloss.Renderer, palette colors.ColorPalette) Styles {
	page := renderer.NewStyle().Background(palette.Background)
	surface := renderer.NewStyle().Background(palette.Surface)

	card := surface.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Border).
		BorderBackground(palette.Background).
		Padding(1, 2)

	return Styles{
		Page:     page.Foreground(palette.Text),
		Text:     page.Foreground(palette.Text),
		Muted:    page.Foreground(palette.Muted),
		Emphasis: page.Foreground(palette.Text).Bold(true),
		Accent:   page.Foreground(palette.Accent),
		Heading:  page.Foreground(palette.Text).Bold(true),
		Badge: surface.
			Foreground(palette.Accent).
			Padding(0, 1),
		Rule:    page,
		Divider: page.Foreground(palette.Border),

		LinkLabel: page.Foreground(palette.Text).Bold(true),
		LinkHref:  page.Foreground(palette.Muted).Underline(true),

		Card:         card,
		FocusedCard:  card.BorderForeground(palette.Accent),
		CardIcon:     surface.Foreground(palette.Accent).Bold(true),
		CardTitle:    surface.Foreground(palette.Text).Bold(true),
		FocusedTitle: surface.Foreground(palette.Accent).Bold(true),
		CardText:     surface.Foreground(palette.Text),
		CardMuted:    surface.Foreground(palette.Muted),
		CardLink:     surface.Foreground(palette.Muted).Underline(true),
		Tag: renderer.
			NewStyle().
			Background(palette.Border).
			Foreground(palette.Muted).
			Padding(0, 1),

		Help: help.Styles{
			Key:       page.Foreground(palette.Accent).Bold(true),
			Desc:      page.Foreground(palette.Muted),
			Separator: page.Foreground(palette.Border),
		},
	}
}
