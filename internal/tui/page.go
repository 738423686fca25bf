package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/shivamrai009/portfolio/internal/content"
	"github.com/shivamrai009/portfolio/internal/tui/colors"
)

const (
	maxContentWidth = 96
	minCardWidth    = 36
	cardGap         = 2
	// Space taken by a card's border and padding.
	cardChromeX = 6
	cardChromeY = 4
)

// A rendered page and the line on which each project card starts.
type page struct {
	lines []string
	cards []int
}

func (p page) String() string {
	return strings.Join(p.lines, "\n")
}

type pageRenderer struct {
	portfolio content.Portfolio
	palette   colors.ColorPalette
	styles    Styles
	width     int
	focused   int
	visits    int
}

func (r pageRenderer) contentWidth() int {
	return max(min(r.width-4, maxContentWidth), 20)
}

func (r pageRenderer) columns() int {
	if r.contentWidth() >= 2*minCardWidth+cardGap {
		return 2
	}
	return 1
}

func (r pageRenderer) render() page {
	var p page
	add := func(block string) {
		p.lines = append(p.lines, strings.Split(block, "\n")...)
	}
	blank := func() { p.lines = append(p.lines, "") }

	width := r.contentWidth()
	s := r.styles

	add(r.glowRule(width))
	blank()
	add(s.Badge.Render(r.palette.Name + " Mode"))
	blank()
	add(colors.Gradient(s.Emphasis, r.portfolio.Profile.Name, r.palette.Accent, r.palette.AccentGradient))
	add(s.Heading.Width(width).Render(r.portfolio.Profile.Headline))
	if highlights := r.portfolio.Profile.Highlights; len(highlights) > 0 {
		parts := make([]string, 0, len(highlights))
		for _, highlight := range highlights {
			parts = append(parts, s.Accent.Render(highlight))
		}
		add(strings.Join(parts, s.Muted.Render(" • ")))
	}
	if bio := r.portfolio.Profile.Bio; bio != "" {
		blank()
		add(s.Muted.Width(width).Render(bio))
	}

	if len(r.portfolio.Links) > 0 {
		blank()
		add(r.links(width))
	}

	blank()
	add(s.Heading.Render("Featured Projects"))
	add(s.Divider.Render(strings.Repeat("─", width)))
	blank()

	columns := r.columns()
	cardWidth := (width - cardGap*(columns-1)) / columns
	projects := r.portfolio.Projects
	for start := 0; start < len(projects); start += columns {
		end := min(start+columns, len(projects))
		top := len(p.lines)
		for range projects[start:end] {
			p.cards = append(p.cards, top)
		}
		add(r.row(start, projects[start:end], cardWidth))
		if end < len(projects) {
			blank()
		}
	}

	blank()
	add(s.Divider.Render(strings.Repeat("─", width)))
	add(r.footer(width))
	add(r.glowRule(width))

	margin := s.Page.Render(strings.Repeat(" ", max((r.width-width)/2, 0)))
	for i, line := range p.lines {
		p.lines[i] = fill(s.Page, margin+line, r.width)
	}
	return p
}

// Pads a line to width with the page background.
func fill(style lipgloss.Style, line string, width int) string {
	missing := width - lipgloss.Width(line)
	if missing <= 0 {
		return line
	}
	return line + style.Render(strings.Repeat(" ", missing))
}

func (r pageRenderer) glowRule(width int) string {
	return colors.Gradient(r.styles.Rule, strings.Repeat("▁", width), r.palette.Glow1, r.palette.Glow2)
}

func (r pageRenderer) links(width int) string {
	s := r.styles

	labelWidth := 0
	for _, link := range r.portfolio.Links {
		labelWidth = max(labelWidth, runewidth.StringWidth(link.Label))
	}

	lines := make([]string, 0, len(r.portfolio.Links))
	for _, link := range r.portfolio.Links {
		label := runewidth.FillRight(link.Label, labelWidth)
		href := strings.TrimPrefix(link.Href, "mailto:")
		href = runewidth.Truncate(href, max(width-labelWidth-4, 8), "…")
		lines = append(lines, s.Accent.Render("→ ")+s.LinkLabel.Render(label)+s.Page.Render("  ")+s.LinkHref.Render(href))
	}
	return strings.Join(lines, "\n")
}

func (r pageRenderer) row(offset int, projects []content.Project, cardWidth int) string {
	bodyWidth := cardWidth - cardChromeX

	bodies := make([]string, len(projects))
	height := 0
	for i, project := range projects {
		bodies[i] = r.cardBody(project, offset+i == r.focused, bodyWidth)
		height = max(height, lipgloss.Height(bodies[i]))
	}

	cards := make([]string, 0, 2*len(projects))
	for i, body := range bodies {
		if missing := height - lipgloss.Height(body); missing > 0 {
			body += strings.Repeat("\n", missing)
		}

		style := r.styles.Card
		if offset+i == r.focused {
			style = r.styles.FocusedCard
		}

		if i > 0 {
			cards = append(cards, r.gap(height+cardChromeY))
		}
		cards = append(cards, style.Width(cardWidth-2).Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (r pageRenderer) gap(height int) string {
	line := r.styles.Page.Render(strings.Repeat(" ", cardGap))
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (r pageRenderer) cardBody(project content.Project, focused bool, width int) string {
	s := r.styles

	title := s.CardTitle
	if focused {
		title = s.FocusedTitle
	}

	tags := make([]string, 0, len(project.Tags))
	for _, tag := range project.Tags {
		tags = append(tags, s.Tag.Render(tag))
	}

	link := strings.TrimPrefix(strings.TrimPrefix(project.Link, "https://"), "http://")

	// Joined by hand: JoinVertical pads with bare spaces, which would punch
	// holes in the card surface.
	return strings.Join([]string{
		s.CardIcon.Render("◆ ") + title.Render(runewidth.Truncate(project.Title, width-2, "…")),
		"",
		s.CardText.Width(width).Render(project.Description),
		"",
		wrapInline(tags, s.CardText.Render(" "), width),
		"",
		s.CardLink.Render(runewidth.Truncate(link, width, "…")),
	}, "\n")
}

func (r pageRenderer) footer(width int) string {
	s := r.styles

	parts := []string{}
	if footer := r.portfolio.Profile.Footer; footer != "" {
		parts = append(parts, footer)
	}
	if r.visits > 0 {
		parts = append(parts, visitsLabel(r.visits))
	}

	return s.Muted.Width(width).Render(strings.Join(parts, " • "))
}

func visitsLabel(visits int) string {
	if visits == 1 {
		return "1 visit"
	}
	return fmt.Sprintf("%d visits", visits)
}

// Lays out pre-rendered items left to right, wrapping onto a new line
// when the next item would overflow width.
func wrapInline(items []string, separator string, width int) string {
	var lines []string
	var line string
	for _, item := range items {
		switch {
		case line == "":
			line = item
		case lipgloss.Width(line)+lipgloss.Width(separator)+lipgloss.Width(item) > width:
			lines = append(lines, line)
			line = item
		default:
			line += separator + item
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
