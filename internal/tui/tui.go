package tui

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shivamrai009/portfolio/internal/content"
	"github.com/shivamrai009/portfolio/internal/theme"
	"github.com/shivamrai009/portfolio/internal/tui/colors"
	"github.com/shivamrai009/portfolio/internal/tui/components/help"
	"github.com/shivamrai009/portfolio/internal/utils"
)

// Below this the page is not drawn.
const (
	minWidth  = 40
	minHeight = 10
)

// Wakes the model after the engine it watches switched palettes. It carries
// no palette: several switches may collapse into one message, so Update
// always reads the current palette back from the engine.
type ThemeChangedMsg struct{}

type Options struct {
	// Shown in the footer when positive.
	Visits int
}

// Represents the portfolio page.
type Model struct {
	engine    *theme.Engine
	portfolio content.Portfolio
	options   Options

	changes chan struct{}
	stop    func()

	viewport viewport.Model
	focused  int
	cards    []int

	width  int
	height int

	palette colors.ColorPalette
	styles  Styles

	KeyMap   KeyMap
	Renderer *lipgloss.Renderer

	quitting bool
}

func NewModel(engine *theme.Engine, portfolio content.Portfolio, renderer *lipgloss.Renderer, options Options) (Model, error) {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	palette, err := colors.FromPalette(engine.Current())
	if err != nil {
		return Model{}, err
	}

	changes := make(chan struct{}, 1)
	unsubscribe := engine.Subscribe(func(theme.Palette) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	initialWidth := 80
	initialHeight := 24

	m := Model{
		engine:    engine,
		portfolio: portfolio,
		options:   options,

		changes: changes,
		stop: sync.OnceFunc(func() {
			unsubscribe()
			close(changes)
		}),

		viewport: viewport.New(initialWidth, initialHeight-2),

		width:  initialWidth,
		height: initialHeight,

		palette: palette,
		styles:  NewStyles(renderer, palette),

		KeyMap:   DefaultKeyMap(),
		Renderer: renderer,
	}
	m.render()
	return m, nil
}

// Detaches the model from the engine. Safe to call more than once.
func (m Model) Close() {
	m.stop()
}

func (m Model) Init() tea.Cmd {
	return m.listen
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.viewport.Width = m.width
		m.viewport.Height = max(m.height-2, 1)
		m.render()
		return m, nil

	case ThemeChangedMsg:
		current := m.engine.Current()
		palette, err := colors.FromPalette(current)
		if err != nil {
			slog.Error("could not apply palette", "palette", current.Name, "err", err)
			return m, m.listen
		}

		m.palette = palette
		m.styles = NewStyles(m.Renderer, palette)
		m.render()
		return m, m.listen

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Quit):
			m.quitting = true
			m.Close()
			return m, tea.Quit

		case key.Matches(msg, m.KeyMap.CycleTheme):
			m.engine.Cycle()
			return m, nil

		case key.Matches(msg, m.KeyMap.NextCard):
			m.focus(m.focused + 1)
			return m, nil

		case key.Matches(msg, m.KeyMap.PrevCard):
			m.focus(m.focused - 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	// This lets us not leave behind lines at the end.
	if m.quitting {
		return ""
	}

	if m.width < minWidth || m.height < minHeight {
		return utils.
			Box(m.Renderer, m.width, m.height, true, true).
			Background(m.palette.Background).
			Foreground(m.palette.Muted).
			Render("terminal too small :(")
	}

	return strings.Join([]string{
		m.statusView(),
		m.viewport.View(),
		fill(m.styles.Page, help.View(m.KeyMap.Bindings(), m.styles.Help, m.width), m.width),
	}, "\n")
}

// Returns the palette the page is currently drawn with.
func (m Model) Palette() colors.ColorPalette {
	return m.palette
}

func (m Model) Focused() int {
	return m.focused
}

func (m Model) listen() tea.Msg {
	if _, ok := <-m.changes; !ok {
		return nil
	}
	return ThemeChangedMsg{}
}

func (m *Model) focus(index int) {
	count := len(m.portfolio.Projects)
	if count == 0 {
		return
	}

	m.focused = (index%count + count) % count
	m.render()

	// Keep the top of the focused card on screen.
	top := m.cards[m.focused]
	if top < m.viewport.YOffset || top >= m.viewport.YOffset+m.viewport.Height-1 {
		m.viewport.SetYOffset(max(top-1, 0))
	}
}

func (m *Model) render() {
	p := pageRenderer{
		portfolio: m.portfolio,
		palette:   m.palette,
		styles:    m.styles,
		width:     m.width,
		focused:   m.focused,
		visits:    m.options.Visits,
	}.render()

	// Short pages still paint the whole viewport.
	for len(p.lines) < m.viewport.Height {
		p.lines = append(p.lines, fill(m.styles.Page, "", m.width))
	}

	m.cards = p.cards
	m.viewport.SetContent(p.String())
}

func (m Model) statusView() string {
	icon := "◐"
	if m.palette.IsDark {
		icon = "☀"
	}

	badge := m.styles.Badge.Render(m.palette.Name + " Mode")
	hint := m.styles.Muted.Render(" " + icon + " press t to switch theme")
	return fill(m.styles.Page, badge+hint, m.width)
}

type KeyMap struct {
	CycleTheme key.Binding
	NextCard   key.Binding
	PrevCard   key.Binding
	Scroll     key.Binding
	Quit       key.Binding
}

// Bindings shown in the help line.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.CycleTheme, k.NextCard, k.PrevCard, k.Scroll, k.Quit}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		NextCard: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("→/l", "next"),
		),
		PrevCard: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		// Handled by the viewport, listed for help.
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
