package server

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/muesli/termenv"
)

// The palettes are hex colors, anything below 256 colors mangles them.
const minimumColorProfile = termenv.ANSI256

// Returns a renderer for the session that is at least as capable as the
// color profile forced on the program.
func sessionRenderer(session ssh.Session) *lipgloss.Renderer {
	renderer := bubbletea.MakeRenderer(session)
	if renderer.ColorProfile() > minimumColorProfile {
		renderer.SetColorProfile(minimumColorProfile)
	}
	return renderer
}

// Run a bubble tea program on the session.
func runTeaInSession(next ssh.Handler, session ssh.Session, model tea.Model) {
	middleware := bubbletea.MiddlewareWithColorProfile(func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		options := []tea.ProgramOption{tea.WithAltScreen()}
		return model, options
	}, minimumColorProfile)

	middleware(next)(session)
}
