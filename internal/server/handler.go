package server

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/pkg/errors"
	"github.com/shivamrai009/portfolio/internal/cli"
	"github.com/shivamrai009/portfolio/internal/content"
	"github.com/shivamrai009/portfolio/internal/theme"
	"github.com/shivamrai009/portfolio/internal/tui"
	"github.com/shivamrai009/portfolio/internal/visits"
	"github.com/uptrace/bun"
)

// Serves the portfolio on a session. Terminals get the page, everything
// else is treated as a command line.
type handler struct {
	// Optional, visits are not counted without it.
	db *bun.DB

	portfolio content.Portfolio
	palettes  []theme.Palette
}

func (h *handler) middleware(next ssh.Handler) ssh.Handler {
	return func(session ssh.Session) {
		_, _, interactive := session.Pty()
		if interactive && len(session.Command()) == 0 {
			if err := h.serveTUI(next, session); err != nil {
				slog.Error("could not serve portfolio", "user", session.User(), "err", err)
				wish.Fatalln(session, "error: could not open the portfolio")
			}
			return
		}

		command := cli.Command{Portfolio: h.portfolio, Palettes: h.palettes}
		retcode := command.Run(session, session.Stderr(), session.Command())
		_ = session.Exit(retcode)
	}
}

func (h *handler) serveTUI(next ssh.Handler, session ssh.Session) error {
	// Every session cycles its own themes.
	engine, err := theme.NewEngine(h.palettes...)
	if err != nil {
		return errors.Wrap(err, "could not create theme engine")
	}

	model, err := tui.NewModel(
		engine,
		h.portfolio,
		sessionRenderer(session),
		tui.Options{Visits: h.recordVisit(session.Context(), session.PublicKey())},
	)
	if err != nil {
		return errors.Wrap(err, "could not create model")
	}
	defer model.Close()

	runTeaInSession(next, session, model)
	return nil
}

// Records the visit and returns the number of visits so far, or 0 when
// they are not being counted.
func (h *handler) recordVisit(ctx context.Context, key ssh.PublicKey) int {
	if h.db == nil {
		return 0
	}

	if err := visits.Record(ctx, h.db, key); err != nil {
		slog.Error("could not record visit", "err", err)
		return 0
	}

	count, err := visits.Count(ctx, h.db)
	if err != nil {
		slog.Error("could not count visits", "err", err)
		return 0
	}
	return count
}
