package server

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/logging"
	"github.com/shivamrai009/portfolio/internal/config"
	"github.com/shivamrai009/portfolio/internal/content"
	"github.com/shivamrai009/portfolio/internal/theme"
	"github.com/uptrace/bun"
	gossh "golang.org/x/crypto/ssh"
)

const shutdownTimeout = 30 * time.Second

// Wires the settings, middleware and the ssh server together.
type Runtime struct {
	settings config.Settings
	server   *ssh.Server
}

// Creates the runtime. The db is optional, visits are not recorded
// without one. Sessions are logged through logger when it is set.
func New(
	settings config.Settings,
	logger *log.Logger,
	db *bun.DB,
	portfolio content.Portfolio,
	palettes []theme.Palette,
) (*Runtime, error) {
	if logger == nil {
		logger = log.Default()
	}

	h := &handler{
		db:        db,
		portfolio: portfolio,
		palettes:  palettes,
	}

	server, err := wish.NewServer(
		wish.WithAddress(settings.SSH.BindAddr),
		wish.WithHostKeyPath(settings.SSH.HostKeyPath),
		wish.WithIdleTimeout(settings.SSH.IdleTimeout),
		wish.WithMaxTimeout(settings.SSH.MaxTimeout),
		// Everyone is welcome, keys only tell returning visitors apart.
		wish.WithPublicKeyAuth(func(ssh.Context, ssh.PublicKey) bool {
			return true
		}),
		wish.WithKeyboardInteractiveAuth(func(ssh.Context, gossh.KeyboardInteractiveChallenge) bool {
			return true
		}),
		// Executed bottom to top.
		wish.WithMiddleware(
			h.middleware,
			RateLimitMiddleware(settings.SSH.RateLimitPerMinute, settings.SSH.RateLimitBurst),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
	)
	if err != nil {
		return nil, err
	}

	return &Runtime{settings: settings, server: server}, nil
}

func (r *Runtime) Address() string {
	return r.server.Addr
}

// Serves until ctx is cancelled or the process is asked to stop.
func (r *Runtime) Run(ctx context.Context) error {
	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-ctx.Done()
		slog.Info("shutting down ssh server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := r.server.Shutdown(shutdownCtx); err != nil {
			slog.Error("could not shutdown ssh server", "err", err)
		}
	}()

	slog.Info(
		"starting ssh server",
		"addr", r.server.Addr,
		"host_key", r.settings.SSH.HostKeyPath,
		"idle_timeout", r.settings.SSH.IdleTimeout,
		"max_timeout", r.settings.SSH.MaxTimeout,
	)
	err := r.server.ListenAndServe()
	if err == nil || errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}
	return err
}
