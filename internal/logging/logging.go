package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"
)

// Installs a charm logger as the slog default and returns it, so that
// middleware that wants the logger itself can share the same output.
func Setup(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	slog.SetDefault(slog.New(logger))

	return logger
}
