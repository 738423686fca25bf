package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLevels(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var quiet bytes.Buffer
	Setup(&quiet, false)
	slog.Debug("hidden detail")
	slog.Info("visitor connected", "user", "guest")

	assert.NotContains(t, quiet.String(), "hidden detail")
	assert.Contains(t, quiet.String(), "visitor connected")
	assert.Contains(t, quiet.String(), "user=guest")

	var verbose bytes.Buffer
	Setup(&verbose, true)
	slog.Debug("hidden detail")

	assert.Contains(t, verbose.String(), "hidden detail")
}
