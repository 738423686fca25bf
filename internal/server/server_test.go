package server

import (
	"bytes"
	"io"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/shivamrai009/portfolio/internal/config"
	"github.com/shivamrai009/portfolio/internal/content"
	"github.com/shivamrai009/portfolio/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Implements just enough of a session for the middleware under test.
type fakeSession struct {
	ssh.Session

	remote  net.Addr
	command []string
	pty     bool

	stdout bytes.Buffer
	stderr bytes.Buffer
	exit   *int
}

func (f *fakeSession) User() string         { return "guest" }
func (f *fakeSession) RemoteAddr() net.Addr { return f.remote }
func (f *fakeSession) Command() []string    { return f.command }
func (f *fakeSession) Stderr() io.ReadWriter {
	return &f.stderr
}
func (f *fakeSession) Write(p []byte) (int, error) { return f.stdout.Write(p) }
func (f *fakeSession) Close() error                { return nil }
func (f *fakeSession) Exit(code int) error {
	f.exit = &code
	return nil
}
func (f *fakeSession) Pty() (ssh.Pty, <-chan ssh.Window, bool) {
	return ssh.Pty{}, nil, f.pty
}

func addr(ip string) net.Addr {
	return &net.TCPAddr{IP: net.ParseIP(ip), Port: 2222}
}

func TestRateLimitMiddlewareThrottlesByIP(t *testing.T) {
	called := 0
	handler := RateLimitMiddleware(60, 2)(func(ssh.Session) { called++ })

	session := &fakeSession{remote: addr("203.0.113.10")}
	handler(session)
	handler(session)
	handler(session)

	assert.Equal(t, 2, called)
	// wish terminates the line for raw terminals.
	assert.Contains(t, session.stderr.String(), "rate limit exceeded")
	assert.Equal(t, 1, strings.Count(session.stderr.String(), "rate limit exceeded"))
	require.NotNil(t, session.exit)
	assert.Equal(t, 1, *session.exit)
}

func TestRateLimitMiddlewareIsolatedPerIP(t *testing.T) {
	called := 0
	handler := RateLimitMiddleware(60, 1)(func(ssh.Session) { called++ })

	a := &fakeSession{remote: addr("203.0.113.10")}
	b := &fakeSession{remote: addr("203.0.113.11")}
	handler(a)
	handler(a)
	handler(b)

	assert.Equal(t, 2, called)
	assert.NotEmpty(t, a.stderr.String())
	assert.Empty(t, b.stderr.String())
}

func TestRateLimitRefills(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	called := 0
	handler := rateLimit(newIPLimiter(60, 1), func() time.Time { return now })(func(ssh.Session) { called++ })

	session := &fakeSession{remote: addr("203.0.113.10")}
	handler(session)
	handler(session)
	assert.Equal(t, 1, called)

	now = now.Add(time.Second)
	handler(session)
	assert.Equal(t, 2, called)
}

func TestRateLimitForgetsIdleVisitors(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := newIPLimiter(30, 10)

	for i := 0; i < 1000; i++ {
		ip := net.IPv4(10, 0, byte(i/256), byte(i%256)).String()
		assert.True(t, limiter.allow(ip, now))
	}
	assert.Equal(t, 1000, limiter.size())

	// Still inside the refill window, nothing is dropped yet.
	limiter.allow("203.0.113.10", now.Add(limiter.idle/2))
	assert.Equal(t, 1001, limiter.size())

	limiter.allow("203.0.113.10", now.Add(limiter.idle))
	assert.Equal(t, 1, limiter.size())
}

func TestRateLimitKeepsThrottledVisitors(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := newIPLimiter(1, 1)

	assert.True(t, limiter.allow("203.0.113.10", now))

	// Not refilled yet, so a sweep must not hand it a fresh bucket.
	later := now.Add(limiter.idle - time.Second)
	limiter.mu.Lock()
	limiter.sweep(later)
	limiter.mu.Unlock()
	assert.Equal(t, 1, limiter.size())
	assert.False(t, limiter.allow("203.0.113.10", later))
}

type testAddr string

func (a testAddr) Network() string { return "test" }
func (a testAddr) String() string  { return string(a) }

func TestRemoteIPFallbacks(t *testing.T) {
	assert.Equal(t, "unknown", remoteIP(&fakeSession{}))
	assert.Equal(t, "opaque", remoteIP(&fakeSession{remote: testAddr("opaque")}))
	assert.Equal(t, "203.0.113.10", remoteIP(&fakeSession{remote: addr("203.0.113.10")}))
}

func newHandler(t *testing.T) *handler {
	t.Helper()

	portfolio, err := content.Default()
	require.NoError(t, err)

	return &handler{portfolio: portfolio, palettes: theme.MustBuiltin()}
}

func TestHandlerRunsCommands(t *testing.T) {
	next := func(ssh.Session) { t.Fatal("commands should not reach the next handler") }
	serve := newHandler(t).middleware(next)

	session := &fakeSession{command: []string{"projects", "--tag", "RAG"}}
	serve(session)

	require.NotNil(t, session.exit)
	assert.Equal(t, 0, *session.exit)
	assert.Contains(t, session.stdout.String(), "Finance Graph RAG\n")
	assert.NotContains(t, session.stdout.String(), "Smart Model Router")
}

func TestHandlerWithoutPtyPrintsAbout(t *testing.T) {
	serve := newHandler(t).middleware(func(ssh.Session) {})

	session := &fakeSession{}
	serve(session)

	require.NotNil(t, session.exit)
	assert.Equal(t, 0, *session.exit)
	assert.Contains(t, session.stdout.String(), "Shivam Rai")
}

func TestHandlerReportsBadArgs(t *testing.T) {
	serve := newHandler(t).middleware(func(ssh.Session) {})

	session := &fakeSession{command: []string{"--nope"}, pty: true}
	serve(session)

	require.NotNil(t, session.exit)
	assert.Equal(t, 255, *session.exit)
	assert.Contains(t, session.stderr.String(), "error:")
}

func TestNewRuntime(t *testing.T) {
	settings := config.Settings{}
	settings.SSH.BindAddr = "127.0.0.1:0"
	settings.SSH.HostKeyPath = filepath.Join(t.TempDir(), "host_ed25519")
	settings.SSH.IdleTimeout = time.Minute
	settings.SSH.MaxTimeout = time.Hour
	settings.SSH.RateLimitPerMinute = 30
	settings.SSH.RateLimitBurst = 10

	runtime, err := New(settings, nil, nil, content.Portfolio{}, theme.MustBuiltin())
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", runtime.Address())
	assert.FileExists(t, settings.SSH.HostKeyPath)
}
