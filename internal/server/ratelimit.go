package server

import (
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Hands out one token bucket per remote IP. Buckets that have been idle
// long enough to refill completely are dropped, a fresh one behaves the
// same.
type ipLimiter struct {
	limit rate.Limit
	burst int
	idle  time.Duration

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
}

func newIPLimiter(limitPerMinute, burst int) *ipLimiter {
	limit := rate.Limit(float64(limitPerMinute) / 60.0)
	refill := time.Duration(float64(burst) / float64(limit) * float64(time.Second))

	return &ipLimiter{
		limit:    limit,
		burst:    burst,
		idle:     max(refill, time.Minute),
		visitors: make(map[string]*visitor),
	}
}

func (l *ipLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

func (l *ipLimiter) sweep(now time.Time) {
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.idle {
			delete(l.visitors, ip)
		}
	}
	l.lastSweep = now
}

func (l *ipLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// Enforces per-IP session limits using a token bucket that holds up to
// burst tokens and refills at limitPerMinute.
func RateLimitMiddleware(limitPerMinute, burst int) wish.Middleware {
	if limitPerMinute <= 0 {
		limitPerMinute = 30
	}
	if burst <= 0 {
		burst = 10
	}

	return rateLimit(newIPLimiter(limitPerMinute, burst), time.Now)
}

func rateLimit(limiter *ipLimiter, now func() time.Time) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(session ssh.Session) {
			ip := remoteIP(session)
			if !limiter.allow(ip, now()) {
				slog.Warn("rate limit exceeded", "ip", ip, "user", session.User())
				wish.Fatalln(session, "rate limit exceeded")
				return
			}
			next(session)
		}
	}
}

func remoteIP(session ssh.Session) string {
	remote := session.RemoteAddr()
	if remote == nil {
		return "unknown"
	}

	host, _, err := net.SplitHostPort(remote.String())
	if err != nil {
		return remote.String()
	}

	if host == "" {
		return "unknown"
	}
	return host
}
