package app

import (
	"net/http"
	"sync"
	"time"

	"Todolists/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

const rateLimiterExpiry = 5 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipRateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	rate      rate.Limit
	burst     int
	clock     clockwork.Clock
	lastSweep time.Time
}

// newRateLimiter returns a per-client-IP token bucket middleware for
// state-changing requests; GET and HEAD pass through. ratePerSecond <= 0
// disables limiting. It runs ahead of the session middleware, so a rejected
// request never creates a session.
func newRateLimiter(ratePerSecond float64, burst int, clock clockwork.Clock) gin.HandlerFunc {
	if ratePerSecond <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return newIPRateLimiter(ratePerSecond, burst, clock).middleware()
}

func newIPRateLimiter(ratePerSecond float64, burst int, clock clockwork.Clock) *ipRateLimiter {
	if burst < 1 {
		burst = 1
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ipRateLimiter{
		clients:   make(map[string]*clientLimiter),
		rate:      rate.Limit(ratePerSecond),
		burst:     burst,
		clock:     clock,
		lastSweep: clock.Now(),
	}
}

func (l *ipRateLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}
		if !l.allow(c.ClientIP()) {
			c.HTML(http.StatusTooManyRequests, "error.tmpl", gin.H{
				"Status":  http.StatusTooManyRequests,
				"Message": "Too many requests. Please slow down.",
				"Flash":   session.Flash{},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	if now.Sub(l.lastSweep) >= rateLimiterExpiry {
		for k, cl := range l.clients {
			if now.Sub(cl.lastSeen) >= rateLimiterExpiry {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	cl, ok := l.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

func (l *ipRateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}
