package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter limits requests per client IP. Each Limit call owns its own
// set of per-IP token buckets.
type RateLimiter struct {
	mu     sync.Mutex
	groups []*limitGroup
	idle   time.Duration
	stop   chan struct{}
	once   sync.Once
}

type limitGroup struct {
	limit   rate.Limit
	burst   int
	clients map[string]*client
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter starts a limiter whose idle buckets are dropped every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{idle: 2 * cleanupInterval, stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows max requests per window from one IP, refilled evenly.
func (rl *RateLimiter) Limit(max int, window time.Duration) Middleware {
	g := &limitGroup{
		limit:   rate.Limit(float64(max) / window.Seconds()),
		burst:   max,
		clients: make(map[string]*client),
	}
	rl.mu.Lock()
	rl.groups = append(rl.groups, g)
	rl.mu.Unlock()

	retryAfter := strconv.Itoa(int(math.Ceil(window.Seconds() / float64(max))))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(g, clientIP(r)) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(g *limitGroup, ip string) bool {
	rl.mu.Lock()
	c, ok := g.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(g.limit, g.burst)}
		g.clients[ip] = c
	}
	c.lastSeen = time.Now()
	rl.mu.Unlock()

	return c.limiter.Allow()
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for _, g := range rl.groups {
				for ip, c := range g.clients {
					if now.Sub(c.lastSeen) > rl.idle {
						delete(g.clients, ip)
					}
				}
			}
			rl.mu.Unlock()
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
