package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/dicky/portfolio/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client key. A client may burst up to
// limit requests and then refills at limit per window.
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*visitor
	limit    int
	window   time.Duration
	every    rate.Limit
	idleTTL  time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per window per
// key and starts a janitor dropping idle keys. Call Stop to end it.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	rl := &RateLimiter{
		clients: make(map[string]*visitor),
		limit:   limit,
		window:  window,
		every:   rate.Every(window / time.Duration(limit)),
		idleTTL: window * 2,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.idleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle()
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	for key, v := range rl.clients {
		if now.Sub(v.lastSeen) > rl.idleTTL {
			delete(rl.clients, key)
		}
	}
}

// Stop ends the janitor goroutine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) visitor(key string, now time.Time) *visitor {
	v, ok := rl.clients[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.every, rl.limit)}
		rl.clients[key] = v
	}
	v.lastSeen = now
	return v
}

// Allow reports whether a request from key may proceed now. When it may
// not, the returned duration is how long until a token is available.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v := rl.visitor(key, now)
	if v.limiter.AllowN(now, 1) {
		return true, 0
	}
	r := v.limiter.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	r.CancelAt(now)
	return false, delay
}

// Remaining returns the number of requests key may still make right now
func (rl *RateLimiter) Remaining(key string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.clients[key]
	if !ok {
		return rl.limit
	}
	return max(0, int(math.Floor(v.limiter.TokensAt(rl.now()))))
}

// Limit returns the configured burst size
func (rl *RateLimiter) Limit() int {
	return rl.limit
}

// LimitResponder writes the response for a rejected request
type LimitResponder func(c *gin.Context, retryAfter time.Duration)

// EnvelopeLimitResponse answers with the standard API error envelope
func EnvelopeLimitResponse(c *gin.Context, _ time.Duration) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeRateLimited,
		"Too many requests. Please try again later.",
		GetRequestID(c),
	))
}

// RateLimit limits requests per client IP. A nil respond uses
// EnvelopeLimitResponse.
func RateLimit(limiter *RateLimiter, respond LimitResponder) gin.HandlerFunc {
	return RateLimitByKey(limiter, func(c *gin.Context) string { return c.ClientIP() }, respond)
}

// RateLimitByKey returns a rate limiting middleware with custom key extractor
func RateLimitByKey(limiter *RateLimiter, keyFunc func(*gin.Context) string, respond LimitResponder) gin.HandlerFunc {
	if respond == nil {
		respond = EnvelopeLimitResponse
	}
	return func(c *gin.Context) {
		key := keyFunc(c)

		ok, retryAfter := limiter.Allow(key)
		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		if !ok {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			respond(c, retryAfter)
			c.Abort()
			return
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.Remaining(key)))
		c.Next()
	}
}
