package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// idleTTL lama IP tanpa request sebelum limiter-nya dibuang; setelah itu
// bucket sudah penuh lagi sehingga limiter baru setara.
const idleTTL = time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limiter per IP untuk endpoint sensitif seperti POST /login.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	blocked   map[string]time.Time
	lastSweep time.Time

	limit     rate.Limit
	burst     int
	blockTime time.Duration
	now       func() time.Time
}

// NewRateLimiter mengizinkan perMinute request per IP per menit; IP yang
// melewati batas diblokir selama blockTime.
func NewRateLimiter(perMinute int, blockTime time.Duration) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	return &RateLimiter{
		visitors:  make(map[string]*visitor),
		blocked:   make(map[string]time.Time),
		limit:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     perMinute,
		blockTime: blockTime,
		now:       time.Now,
	}
}

// Allow true bila ip masih boleh mengirim request.
func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) >= idleTTL {
		r.sweep(now)
	}
	if until, found := r.blocked[ip]; found {
		if now.Before(until) {
			return false
		}
		delete(r.blocked, ip)
		delete(r.visitors, ip)
	}

	v, exists := r.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.visitors[ip] = v
	}
	v.lastSeen = now
	if !v.limiter.AllowN(now, 1) {
		r.blocked[ip] = now.Add(r.blockTime)
		return false
	}
	return true
}

// sweep membuang blokir yang sudah lewat dan limiter IP yang menganggur.
func (r *RateLimiter) sweep(now time.Time) {
	for ip, until := range r.blocked {
		if !now.Before(until) {
			delete(r.blocked, ip)
			delete(r.visitors, ip)
		}
	}
	for ip, v := range r.visitors {
		if _, blocked := r.blocked[ip]; !blocked && now.Sub(v.lastSeen) >= idleTTL {
			delete(r.visitors, ip)
		}
	}
	r.lastSweep = now
}

// tracked jumlah IP yang masih punya state.
func (r *RateLimiter) tracked() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visitors) + len(r.blocked)
}

func (r *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !r.Allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"status":  http.StatusTooManyRequests,
					"message": "Too many login attempts, please try again later",
					"data":    nil,
				})
			}
			return next(c)
		}
	}
}
