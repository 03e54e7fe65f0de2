package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	visitorIdleTTL = 10 * time.Minute
	sweepInterval  = time.Minute
)

// OTPRateLimiter membatasi endpoint login/verify per IP supaya OTP tidak
// bisa di-bruteforce. Limiter per IP dibuat lazily; entri yang sudah idle
// lebih dari visitorIdleTTL disapu berkala agar map tidak tumbuh terus.
type OTPRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	r         rate.Limit
	burst     int
	lastSweep time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewOTPRateLimiter(perMinute int) *OTPRateLimiter {
	return &OTPRateLimiter{
		visitors:  make(map[string]*visitor),
		r:         rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     perMinute,
		lastSweep: time.Now(),
	}
}

func (rl *OTPRateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastSweep) >= sweepInterval {
		for addr, v := range rl.visitors {
			if now.Sub(v.lastSeen) >= visitorIdleTTL {
				delete(rl.visitors, addr)
			}
		}
		rl.lastSweep = now
	}

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.r, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (rl *OTPRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiter(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"status":  false,
				"message": "too many attempts, please wait",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
