package middlewares

import (
	"net"
	"net/http"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// UploadRateLimiter throttles uploads per client IP with a token bucket.
// Limiters idle for longer than idleTTL are dropped on the next request.
type UploadRateLimiter struct {
	limiters map[string]*visitor
	mu       sync.Mutex
	every    time.Duration
	burst    int
	idleTTL  time.Duration
	log      *zap.Logger
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewUploadRateLimiter(ratePerMinute, burst int, logger *zap.Logger) *UploadRateLimiter {
	if ratePerMinute <= 0 {
		ratePerMinute = 30
	}
	if burst <= 0 {
		burst = 1
	}
	return &UploadRateLimiter{
		limiters: make(map[string]*visitor),
		every:    time.Minute / time.Duration(ratePerMinute),
		burst:    burst,
		idleTTL:  10 * time.Minute,
		log:      logger,
	}
}

func (l *UploadRateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !l.allow(ip, time.Now()) {
			utils.LogSecurityEvent(l.log, "upload_rate_limited", utils.GetRequestID(r.Context()), "low",
				zap.String(constvars.LoggingRemoteAddrKey, ip),
			)
			w.Header().Set(constvars.HeaderRetryAfter, "60")
			utils.BuildErrorResponse(l.log, w, exceptions.ErrTooManyRequests(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *UploadRateLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, v := range l.limiters {
		if now.Sub(v.lastSeen) > l.idleTTL {
			delete(l.limiters, key)
		}
	}

	v, exists := l.limiters[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(l.every), l.burst)}
		l.limiters[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constvars.HeaderXForwardedFor); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
