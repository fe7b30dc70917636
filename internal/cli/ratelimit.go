package cli

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
)

// rateLimiter is a fixed-window request counter per client IP in Redis.
type rateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger *log.Logger
}

func newRateLimiter(client *redis.Client, limit int, window time.Duration, logger *log.Logger) *rateLimiter {
	return &rateLimiter{client: client, limit: limit, window: window, logger: logger}
}

// allow counts one request for client and reports whether it is within
// the limit. INCR and EXPIRE run in one pipeline; EXPIRE NX needs Redis 7.
func (l *rateLimiter) allow(r *http.Request, client string) (bool, error) {
	key := appName + ":ratelimit:" + client

	pipe := l.client.Pipeline()
	incr := pipe.Incr(r.Context(), key)
	pipe.ExpireNX(r.Context(), key, l.window)
	if _, err := pipe.Exec(r.Context()); err != nil {
		return false, err
	}
	return incr.Val() <= int64(l.limit), nil
}

func (l *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, err := l.allow(r, clientIP(r))
		if err != nil {
			// Rendering stays available when Redis is not.
			l.logger.Warn("rate limiter unavailable", "err", err)
			next.ServeHTTP(w, r)
			return
		}
		if !ok {
			w.Header().Set("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			writeJSON(w, http.StatusTooManyRequests, errorBody{Code: "RATE_LIMITED", Error: "too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the request's remote host without the port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
