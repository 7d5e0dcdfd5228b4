package middleware

import (
	"task-master/pkg/log"
)

// Config controls the optional per-client rate limit.
type Config struct {
	RateLimitEnabled bool
	RequestsPerMin   int
}

// Middleware bundles the gin middlewares shared by every route group.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. The rate limiter is only built when enabled.
func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitEnabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
