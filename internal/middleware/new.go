package middleware

import (
	"mom-planner/config"
	"mom-planner/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. The rate limiter is nil when disabled.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled {
		mw.limiter = newRateLimiter(cfg)
	}
	return mw
}
