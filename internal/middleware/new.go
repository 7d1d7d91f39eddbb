package middleware

import (
	"household-orders/pkg/log"
)

// Middleware bundles the gin middlewares shared by every domain.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the shared middlewares. requestsPerMin bounds mutating
// requests per client IP; zero or less disables the limit.
func New(l log.Logger, requestsPerMin int) Middleware {
	mw := Middleware{l: l}
	if requestsPerMin > 0 {
		mw.limiter = newRateLimiter(requestsPerMin)
	}
	return mw
}
