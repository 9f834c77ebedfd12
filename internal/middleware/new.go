package middleware

import (
	"task-scheduling-advisor/pkg/log"
	"task-scheduling-advisor/pkg/throttle"
)

type Middleware struct {
	l       log.Logger
	limiter *throttle.Keyed
}

// New creates the shared middleware set. A nil limiter disables RateLimit.
func New(l log.Logger, limiter *throttle.Keyed) Middleware {
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
