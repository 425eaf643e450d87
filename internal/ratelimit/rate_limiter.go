package ratelimit

import "golang.org/x/time/rate"

// RateLimiter is a token bucket whose burst equals its QPS.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter returns an unlimited limiter for qps <= 0.
func NewRateLimiter(qps int) *RateLimiter {
	if qps <= 0 {
		return &RateLimiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(qps), qps)}
}

func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}

// QPS returns 0 for an unlimited limiter.
func (r *RateLimiter) QPS() int {
	limit := r.limiter.Limit()
	if limit == rate.Inf {
		return 0
	}
	return int(limit)
}
