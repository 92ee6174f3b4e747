package fetch

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// TargetLimiter rate-limits per target hostname so one sweep doesn't
// hammer a single source site through the proxy.
type TargetLimiter struct {
	mu    sync.Mutex
	m     map[string]*rate.Limiter
	limit rate.Limit
	burst int
}

func NewTargetLimiter(reqPerSec float64, burst int) *TargetLimiter {
	return &TargetLimiter{
		m:     make(map[string]*rate.Limiter),
		limit: rate.Limit(reqPerSec),
		burst: burst,
	}
}

func (tl *TargetLimiter) limiterFor(host string) *rate.Limiter {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	if lim, ok := tl.m[host]; ok {
		return lim
	}
	lim := rate.NewLimiter(tl.limit, tl.burst)
	tl.m[host] = lim
	return lim
}

// WaitURL blocks until the target's host bucket allows another request.
func (tl *TargetLimiter) WaitURL(ctx context.Context, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return tl.limiterFor("_").Wait(ctx)
	}
	return tl.limiterFor(u.Host).Wait(ctx)
}
