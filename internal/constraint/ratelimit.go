package constraint

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/keshon/commando/pkg/cmd"
)

// RateLimit is a per-actor token bucket.
type RateLimit struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewRateLimit allows perMinute invocations per actor per minute, with
// bursts up to perMinute.
func NewRateLimit(perMinute int) *RateLimit {
	return &RateLimit{
		limit:    rate.Limit(float64(perMinute) / 60),
		burst:    perMinute,
		now:      time.Now,
		limiters: make(map[string]*rate.Limiter),
	}
}

// WithClock replaces the time source; used by tests.
func (r *RateLimit) WithClock(now func() time.Time) *RateLimit {
	r.now = now
	return r
}

func (r *RateLimit) limiter(actorID string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.limiters[actorID]
	if !ok {
		l = rate.NewLimiter(r.limit, r.burst)
		r.limiters[actorID] = l
	}
	return l
}

func (r *RateLimit) Test(_ context.Context, inv *cmd.Invocation) bool {
	return r.limiter(inv.Actor.ID()).AllowN(r.now(), 1)
}

func (r *RateLimit) OnFailure(_ context.Context, inv *cmd.Invocation) {
	inv.Reply(cmd.Error("Slow down! You are sending commands too quickly."))
}
