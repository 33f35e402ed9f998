// Package retrylimit retries transient failures with capped exponential
// backoff, pacing attempts through a shared rate limiter.
//
//	lim := rate.NewLimiter(5, 5)
//	err := retrylimit.Do(ctx, retrylimit.Default(), lim, func() error {
//	    return send()
//	})
package retrylimit

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// HTTPError is implemented by errors that carry an HTTP status code.
type HTTPError interface {
	error
	StatusCode() int
}

// FatalError stops retries immediately.
type FatalError struct {
	Err error
}

func (f *FatalError) Error() string { return f.Err.Error() }
func (f *FatalError) Unwrap() error { return f.Err }

// ErrAttemptsExceeded wraps the last error once Attempts is used up.
var ErrAttemptsExceeded = errors.New("max attempts exceeded")

// Config controls Do.
type Config struct {
	Attempts     int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	Jitter       bool
	// Retryable reports whether err is worth another attempt. Nil retries
	// everything except FatalError.
	Retryable func(error) bool
	Log       zerolog.Logger
}

// Default is three attempts starting at 250ms.
func Default() Config {
	return Config{
		Attempts:     3,
		InitialDelay: 250 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		Multiplier:   2,
		Jitter:       true,
		Log:          zerolog.Nop(),
	}
}

// IsTransient is true for 429 and 5xx HTTP errors.
func IsTransient(err error) bool {
	var h HTTPError
	if !errors.As(err, &h) {
		return false
	}
	code := h.StatusCode()
	return code == http.StatusTooManyRequests || (code >= 500 && code < 600)
}

// Do calls fn until it succeeds, returns a non-retryable error, ctx ends or
// cfg.Attempts is reached. lim may be nil.
func Do(ctx context.Context, cfg Config, lim *rate.Limiter, fn func() error) error {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	delay := cfg.InitialDelay

	var err error
	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		if lim != nil {
			if werr := lim.Wait(ctx); werr != nil {
				return werr
			}
		} else if cerr := ctx.Err(); cerr != nil {
			return cerr
		}

		if err = fn(); err == nil {
			return nil
		}
		var fatal *FatalError
		if errors.As(err, &fatal) {
			return err
		}
		if cfg.Retryable != nil && !cfg.Retryable(err) {
			return err
		}
		if attempt == cfg.Attempts {
			break
		}

		wait := delay
		if cfg.Jitter {
			wait = addJitter(wait)
		}
		cfg.Log.Warn().Err(err).Int("attempt", attempt).Dur("backoff", wait).Msg("retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		if cfg.Multiplier > 0 {
			delay = time.Duration(float64(delay) * cfg.Multiplier)
		}
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
	return fmt.Errorf("%w (%d): %w", ErrAttemptsExceeded, cfg.Attempts, err)
}

// addJitter adds up to 25% of delay.
func addJitter(delay time.Duration) time.Duration {
	if delay < 4 {
		return delay
	}
	return delay + time.Duration(rand.Int63n(int64(delay/4)))
}
