package retrylimit

import (
	"context"
	"errors"
	"testing"
)

type statusErr int

func (s statusErr) Error() string   { return "status" }
func (s statusErr) StatusCode() int { return int(s) }

func fast() Config {
	cfg := Default()
	cfg.InitialDelay = 0
	cfg.Jitter = false
	return cfg
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fast(), nil, func() error {
		calls++
		if calls < 3 {
			return statusErr(503)
		}
		return nil
	})
	if err != nil || calls != 3 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}

func TestDoStops(t *testing.T) {
	tests := []struct {
		name  string
		cfg   func() Config
		err   error
		calls int
	}{
		{"fatal", fast, &FatalError{Err: errors.New("bad")}, 1},
		{"not retryable", func() Config {
			c := fast()
			c.Retryable = IsTransient
			return c
		}, statusErr(400), 1},
		{"attempts exhausted", fast, statusErr(429), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Do(context.Background(), tt.cfg(), nil, func() error {
				calls++
				return tt.err
			})
			if err == nil || !errors.Is(err, tt.err) {
				t.Errorf("err = %v", err)
			}
			if calls != tt.calls {
				t.Errorf("calls = %d, want %d", calls, tt.calls)
			}
		})
	}
}

func TestDoCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Do(ctx, fast(), nil, func() error { return nil }); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v", err)
	}
}

func TestIsTransient(t *testing.T) {
	for code, want := range map[int]bool{429: true, 500: true, 503: true, 404: false, 200: false} {
		if got := IsTransient(statusErr(code)); got != want {
			t.Errorf("IsTransient(%d) = %v", code, got)
		}
	}
	if IsTransient(errors.New("plain")) {
		t.Error("plain errors are not transient")
	}
}
