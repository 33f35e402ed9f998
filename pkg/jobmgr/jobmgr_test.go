package jobmgr

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func blockUntilDone(started chan<- struct{}) Runner {
	return func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}
}

func TestStartStop(t *testing.T) {
	m := NewManager(context.Background(), zerolog.Nop())
	started := make(chan struct{})
	if err := m.Start("a", blockUntilDone(started)); err != nil {
		t.Fatal(err)
	}
	<-started

	if err := m.Start("a", blockUntilDone(make(chan struct{}))); !errors.Is(err, ErrJobRunning) {
		t.Errorf("duplicate start: %v", err)
	}
	if got := m.Status(); got != "Running jobs: a" {
		t.Errorf("Status() = %q", got)
	}
	if err := m.Stop("a"); err != nil {
		t.Fatal(err)
	}
	if err := m.Stop("a"); !errors.Is(err, ErrJobNotRunning) {
		t.Errorf("second stop: %v", err)
	}
	if got := m.Status(); got != "No jobs are running." {
		t.Errorf("Status() = %q", got)
	}
}

func TestParentCancelStopsJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewManager(ctx, zerolog.Nop())
	s1, s2 := make(chan struct{}), make(chan struct{})
	_ = m.Start("b", blockUntilDone(s1))
	_ = m.Start("a", blockUntilDone(s2))
	<-s1
	<-s2

	if got := m.List(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("List() = %v", got)
	}
	cancel()
	m.StopAll()
	if got := m.List(); len(got) != 0 {
		t.Errorf("List() after cancel = %v", got)
	}
}

func TestFinishedJobIsRemoved(t *testing.T) {
	m := NewManager(context.Background(), zerolog.Nop())
	_ = m.Start("once", func(context.Context) error { return errors.New("boom") })
	m.StopAll()
	if got := m.List(); len(got) != 0 {
		t.Errorf("List() = %v", got)
	}
}
