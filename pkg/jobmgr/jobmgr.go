// Package jobmgr runs named background jobs tied to a parent context and
// tracks which of them are alive.
//
//	jm := jobmgr.NewManager(ctx, logger)
//	_ = jm.Start("cooldown-cleaner", storage.RunCooldownCleaner(store, time.Minute, logger))
//	defer jm.StopAll()
//
// Jobs are removed when their runner returns, whether it failed or not.
package jobmgr

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	ErrJobRunning    = errors.New("job is already running")
	ErrJobNotRunning = errors.New("job is not running")
)

// Runner is the body of a job. It must return once ctx is done.
type Runner func(ctx context.Context) error

type job struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Manager starts, stops and lists jobs. It is safe for concurrent use.
type Manager struct {
	parent context.Context
	log    zerolog.Logger

	mu   sync.Mutex
	jobs map[string]*job
	wg   sync.WaitGroup
}

// NewManager returns a Manager whose jobs are cancelled with parent.
func NewManager(parent context.Context, log zerolog.Logger) *Manager {
	return &Manager{
		parent: parent,
		log:    log.With().Str("component", "jobmgr").Logger(),
		jobs:   make(map[string]*job),
	}
}

// Start runs runner in its own goroutine under name.
func (m *Manager) Start(name string, runner Runner) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[name]; ok {
		return fmt.Errorf("%w: %s", ErrJobRunning, name)
	}

	ctx, cancel := context.WithCancel(m.parent)
	j := &job{cancel: cancel, done: make(chan struct{})}
	m.jobs[name] = j
	m.wg.Add(1)

	go func() {
		defer m.wg.Done()
		defer close(j.done)
		defer cancel()

		m.log.Debug().Str("job", name).Msg("running")
		if err := runner(ctx); err != nil && !errors.Is(err, context.Canceled) {
			m.log.Error().Err(err).Str("job", name).Msg("job failed")
		} else {
			m.log.Debug().Str("job", name).Msg("done")
		}

		m.mu.Lock()
		if m.jobs[name] == j {
			delete(m.jobs, name)
		}
		m.mu.Unlock()
	}()
	return nil
}

// Stop cancels name and waits for its runner to return.
func (m *Manager) Stop(name string) error {
	m.mu.Lock()
	j, ok := m.jobs[name]
	if ok {
		delete(m.jobs, name)
	}
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrJobNotRunning, name)
	}
	j.cancel()
	<-j.done
	return nil
}

// StopAll cancels every job and waits for them.
func (m *Manager) StopAll() {
	m.mu.Lock()
	for name, j := range m.jobs {
		j.cancel()
		delete(m.jobs, name)
	}
	m.mu.Unlock()
	m.wg.Wait()
}

// List returns the running job names, sorted.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.jobs))
	for k := range m.jobs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Status summarises the running jobs for humans.
func (m *Manager) Status() string {
	active := m.List()
	if len(active) == 0 {
		return "No jobs are running."
	}
	return "Running jobs: " + strings.Join(active, ", ")
}
