// /internal/storage/storage.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/keshon/datastore"
)

var errCooldownActive = errors.New("cooldown active")

const (
	recordKey           = "commando"
	commandHistoryLimit = 50
)

type Storage struct {
	ds *datastore.DataStore
	// cancel stops the datastore's autosave loop; Close waits on it.
	cancel context.CancelFunc
	mu     sync.Mutex
}

// HistoryRecord is one executed command.
type HistoryRecord struct {
	ActorID   string    `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	Location  string    `json:"location"`
	Command   string    `json:"command"`
	Label     string    `json:"label"`
	Args      []string  `json:"args"`
	Outcome   string    `json:"outcome"`
	Datetime  time.Time `json:"datetime"`
}

type Record struct {
	// Cooldowns maps scope -> actor ID -> expiry.
	Cooldowns map[string]map[string]time.Time `json:"cooldowns"`
	// Inventories maps actor ID -> item -> amount.
	Inventories map[string]map[string]int `json:"inventories"`
	History     []HistoryRecord           `json:"history"`
}

func New(filePath string) (*Storage, error) {
	ctx, cancel := context.WithCancel(context.Background())
	ds, err := datastore.New(ctx, filePath)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("open datastore %s: %w", filePath, err)
	}
	return &Storage{ds: ds, cancel: cancel}, nil
}

// Close flushes the datastore. It is safe to call more than once.
func (s *Storage) Close() error {
	s.cancel()
	return s.ds.Close()
}

// load returns a private copy of the record.
func (s *Storage) load() (*Record, error) {
	record := &Record{}
	if _, err := s.ds.Get(recordKey, record); err != nil {
		return nil, fmt.Errorf("load %s record: %w", recordKey, err)
	}
	if record.Cooldowns == nil {
		record.Cooldowns = make(map[string]map[string]time.Time)
	}
	if record.Inventories == nil {
		record.Inventories = make(map[string]map[string]int)
	}
	return record, nil
}

func (s *Storage) update(fn func(*Record) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(record); err != nil {
		return err
	}
	if err := s.ds.Set(recordKey, record); err != nil {
		return fmt.Errorf("save %s record: %w", recordKey, err)
	}
	return nil
}

// GetCooldown returns the expiry stored for actorID in scope.
func (s *Storage) GetCooldown(scope, actorID string) (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, err := s.load()
	if err != nil {
		return time.Time{}, false, err
	}
	until, ok := record.Cooldowns[scope][actorID]
	return until, ok, nil
}

func (s *Storage) SetCooldown(scope, actorID string, until time.Time) error {
	return s.update(func(r *Record) error {
		if r.Cooldowns[scope] == nil {
			r.Cooldowns[scope] = make(map[string]time.Time)
		}
		r.Cooldowns[scope][actorID] = until
		return nil
	})
}

// ReserveCooldown starts a period-long cooldown for actorID in scope unless
// one is still running, in which case it returns the time left and changes
// nothing. Check and reservation happen under one lock.
func (s *Storage) ReserveCooldown(scope, actorID string, now time.Time, period time.Duration) (time.Duration, error) {
	var left time.Duration
	err := s.update(func(r *Record) error {
		if until, ok := r.Cooldowns[scope][actorID]; ok && until.After(now) {
			left = until.Sub(now)
			return errCooldownActive
		}
		if r.Cooldowns[scope] == nil {
			r.Cooldowns[scope] = make(map[string]time.Time)
		}
		r.Cooldowns[scope][actorID] = now.Add(period)
		return nil
	})
	if errors.Is(err, errCooldownActive) {
		return left, nil
	}
	return 0, err
}

// ClearCooldown removes actorID's cooldown in scope, or in every scope when
// scope is empty. It reports how many entries were removed.
func (s *Storage) ClearCooldown(scope, actorID string) (int, error) {
	removed := 0
	err := s.update(func(r *Record) error {
		for name, actors := range r.Cooldowns {
			if scope != "" && name != scope {
				continue
			}
			if _, ok := actors[actorID]; ok {
				delete(actors, actorID)
				removed++
			}
		}
		return nil
	})
	return removed, err
}

// ClearExpiredCooldowns drops every cooldown that ended before now.
func (s *Storage) ClearExpiredCooldowns(now time.Time) (int, error) {
	removed := 0
	err := s.update(func(r *Record) error {
		for name, actors := range r.Cooldowns {
			for actorID, until := range actors {
				if until.Before(now) {
					delete(actors, actorID)
					removed++
				}
			}
			if len(actors) == 0 {
				delete(r.Cooldowns, name)
			}
		}
		return nil
	})
	return removed, err
}

// AppendCommandToHistory records an executed command, keeping only the most
// recent entries.
func (s *Storage) AppendCommandToHistory(rec HistoryRecord) error {
	return s.update(func(r *Record) error {
		r.History = append(r.History, rec)
		if len(r.History) > commandHistoryLimit {
			r.History = r.History[len(r.History)-commandHistoryLimit:]
		}
		return nil
	})
}

// FetchCommandHistory returns up to limit records, newest first.
func (s *Storage) FetchCommandHistory(limit int) ([]HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, err := s.load()
	if err != nil {
		return nil, err
	}
	history := append([]HistoryRecord(nil), record.History...)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Datetime.After(history[j].Datetime)
	})
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	return history, nil
}

// AddItems credits amount of item to actorID and returns the new total.
func (s *Storage) AddItems(actorID, item string, amount int) (int, error) {
	total := 0
	err := s.update(func(r *Record) error {
		if r.Inventories[actorID] == nil {
			r.Inventories[actorID] = make(map[string]int)
		}
		r.Inventories[actorID][item] += amount
		total = r.Inventories[actorID][item]
		return nil
	})
	return total, err
}

// Inventory returns a copy of actorID's items.
func (s *Storage) Inventory(actorID string) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(record.Inventories[actorID]))
	for item, n := range record.Inventories[actorID] {
		out[item] = n
	}
	return out, nil
}
