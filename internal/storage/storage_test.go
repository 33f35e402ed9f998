package storage

import (
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func newStore(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "datastore.json"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCooldownLifecycle(t *testing.T) {
	s := newStore(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	if _, ok, err := s.GetCooldown("daily", "u1"); err != nil || ok {
		t.Fatalf("GetCooldown on empty store = %v, %v", ok, err)
	}
	if err := s.SetCooldown("daily", "u1", now.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := s.SetCooldown("daily", "u2", now.Add(-time.Hour)); err != nil {
		t.Fatal(err)
	}
	until, ok, err := s.GetCooldown("daily", "u1")
	if err != nil || !ok || !until.Equal(now.Add(time.Hour)) {
		t.Fatalf("GetCooldown = %v, %v, %v", until, ok, err)
	}

	removed, err := s.ClearExpiredCooldowns(now)
	if err != nil || removed != 1 {
		t.Fatalf("ClearExpiredCooldowns = %d, %v", removed, err)
	}
	if _, ok, _ := s.GetCooldown("daily", "u2"); ok {
		t.Error("expired cooldown survived")
	}

	removed, err = s.ClearCooldown("", "u1")
	if err != nil || removed != 1 {
		t.Fatalf("ClearCooldown = %d, %v", removed, err)
	}
	if _, ok, _ := s.GetCooldown("daily", "u1"); ok {
		t.Error("cleared cooldown survived")
	}
}

func TestHistoryNewestFirstAndBounded(t *testing.T) {
	s := newStore(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < commandHistoryLimit+5; i++ {
		err := s.AppendCommandToHistory(HistoryRecord{
			ActorID:  "u",
			Command:  "ping",
			Datetime: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	all, err := s.FetchCommandHistory(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != commandHistoryLimit {
		t.Errorf("len = %d, want %d", len(all), commandHistoryLimit)
	}
	top, _ := s.FetchCommandHistory(3)
	if len(top) != 3 || !top[0].Datetime.After(top[1].Datetime) {
		t.Errorf("FetchCommandHistory(3) = %v", top)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datastore.json")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	until := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := s.SetCooldown("daily", "u1", until); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	got, ok, err := s.GetCooldown("daily", "u1")
	if err != nil || !ok || !got.Equal(until) {
		t.Errorf("after reopen GetCooldown = %v, %v, %v", got, ok, err)
	}
}

func TestCloseStopsAutosave(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "datastore.json"))
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan error, 1)
	go func() { done <- s.Close() }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Close: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return")
	}
	if err := s.SetCooldown("daily", "u1", time.Now()); err == nil {
		t.Error("SetCooldown after Close should fail")
	}
}

func TestReserveCooldown(t *testing.T) {
	s := newStore(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	if left, err := s.ReserveCooldown("daily", "u1", now, time.Hour); err != nil || left != 0 {
		t.Fatalf("first ReserveCooldown = %v, %v", left, err)
	}
	if left, err := s.ReserveCooldown("daily", "u1", now.Add(20*time.Minute), time.Hour); err != nil || left != 40*time.Minute {
		t.Fatalf("second ReserveCooldown = %v, %v", left, err)
	}
	until, ok, err := s.GetCooldown("daily", "u1")
	if err != nil || !ok || !until.Equal(now.Add(time.Hour)) {
		t.Fatalf("a refused reservation must not move the expiry: %v, %v, %v", until, ok, err)
	}
	if left, err := s.ReserveCooldown("daily", "u1", now.Add(time.Hour), time.Hour); err != nil || left != 0 {
		t.Fatalf("ReserveCooldown at expiry = %v, %v", left, err)
	}
}

func TestReserveCooldownConcurrent(t *testing.T) {
	s := newStore(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			left, err := s.ReserveCooldown("daily", "u1", now, time.Hour)
			if err != nil {
				t.Error(err)
				return
			}
			if left == 0 {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if granted != 1 {
		t.Errorf("granted %d reservations, want 1", granted)
	}
}

func TestInventory(t *testing.T) {
	s := newStore(t)
	if total, err := s.AddItems("u1", "wood", 3); err != nil || total != 3 {
		t.Fatalf("AddItems = %d, %v", total, err)
	}
	if total, err := s.AddItems("u1", "wood", 2); err != nil || total != 5 {
		t.Fatalf("AddItems = %d, %v", total, err)
	}
	inv, err := s.Inventory("u1")
	if err != nil || inv["wood"] != 5 || len(inv) != 1 {
		t.Fatalf("Inventory = %v, %v", inv, err)
	}
	inv["wood"] = 100
	if again, _ := s.Inventory("u1"); again["wood"] != 5 {
		t.Error("Inventory must return a copy")
	}
	if empty, err := s.Inventory("u2"); err != nil || len(empty) != 0 {
		t.Errorf("Inventory(u2) = %v, %v", empty, err)
	}
}
