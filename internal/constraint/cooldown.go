// Package constraint holds the stock pre-execution gates: cooldowns, rate
// limits and context restrictions.
package constraint

import (
	"context"
	"time"

	"github.com/keshon/commando/pkg/cmd"
)

// CooldownStore persists cooldown expiries per scope and actor.
// ReserveCooldown must check and start a period atomically, returning the
// time left when a period is still running.
type CooldownStore interface {
	GetCooldown(scope, actorID string) (time.Time, bool, error)
	ReserveCooldown(scope, actorID string, now time.Time, period time.Duration) (time.Duration, error)
}

// Cooldown allows an actor to pass once per Period within Scope. Passing
// the test starts the next period.
type Cooldown struct {
	Scope  string
	Period time.Duration
	Store  CooldownStore
	// Now defaults to time.Now.
	Now func() time.Time
}

func (c *Cooldown) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Remaining returns how long actorID still has to wait.
func (c *Cooldown) Remaining(actorID string) (time.Duration, error) {
	until, ok, err := c.Store.GetCooldown(c.Scope, actorID)
	if err != nil || !ok {
		return 0, err
	}
	if left := until.Sub(c.now()); left > 0 {
		return left, nil
	}
	return 0, nil
}

func (c *Cooldown) Test(_ context.Context, inv *cmd.Invocation) bool {
	left, err := c.Store.ReserveCooldown(c.Scope, inv.Actor.ID(), c.now(), c.Period)
	return err == nil && left <= 0
}

func (c *Cooldown) OnFailure(_ context.Context, inv *cmd.Invocation) {
	left, err := c.Remaining(inv.Actor.ID())
	if err != nil || left <= 0 {
		inv.Reply(cmd.Error("Cooldowns are unavailable right now, try again later."))
		return
	}
	inv.Reply(cmd.Text{{
		{Style: cmd.StyleError, Text: "You must wait "},
		{Style: cmd.StyleHighlight, Text: left.Round(time.Second).String()},
		{Style: cmd.StyleError, Text: " before using /" + inv.Node.Path() + " again."},
	}})
}
