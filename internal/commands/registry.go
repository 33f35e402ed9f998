// Package commands is the stock command set shared by every host.
package commands

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/keshon/commando/internal/config"
	"github.com/keshon/commando/internal/constraint"
	"github.com/keshon/commando/internal/storage"
	"github.com/keshon/commando/pkg/cmd"
	"github.com/keshon/commando/pkg/jobmgr"
)

// Deps are the services stock commands run against.
type Deps struct {
	Store  *storage.Storage
	Jobs   *jobmgr.Manager
	Config *config.Config
	Log    zerolog.Logger

	// Reload re-reads configuration for /admin reload. Nil disables it.
	Reload func(ctx context.Context) error
	// Intn and Now default to math/rand and time.Now.
	Intn func(n int) int
	Now  func() time.Time

	limit cmd.Constraint
}

func (d *Deps) defaults() {
	if d.Intn == nil {
		d.Intn = rand.Intn
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Config == nil {
		d.Config = &config.Config{DailyCooldown: 24 * time.Hour}
	}
}

// command starts a root command. The shared rate limit, when configured,
// is its first constraint so a throttled call never reaches later gates.
func (d Deps) command(name, description string, aliases ...string) *cmd.Builder {
	b := cmd.NewCommand(name, description, aliases...)
	if d.limit != nil {
		b.AddConstraint(d.limit)
	}
	return b
}

// categories maps root command names to their help category.
type categories map[string]string

// Register builds the stock commands and adds them to r. Any configuration
// error aborts registration.
func Register(r *cmd.Registry, deps Deps) error {
	deps.defaults()
	cats := categories{}

	if deps.Config.RatePerMinute > 0 {
		deps.limit = constraint.NewRateLimit(deps.Config.RatePerMinute).WithClock(deps.Now)
	}

	defs := []struct {
		category string
		builder  *cmd.Builder
	}{
		{config.CategoryInformation, helpCommand(deps, r, cats)},
		{config.CategoryInformation, pingCommand(deps)},
		{config.CategoryInformation, historyCommand(deps)},
		{config.CategoryUtilities, sayCommand(deps)},
		{config.CategoryGameplay, giveCommand(deps)},
		{config.CategoryGameplay, inventoryCommand(deps)},
		{config.CategoryGameplay, dailyCommand(deps)},
		{config.CategoryGameplay, rollCommand(deps)},
		{config.CategoryGameplay, waypointCommand(deps)},
		{config.CategoryMaintenance, adminCommand(deps)},
	}

	for _, def := range defs {
		node, err := def.builder.
			Use(WithHistory(deps.Store, deps.Now, deps.Log), WithRecover(deps.Log)).
			Build()
		if err != nil {
			return err
		}
		if err := r.Register(node); err != nil {
			return err
		}
		cats[node.Name()] = def.category
	}
	return nil
}
