package commands

import (
	"context"
	"fmt"

	"github.com/keshon/commando/pkg/cmd"
)

func adminCommand(deps Deps) *cmd.Builder {
	cooldown := cmd.NewCommand("cooldown", "Inspect and reset cooldowns.", "cd").
		MustChildren(
			cmd.NewCommand("clear", "Reset an actor's cooldowns, in one scope or all of them.").
				MustArgs(
					cmd.Required("actor", cmd.String),
					cmd.Optional("scope", cmd.String),
				).
				Run(func(_ context.Context, inv *cmd.Invocation) error {
					actor := inv.Args.String("actor", "")
					removed, err := deps.Store.ClearCooldown(inv.Args.String("scope", ""), actor)
					if err != nil {
						return fmt.Errorf("clear cooldown: %w", err)
					}
					inv.Replyf("Cleared %d cooldown(s) for %s.", removed, actor)
					return nil
				}),
			cmd.NewCommand("set", "Put an actor on cooldown.").
				MustArgs(
					cmd.Required("actor", cmd.String),
					cmd.Required("for", cmd.Duration),
					cmd.Optional("scope", cmd.String),
				).
				Run(func(_ context.Context, inv *cmd.Invocation) error {
					actor := inv.Args.String("actor", "")
					scope := inv.Args.String("scope", "daily")
					period := inv.Args.Duration("for", 0)
					if err := deps.Store.SetCooldown(scope, actor, deps.Now().Add(period)); err != nil {
						return fmt.Errorf("set cooldown: %w", err)
					}
					inv.Replyf("%s is on %s cooldown for %s.", actor, scope, period)
					return nil
				}),
		)

	return deps.command("admin", "Maintenance commands.").
		Permission("commando.admin").
		MustChildren(
			cmd.NewCommand("reload", "Reload configuration.").
				Run(func(ctx context.Context, inv *cmd.Invocation) error {
					if deps.Reload == nil {
						inv.Replyf("Nothing to reload.")
						return nil
					}
					if err := deps.Reload(ctx); err != nil {
						inv.Reply(cmd.Error("Reload failed: %v", err))
						return fmt.Errorf("reload: %w", err)
					}
					inv.Replyf("Configuration reloaded.")
					return nil
				}),
			cooldown,
			cmd.NewCommand("jobs", "List background jobs.").
				Run(func(_ context.Context, inv *cmd.Invocation) error {
					if deps.Jobs == nil {
						inv.Replyf("No jobs are running.")
						return nil
					}
					inv.Replyf("%s", deps.Jobs.Status())
					return nil
				}),
		)
}
