package commands

import (
	"context"
	"fmt"

	"github.com/keshon/commando/internal/constraint"
	"github.com/keshon/commando/pkg/cmd"
)

const dailyReward = 100

func dailyCommand(deps Deps) *cmd.Builder {
	return deps.command("daily", "Claim your daily coins.").
		AddConstraint(constraint.LocatedOnly()).
		AddConstraint(&constraint.Cooldown{
			Scope:  "daily",
			Period: deps.Config.DailyCooldown,
			Store:  deps.Store,
			Now:    deps.Now,
		}).
		Run(func(_ context.Context, inv *cmd.Invocation) error {
			total, err := deps.Store.AddItems(inv.Actor.ID(), "coin", dailyReward)
			if err != nil {
				return fmt.Errorf("daily reward: %w", err)
			}
			inv.Reply(cmd.Text{{
				{Text: "You claimed "},
				{Style: cmd.StyleHighlight, Text: fmt.Sprintf("%d coins", dailyReward)},
				{Text: fmt.Sprintf(". You now have %d.", total)},
			}})
			return nil
		})
}
