package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/keshon/commando/pkg/cmd"
)

// Item is the enum of things /give hands out.
var Item = cmd.Enum("item", "wood", "stone", "iron")

const maxStack = 64

func giveCommand(deps Deps) *cmd.Builder {
	return deps.command("give", "Give yourself an item.").
		Permission("commando.give").
		MustArgs(
			cmd.Required("item", Item),
			cmd.Optional("amount", cmd.IntRange(1, maxStack)),
		).
		Run(func(_ context.Context, inv *cmd.Invocation) error {
			item := inv.Args.String("item", "")
			amount := inv.Args.Int("amount", 1)
			total, err := deps.Store.AddItems(inv.Actor.ID(), item, amount)
			if err != nil {
				inv.Reply(cmd.Error("Could not update your inventory."))
				return fmt.Errorf("add items: %w", err)
			}
			inv.Replyf("Gave %d × %s to %s (now %d).", amount, item, inv.Actor.Name(), total)
			return nil
		})
}

func inventoryCommand(deps Deps) *cmd.Builder {
	return deps.command("inventory", "List your items.", "inv").
		Run(func(_ context.Context, inv *cmd.Invocation) error {
			items, err := deps.Store.Inventory(inv.Actor.ID())
			if err != nil {
				return fmt.Errorf("inventory: %w", err)
			}
			if len(items) == 0 {
				inv.Replyf("Your inventory is empty.")
				return nil
			}
			names := make([]string, 0, len(items))
			for name := range items {
				names = append(names, name)
			}
			sort.Strings(names)
			text := cmd.Text{{{Style: cmd.StyleHighlight, Text: inv.Actor.Name() + "'s inventory"}}}
			for _, name := range names {
				text = append(text, cmd.Line{{Text: fmt.Sprintf(" - %s: %d", name, items[name])}})
			}
			inv.Reply(text)
			return nil
		})
}
