package commands

import (
	"context"
	"sort"

	"github.com/keshon/commando/internal/config"
	"github.com/keshon/commando/pkg/cmd"
)

func helpCommand(deps Deps, r *cmd.Registry, cats categories) *cmd.Builder {
	return deps.command("help", "Show available commands or how to use one.", "?").
		MustArgs(cmd.Optional("command", cmd.String)).
		Run(func(_ context.Context, inv *cmd.Invocation) error {
			if name := inv.Args.String("command", ""); name != "" {
				node := r.Get(name)
				if node == nil || !permitted(inv.Actor, node) {
					inv.Reply(cmd.Error("Unknown command %q.", name))
					return nil
				}
				inv.Reply(node.Help())
				return nil
			}
			inv.Reply(buildHelpMessage(inv.Actor, r.GetAll(), cats))
			return nil
		})
}

func permitted(actor cmd.Actor, n *cmd.Node) bool {
	return n.Permission() == "" || actor.HasPermission(n.Permission())
}

// buildHelpMessage groups the commands actor may run by category, ordered
// by category weight.
func buildHelpMessage(actor cmd.Actor, nodes []*cmd.Node, cats categories) cmd.Text {
	grouped := make(map[string][]*cmd.Node)
	for _, n := range nodes {
		if !permitted(actor, n) {
			continue
		}
		grouped[cats[n.Name()]] = append(grouped[cats[n.Name()]], n)
	}

	names := make([]string, 0, len(grouped))
	for cat := range grouped {
		names = append(names, cat)
	}
	sort.Slice(names, func(i, j int) bool {
		wi, wj := config.CategoryWeight(names[i]), config.CategoryWeight(names[j])
		if wi != wj {
			return wi < wj
		}
		return names[i] < names[j]
	})

	var text cmd.Text
	for i, cat := range names {
		if i > 0 {
			text = append(text, cmd.Line{})
		}
		if cat == "" {
			cat = "Other"
		}
		text = append(text, cmd.Line{{Style: cmd.StyleHighlight, Text: cat}})
		for _, n := range grouped[names[i]] {
			text = append(text, cmd.Line{{Text: n.Usage() + " - " + n.Description()}})
		}
	}
	return text
}
