package commands

import (
	"context"

	"github.com/keshon/commando/pkg/cmd"
)

func sayCommand(deps Deps) *cmd.Builder {
	return deps.command("say", "Repeat a message.", "echo").
		MustArgs(cmd.Required("message", cmd.Rest)).
		Run(func(_ context.Context, inv *cmd.Invocation) error {
			inv.Replyf("%s", inv.Args.String("message", ""))
			return nil
		})
}

func waypointCommand(deps Deps) *cmd.Builder {
	return deps.command("waypoint", "Mark a named position.", "wp").
		MustArgs(
			cmd.Required("name", cmd.String),
			cmd.Required("pos", cmd.Position),
		).
		Run(func(_ context.Context, inv *cmd.Invocation) error {
			v, _ := inv.Args.Get("pos")
			inv.Replyf("Waypoint %s set at %v.", inv.Args.String("name", ""), v)
			return nil
		})
}
