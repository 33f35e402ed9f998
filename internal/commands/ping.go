package commands

import (
	"context"

	"github.com/keshon/commando/pkg/cmd"
)

func pingCommand(deps Deps) *cmd.Builder {
	return deps.command("ping", "Pong!").
		Run(func(_ context.Context, inv *cmd.Invocation) error {
			inv.Replyf("🏓 Pong!")
			return nil
		})
}
