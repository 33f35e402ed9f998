package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/keshon/commando/pkg/cmd"
)

func historyCommand(deps Deps) *cmd.Builder {
	return deps.command("history", "Show recently executed commands.").
		MustArgs(cmd.Optional("limit", cmd.IntRange(1, 50))).
		Run(func(_ context.Context, inv *cmd.Invocation) error {
			records, err := deps.Store.FetchCommandHistory(inv.Args.Int("limit", 10))
			if err != nil {
				return fmt.Errorf("fetch history: %w", err)
			}
			if len(records) == 0 {
				inv.Replyf("No commands recorded yet.")
				return nil
			}
			var text cmd.Text
			for _, r := range records {
				line := strings.TrimSpace("/" + r.Command + " " + strings.Join(r.Args, " "))
				text = append(text, cmd.Line{
					{Text: r.Datetime.Format("2006-01-02 15:04") + " "},
					{Style: cmd.StyleHighlight, Text: r.ActorName},
					{Text: ": " + line},
				})
			}
			inv.Reply(text)
			return nil
		})
}
