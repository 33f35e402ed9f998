package constraint

import (
	"context"

	"github.com/keshon/commando/pkg/cmd"
)

// Located is implemented by actors that know where they issued a command
// from (a guild, a world, the console).
type Located interface {
	Location() string
}

// Func adapts plain functions to cmd.Constraint. A nil Failure sends
// nothing.
type Func struct {
	Check   func(ctx context.Context, inv *cmd.Invocation) bool
	Failure func(ctx context.Context, inv *cmd.Invocation)
}

func (f Func) Test(ctx context.Context, inv *cmd.Invocation) bool { return f.Check(ctx, inv) }

func (f Func) OnFailure(ctx context.Context, inv *cmd.Invocation) {
	if f.Failure != nil {
		f.Failure(ctx, inv)
	}
}

// InLocation passes only when the actor's location satisfies allow.
func InLocation(allow func(location string) bool, message string) cmd.Constraint {
	return Func{
		Check: func(_ context.Context, inv *cmd.Invocation) bool {
			l, ok := inv.Actor.(Located)
			return ok && allow(l.Location())
		},
		Failure: func(_ context.Context, inv *cmd.Invocation) {
			inv.Reply(cmd.Error("%s", message))
		},
	}
}

// LocatedOnly rejects actors without a location, e.g. Discord DMs.
func LocatedOnly() cmd.Constraint {
	return InLocation(func(l string) bool { return l != "" }, "This command can only be used in a server.")
}
