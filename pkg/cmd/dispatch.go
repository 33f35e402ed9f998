package cmd

import (
	"context"
	"fmt"
)

// Outcome is the terminal state of one dispatch.
type Outcome uint8

const (
	Executed Outcome = iota + 1
	PermissionDenied
	ParseFailed
	ConstraintFailed
)

func (o Outcome) String() string {
	switch o {
	case Executed:
		return "executed"
	case PermissionDenied:
		return "permission denied"
	case ParseFailed:
		return "parse failed"
	case ConstraintFailed:
		return "constraint failed"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Execute dispatches tokens issued by actor under label. A leading token
// naming a subcommand always wins over argument parsing and re-enters
// Execute on that subcommand, which checks its own permission.
//
// Permission denial is silent. Argument errors are reported to sink as
// caret diagnostics. A failing constraint handles its own messaging. The
// returned error is non-nil only when the body fails.
func (n *Node) Execute(ctx context.Context, actor Actor, sink Sink, label string, tokens []string) (Outcome, error) {
	if !n.permitted(actor) {
		return PermissionDenied, nil
	}

	if len(tokens) > 0 {
		if child, ok := n.children[tokens[0]]; ok {
			return child.Execute(ctx, actor, sink, tokens[0], tokens[1:])
		}
	} else if n.parser.Required() {
		n.report(actor, sink, ErrorRecord{Kind: InsufficientArguments})
		return ParseFailed, nil
	}

	args, errs := n.parser.Parse(tokens)
	if len(errs) > 0 {
		for _, rec := range errs {
			n.report(actor, sink, rec)
		}
		return ParseFailed, nil
	}

	inv := &Invocation{
		Actor:  actor,
		Sink:   sink,
		Node:   n,
		Label:  label,
		Tokens: tokens,
		Args:   args,
	}
	for _, c := range n.constraints {
		if !c.Test(ctx, inv) {
			c.OnFailure(ctx, inv)
			return ConstraintFailed, nil
		}
	}

	if err := n.body(ctx, inv); err != nil {
		return Executed, fmt.Errorf("/%s: %w", n.Path(), err)
	}
	return Executed, nil
}

func (n *Node) permitted(actor Actor) bool {
	if n.permission == "" {
		return true
	}
	return actor != nil && actor.HasPermission(n.permission)
}

func (n *Node) report(actor Actor, sink Sink, rec ErrorRecord) {
	if sink != nil {
		sink.Send(actor, n.Diagnostic(rec))
	}
}

func helpBody(_ context.Context, inv *Invocation) error {
	inv.Reply(inv.Node.Help())
	return nil
}
