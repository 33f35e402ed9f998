// Package cmd is a transport-agnostic command core: a tree of named commands
// with typed positional arguments, constraints and a body. Hosts (Discord,
// terminal, tests) supply the Actor and Sink and feed pre-split tokens in;
// everything between the first token and the body call happens here.
//
// Trees are built with Builder at startup and frozen by Build. A built tree
// is read-only and safe for concurrent dispatch. Builders are not safe for
// concurrent use and must be finished before the first dispatch.
package cmd

import "context"

// Invocation is what a constraint or body sees for one dispatch.
type Invocation struct {
	Actor  Actor
	Sink   Sink
	Node   *Node
	Label  string
	Tokens []string
	Args   Args
}

// Reply sends text to the invoking actor.
func (inv *Invocation) Reply(text Text) {
	if inv.Sink != nil {
		inv.Sink.Send(inv.Actor, text)
	}
}

// Replyf sends a single plain line to the invoking actor.
func (inv *Invocation) Replyf(format string, args ...any) {
	inv.Reply(Plain(format, args...))
}

// Body is the executable part of a command.
type Body func(ctx context.Context, inv *Invocation) error

// Constraint is a gate evaluated after parsing and before the body. Test
// must not have side effects the caller relies on when it returns false;
// OnFailure owns any messaging.
type Constraint interface {
	Test(ctx context.Context, inv *Invocation) bool
	OnFailure(ctx context.Context, inv *Invocation)
}
