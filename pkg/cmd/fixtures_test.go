package cmd

import (
	"context"
	"sync"
)

type testActor struct {
	id    string
	perms map[string]bool
}

func newActor(perms ...string) *testActor {
	a := &testActor{id: "tester", perms: make(map[string]bool)}
	for _, p := range perms {
		a.perms[p] = true
	}
	return a
}

func (a *testActor) ID() string                    { return a.id }
func (a *testActor) Name() string                  { return a.id }
func (a *testActor) HasPermission(key string) bool { return a.perms[key] }

type recordingSink struct {
	mu   sync.Mutex
	sent []Text
}

func (s *recordingSink) Send(_ Actor, text Text) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, text)
}

func (s *recordingSink) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sent) == 0 {
		return ""
	}
	return s.sent[len(s.sent)-1].String()
}

// countingConstraint records how often it was tested.
type countingConstraint struct {
	pass     bool
	tests    int
	failures int
}

func (c *countingConstraint) Test(context.Context, *Invocation) bool {
	c.tests++
	return c.pass
}

func (c *countingConstraint) OnFailure(context.Context, *Invocation) {
	c.failures++
}

var itemType = Enum("item", "wood", "stone")

func giveBuilder(body Body) *Builder {
	return NewCommand("give", "Give an item", "g").
		MustArgs(
			Required("item", itemType),
			Optional("amount", Integer),
		).
		Run(body)
}
