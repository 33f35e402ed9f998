package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRegistryDispatch(t *testing.T) {
	r := NewRegistry()
	ran := 0
	r.MustRegister(
		giveBuilder(func(context.Context, *Invocation) error { ran++; return nil }),
		NewCommand("ping", ""),
	)

	outcome, err := r.Dispatch(context.Background(), newActor(), &recordingSink{}, []string{"g", "stone"})
	if err != nil || outcome != Executed || ran != 1 {
		t.Fatalf("Dispatch = %v, %v (ran=%d)", outcome, err, ran)
	}

	_, err = r.Dispatch(context.Background(), newActor(), &recordingSink{}, []string{"giv", "stone"})
	if !errors.Is(err, ErrUnknownCommand) || !strings.Contains(err.Error(), `did you mean "give"`) {
		t.Errorf("err = %v", err)
	}
	_, err = r.Dispatch(context.Background(), newActor(), &recordingSink{}, []string{"zzzzzz"})
	if !errors.Is(err, ErrUnknownCommand) || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("err = %v", err)
	}
	if _, err := r.Dispatch(context.Background(), newActor(), &recordingSink{}, nil); !errors.Is(err, ErrNoCommand) {
		t.Errorf("err = %v", err)
	}
}

func TestRegistryConflict(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(NewCommand("give", "", "g").MustBuild()); err != nil {
		t.Fatal(err)
	}
	err := r.Register(NewCommand("gift", "", "g").MustBuild())
	if !errors.Is(err, ErrConfigurationConflict) {
		t.Fatalf("err = %v", err)
	}
	if r.Get("gift") != nil {
		t.Error("conflicting root was partially registered")
	}
	if len(r.GetAll()) != 1 {
		t.Errorf("GetAll() = %d commands", len(r.GetAll()))
	}
}

func TestRegistryRejectsSubcommand(t *testing.T) {
	root := NewCommand("a", "").MustChildren(NewCommand("b", "")).MustBuild()
	child, _ := root.Child("b")
	if err := NewRegistry().Register(child); !errors.Is(err, ErrInvalidCommand) {
		t.Errorf("err = %v", err)
	}
}

func TestRegistryGetAllSorted(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(NewCommand("zeta", ""), NewCommand("alpha", "", "a"), NewCommand("mid", ""))
	var names []string
	for _, n := range r.GetAll() {
		names = append(names, n.Name())
	}
	if got := strings.Join(names, ","); got != "alpha,mid,zeta" {
		t.Errorf("GetAll() = %s", got)
	}
}
