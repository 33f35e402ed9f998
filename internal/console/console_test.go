package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/keshon/commando/internal/render"
	"github.com/keshon/commando/pkg/cmd"
)

func newConsole(in string) (*Console, *bytes.Buffer) {
	reg := cmd.NewRegistry()
	reg.MustRegister(
		cmd.NewCommand("add", "").
			Permission("commando.admin").
			MustArgs(cmd.Required("a", cmd.Integer), cmd.Required("b", cmd.Integer)).
			Run(func(_ context.Context, inv *cmd.Invocation) error {
				inv.Replyf("%d", inv.Args.Int("a", 0)+inv.Args.Int("b", 0))
				return nil
			}),
		cmd.NewCommand("fail", "").
			Run(func(context.Context, *cmd.Invocation) error { return errors.New("nope") }),
	)
	var out bytes.Buffer
	c := New(reg, strings.NewReader(in), &out, zerolog.Nop()).
		WithRenderer(render.Plain).
		WithPrompt("")
	return c, &out
}

func TestRun(t *testing.T) {
	c, out := newConsole("add 1 2\n/add 3 4\n\nexit\nadd 5 6\n")
	if err := c.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "3\n7\n" {
		t.Errorf("output = %q", got)
	}
}

func TestExecuteReports(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"add 1 x", "/add 1 x\n      ^\nCommand expected argument 2 to be an int but a string was given.\n"},
		{"ad 1 2", "Unknown command \"ad\". Did you mean /add?\n"},
		{"fail", "/fail: nope\n"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			c, out := newConsole("")
			c.Execute(context.Background(), tt.line)
			if got := out.String(); got != tt.want {
				t.Errorf("output =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	c, out := newConsole("add 1 2\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q", out.String())
	}
}
