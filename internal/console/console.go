// Package console hosts the command registry on a terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/keshon/commando/internal/render"
	"github.com/keshon/commando/pkg/cmd"
)

// Actor is the operator at the terminal. It holds every permission.
type Actor struct {
	Username string
}

func (a Actor) ID() string                { return "console" }
func (a Actor) Name() string              { return a.Username }
func (a Actor) HasPermission(string) bool { return true }
func (a Actor) Location() string          { return "console" }

// Console reads command lines from in and writes replies to out.
type Console struct {
	registry *cmd.Registry
	actor    cmd.Actor
	in       io.Reader
	out      io.Writer
	render   render.Func
	prompt   string
	log      zerolog.Logger
}

// New returns a console with a lipgloss renderer bound to out.
func New(registry *cmd.Registry, in io.Reader, out io.Writer, log zerolog.Logger) *Console {
	return &Console{
		registry: registry,
		actor:    Actor{Username: "console"},
		in:       in,
		out:      out,
		render:   render.Console(out),
		prompt:   "> ",
		log:      log.With().Str("component", "console").Logger(),
	}
}

// WithRenderer replaces the renderer.
func (c *Console) WithRenderer(r render.Func) *Console {
	c.render = r
	return c
}

// WithPrompt replaces the prompt; an empty prompt prints nothing.
func (c *Console) WithPrompt(p string) *Console {
	c.prompt = p
	return c
}

func (c *Console) Send(_ cmd.Actor, text cmd.Text) {
	fmt.Fprintln(c.out, c.render(text))
}

// Run serves lines until in is exhausted, "exit" is read or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)
	for {
		if c.prompt != "" {
			fmt.Fprint(c.out, c.prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			return nil
		}
		c.Execute(ctx, line)
	}
}

// Execute dispatches a single line. A leading slash is optional.
func (c *Console) Execute(ctx context.Context, line string) {
	tokens := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), "/"))
	if len(tokens) == 0 {
		return
	}
	outcome, err := c.registry.Dispatch(ctx, c.actor, c, tokens)
	switch {
	case errors.Is(err, cmd.ErrUnknownCommand):
		msg := fmt.Sprintf("Unknown command %q.", tokens[0])
		if s := c.registry.Suggest(tokens[0]); s != "" {
			msg += fmt.Sprintf(" Did you mean /%s?", s)
		}
		c.Send(c.actor, cmd.Error("%s", msg))
	case err != nil:
		c.log.Error().Err(err).Str("command", tokens[0]).Msg("command failed")
		c.Send(c.actor, cmd.Error("%v", err))
	default:
		c.log.Debug().Str("command", tokens[0]).Stringer("outcome", outcome).Msg("command dispatched")
	}
}
