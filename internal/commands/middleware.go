package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/keshon/commando/internal/constraint"
	"github.com/keshon/commando/internal/storage"
	"github.com/keshon/commando/pkg/cmd"
)

// WithHistory records every executed body in the command history. Storage
// failures are logged and never fail the command.
func WithHistory(store *storage.Storage, now func() time.Time, log zerolog.Logger) cmd.Middleware {
	return func(next cmd.Body) cmd.Body {
		return func(ctx context.Context, inv *cmd.Invocation) error {
			err := next(ctx, inv)
			if store == nil {
				return err
			}

			rec := storage.HistoryRecord{
				ActorID:   inv.Actor.ID(),
				ActorName: inv.Actor.Name(),
				Command:   inv.Node.Path(),
				Label:     inv.Label,
				Args:      append([]string(nil), inv.Tokens...),
				Outcome:   "ok",
				Datetime:  now(),
			}
			if l, ok := inv.Actor.(constraint.Located); ok {
				rec.Location = l.Location()
			}
			if err != nil {
				rec.Outcome = "error: " + err.Error()
			}
			if e := store.AppendCommandToHistory(rec); e != nil {
				log.Warn().Err(e).Str("command", rec.Command).Msg("failed to log command")
			}
			return err
		}
	}
}

// WithRecover turns a panicking body into an error and tells the actor
// something went wrong.
func WithRecover(log zerolog.Logger) cmd.Middleware {
	return func(next cmd.Body) cmd.Body {
		return func(ctx context.Context, inv *cmd.Invocation) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error().Interface("panic", r).Str("command", inv.Node.Path()).Msg("command panicked")
					inv.Reply(cmd.Error("Something went wrong while running /%s.", inv.Node.Path()))
					err = fmt.Errorf("panic: %v", r)
				}
			}()
			return next(ctx, inv)
		}
	}
}
