package storage

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// RunCooldownCleaner clears expired cooldowns every interval until ctx is
// done. It is shaped as a jobmgr runner.
func RunCooldownCleaner(store *Storage, interval time.Duration, log zerolog.Logger) func(context.Context) error {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case now := <-ticker.C:
				removed, err := store.ClearExpiredCooldowns(now)
				if err != nil {
					log.Error().Err(err).Msg("clearing expired cooldowns")
					continue
				}
				if removed > 0 {
					log.Debug().Int("removed", removed).Msg("expired cooldowns cleared")
				}
			}
		}
	}
}
