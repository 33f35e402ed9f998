// cmd/cli/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/keshon/commando/internal/commands"
	"github.com/keshon/commando/internal/config"
	"github.com/keshon/commando/internal/console"
	"github.com/keshon/commando/internal/logging"
	"github.com/keshon/commando/internal/storage"
	"github.com/keshon/commando/pkg/cmd"
	"github.com/keshon/commando/pkg/jobmgr"
)

// Usage: cli [command args...]. Without arguments it starts a prompt.
func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.StoragePath).Msg("failed to open storage")
	}
	defer store.Close()

	jobs := jobmgr.NewManager(ctx, logger)
	defer jobs.StopAll()
	if err := jobs.Start("cooldown-cleaner", storage.RunCooldownCleaner(store, cfg.CleanInterval, logger)); err != nil {
		logger.Fatal().Err(err).Msg("failed to start cooldown cleaner")
	}

	err = commands.Register(cmd.DefaultRegistry, commands.Deps{
		Store:  store,
		Jobs:   jobs,
		Config: cfg,
		Log:    logger,
		Reload: func(context.Context) error {
			fresh, err := config.New()
			if err != nil {
				return err
			}
			return logging.SetLevel(fresh.LogLevel)
		},
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid command configuration")
	}

	term := console.New(cmd.DefaultRegistry, os.Stdin, os.Stdout, logger)
	if len(os.Args) > 1 {
		term.Execute(ctx, strings.Join(os.Args[1:], " "))
		return
	}
	if err := term.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error().Err(err).Msg("console stopped")
	}
}
