// cmd/discord/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/keshon/commando/internal/commands"
	"github.com/keshon/commando/internal/config"
	"github.com/keshon/commando/internal/discord"
	"github.com/keshon/commando/internal/logging"
	"github.com/keshon/commando/internal/storage"
	"github.com/keshon/commando/pkg/cmd"
	"github.com/keshon/commando/pkg/jobmgr"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.RequireDiscord(); err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		log.Fatal(err)
	}
	logger.Info().Msg("Starting commando bot...")

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

	bot := discord.NewBot(cfg, cmd.DefaultRegistry, logger)
	if err := bot.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("Discord bot error")
		return
	}
	logger.Info().Msg("Discord bot exited cleanly")
}
