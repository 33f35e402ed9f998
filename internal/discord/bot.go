// Package discord hosts the command registry on Discord: prefixed messages
// are dispatched as commands and replies go back to the channel.
package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/keshon/commando/internal/config"
	"github.com/keshon/commando/pkg/cmd"
	"github.com/keshon/commando/pkg/retrylimit"
)

// Session is the part of *discordgo.Session the bot needs.
type Session interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	UserChannelPermissions(userID, channelID string, fetchOptions ...discordgo.RequestOption) (int64, error)
}

// Bot is a Discord bot
type Bot struct {
	cfg      *config.Config
	registry *cmd.Registry
	log      zerolog.Logger

	session Session
	limiter *rate.Limiter
	retry   retrylimit.Config
}

// NewBot returns a bot dispatching into registry.
func NewBot(cfg *config.Config, registry *cmd.Registry, log zerolog.Logger) *Bot {
	log = log.With().Str("component", "discord").Logger()
	retry := retrylimit.Default()
	retry.Retryable = transient
	retry.Log = log
	return &Bot{
		cfg:      cfg,
		registry: registry,
		log:      log,
		// Discord allows 5 messages per 5 seconds per channel.
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
		retry:   retry,
	}
}

// Run connects to Discord and serves commands until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.cfg.RequireDiscord(); err != nil {
		return err
	}
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentGuildMessages | discordgo.IntentDirectMessages | discordgo.IntentMessageContent
	b.session = dg

	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.log.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("✅ Discord bot is running")
	})
	dg.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		b.handleMessage(ctx, s.State.User.ID, m.Message)
	})

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	b.log.Info().Msg("❎ Shutdown signal received. Cleaning up...")
	return nil
}

// handleMessage dispatches m when it starts with the command prefix.
func (b *Bot) handleMessage(ctx context.Context, selfID string, m *discordgo.Message) {
	if m.Author == nil || m.Author.ID == selfID || m.Author.Bot {
		return
	}
	line, ok := strings.CutPrefix(m.Content, b.cfg.CommandPrefix)
	if !ok {
		return
	}
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return
	}

	actor := b.actor(m)
	sink := &channelSink{
		ctx:       ctx,
		session:   b.session,
		channelID: m.ChannelID,
		limiter:   b.limiter,
		retry:     b.retry,
		log:       b.log,
	}

	outcome, err := b.registry.Dispatch(ctx, actor, sink, tokens)
	switch {
	case errors.Is(err, cmd.ErrUnknownCommand):
		b.log.Debug().Str("label", tokens[0]).Str("actor", actor.id).Msg("unknown command")
		if s := b.registry.Suggest(tokens[0]); s != "" {
			sink.Send(actor, cmd.Error("Unknown command. Did you mean %s%s?", b.cfg.CommandPrefix, s))
		}
		return
	case err != nil:
		b.log.Error().Err(err).Str("command", tokens[0]).Str("actor", actor.id).Str("guild", actor.guildID).Msg("command failed")
		return
	}
	b.log.Info().
		Str("command", tokens[0]).
		Str("actor", actor.id).
		Str("guild", actor.guildID).
		Stringer("outcome", outcome).
		Msg("command dispatched")
}

func (b *Bot) actor(m *discordgo.Message) *memberActor {
	a := &memberActor{
		id:        m.Author.ID,
		name:      m.Author.Username,
		guildID:   m.GuildID,
		developer: b.cfg.IsDeveloper(m.Author.ID),
	}
	if m.GuildID == "" {
		return a
	}
	perms, err := b.session.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		b.log.Warn().Err(err).Str("actor", a.id).Str("channel", m.ChannelID).Msg("failed to resolve permissions")
		return a
	}
	a.perms = perms
	return a
}
