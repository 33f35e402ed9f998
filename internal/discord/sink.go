package discord

import (
	"context"
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/keshon/commando/internal/render"
	"github.com/keshon/commando/pkg/cmd"
	"github.com/keshon/commando/pkg/retrylimit"
)

// channelSink replies in the channel a command came from.
type channelSink struct {
	ctx       context.Context
	session   Session
	channelID string
	limiter   *rate.Limiter
	retry     retrylimit.Config
	log       zerolog.Logger
}

func (s *channelSink) Send(_ cmd.Actor, text cmd.Text) {
	content := render.Discord(text)
	err := retrylimit.Do(s.ctx, s.retry, s.limiter, func() error {
		_, err := s.session.ChannelMessageSend(s.channelID, content)
		return err
	})
	if err != nil {
		s.log.Error().Err(err).Str("channel", s.channelID).Msg("failed to send reply")
	}
}

// transient reports whether a Discord API error is worth retrying.
func transient(err error) bool {
	var rest *discordgo.RESTError
	if errors.As(err, &rest) && rest.Response != nil {
		code := rest.Response.StatusCode
		return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
	}
	return retrylimit.IsTransient(err)
}
