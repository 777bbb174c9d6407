// Package router maps raw gateway events onto registry handlers, wraps
// them with the shared middleware chain and turns handler errors into
// user-facing replies.
package router

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	dc "github.com/whykushh/discord-panel-bot/internal/discord"
	"github.com/whykushh/discord-panel-bot/internal/discord/event"
	"github.com/whykushh/discord-panel-bot/internal/discord/flows"
	"github.com/whykushh/discord-panel-bot/internal/discord/middleware"
	"github.com/whykushh/discord-panel-bot/internal/logger"
)

// InteractionOptions configures access checks for routed interactions.
type InteractionOptions struct {
	OwnerID string
}

// InteractionRoute returns the gateway handler for interaction events.
func InteractionRoute(reg *dc.Registry, opts InteractionOptions) func(*discordgo.Session, *discordgo.InteractionCreate) {
	h := Handler(reg, opts)
	return func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		_ = h(event.NewContext(context.Background(), s, ic))
	}
}

// Handler resolves the registry handler for the interaction kind, applies
// the middleware chain and guarantees at most one error reply.
func Handler(reg *dc.Registry, opts InteractionOptions) event.HandlerFunc {
	access := middleware.AccessOptions{OwnerID: opts.OwnerID}

	dispatch := func(c *event.Context) error {
		start := time.Now()

		switch c.Kind() {
		case event.KindSlash:
			name := c.CommandName()
			if cmd, ok := reg.LookupCommand(name); ok {
				h := middleware.OwnerGate(access, cmd.OwnerOnly, cmd.Handler)
				return handleWithSummary(c, "slash."+normalizeHandlerName(name), start, func() error {
					return h(c)
				}, slog.String("command", name))
			}
			if fb := reg.SlashFallback(); fb != nil {
				return handleWithSummary(c, "slash.custom", start, func() error {
					return fb(c)
				}, slog.String("command", name))
			}
			logHandlerSummary(c, "slash."+normalizeHandlerName(name), start, "skip", nil)
			return nil

		case event.KindComponent:
			id := c.CustomID()
			if comp, ok := reg.LookupComponent(id); ok {
				h := middleware.OwnerGate(access, comp.OwnerOnly, comp.Handler)
				return handleWithSummary(c, "component."+normalizeHandlerName(id), start, func() error {
					return h(c)
				}, slog.String("custom_id", id))
			}
			return handleWithSummary(c, "component.not_found", start, func() error {
				return reg.ComponentNotFound()(c)
			}, slog.String("custom_id", id))

		case event.KindModal:
			id := c.CustomID()
			if comp, ok := reg.LookupModal(id); ok {
				h := middleware.OwnerGate(access, comp.OwnerOnly, comp.Handler)
				return handleWithSummary(c, "modal."+normalizeHandlerName(id), start, func() error {
					return h(c)
				}, slog.String("custom_id", id))
			}
			return handleWithSummary(c, "modal.not_found", start, func() error {
				return reg.ComponentNotFound()(c)
			}, slog.String("custom_id", id))

		default:
			return handleWithSummary(c, "interaction.unknown", start, func() error {
				return c.ReplyEphemeral("Unrecognized interaction.")
			})
		}
	}

	return event.Chain(replyOnError(dispatch), middleware.Recover, middleware.Logging)
}

// replyOnError converts taxonomy errors into a single user-facing reply
// when the handler has not already responded.
func replyOnError(next event.HandlerFunc) event.HandlerFunc {
	return func(c *event.Context) error {
		err := next(c)
		if err == nil || c.Responded() {
			return err
		}

		type userMessager interface{ UserMessage() string }
		var um userMessager
		switch {
		case errors.Is(err, flows.ErrPermissionDenied):
			_ = c.ReplyEphemeral("Owner only.")
		case errors.As(err, &um):
			_ = c.ReplyEphemeral(um.UserMessage())
		default:
			_ = c.ReplyEphemeral("Something went wrong.")
		}
		return err
	}
}

// MessageRoute returns the gateway handler for message events, dispatching
// to the registry's message fallback. Bot authors are skipped so stored
// replies cannot feed back into triggers.
func MessageRoute(reg *dc.Registry) func(*discordgo.Session, *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		fn := reg.MessageFallback()
		if fn == nil || m.Author == nil || m.Author.Bot || m.Content == "" {
			return
		}

		rid := logger.BuildRID(m.ID, m.ChannelID, m.Author.ID)
		ctx := logger.WithRID(context.Background(), rid)
		ctx = logger.WithEventMeta(ctx, m.ID, m.Author.ID, m.ChannelID, m.GuildID)

		defer func() {
			if r := recover(); r != nil {
				logger.Error(ctx, "discord", "ds.panic", slog.Any("err", r))
			}
		}()

		if err := fn(ctx, s, m); err != nil {
			logger.Warn(ctx, "discord", "message.handle",
				slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
			)
		}
	}
}
