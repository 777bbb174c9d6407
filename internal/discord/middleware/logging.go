package middleware

import (
	"log/slog"

	"github.com/whykushh/discord-panel-bot/internal/discord/event"
	"github.com/whykushh/discord-panel-bot/internal/logger"
)

// Logging stamps the request context with a correlation id and interaction
// metadata, then logs a sampled receipt line.
func Logging(next event.HandlerFunc) event.HandlerFunc {
	return func(c *event.Context) error {
		rid := logger.BuildRID(c.EventID(), c.ChannelID(), c.UserID())

		ctx := logger.WithRID(c.Context(), rid)
		ctx = logger.WithEventMeta(ctx, c.EventID(), c.UserID(), c.ChannelID(), c.GuildID())
		ctx = logger.WithLogger(ctx, logger.Component("discord"))
		c.SetContext(ctx)

		if logger.ShouldSampleDebug() {
			attrs := []slog.Attr{
				slog.String("status", "ok"),
				slog.String("kind", string(c.Kind())),
			}
			if name := c.CommandName(); name != "" {
				attrs = append(attrs, slog.String("command", name))
			}
			if id := c.CustomID(); id != "" {
				attrs = append(attrs, slog.String("custom_id", logger.SanitizeLimit(id, 128)))
			}
			logger.Debug(ctx, "discord", "event.received", attrs...)
		}

		return next(c)
	}
}
