// Package middleware provides the wrappers applied around interaction
// handlers: panic recovery, access gating and request logging.
package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/whykushh/discord-panel-bot/internal/discord/event"
	"github.com/whykushh/discord-panel-bot/internal/logger"
)

// Recover catches panics in handlers and converts them into a single
// generic reply so the gateway loop keeps running.
func Recover(next event.HandlerFunc) event.HandlerFunc {
	return func(c *event.Context) error {
		defer func() {
			if r := recover(); r != nil {
				logger.Error(c.Context(), "discord", "ds.panic",
					slog.Any("err", r),
					slog.String("stack", string(debug.Stack())),
				)
				if !c.Responded() {
					_ = c.ReplyEphemeral("Something went wrong.")
				}
			}
		}()
		return next(c)
	}
}
