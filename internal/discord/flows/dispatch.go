package flows

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/whykushh/discord-panel-bot/internal/discord/event"
	"github.com/whykushh/discord-panel-bot/internal/logger"
)

// handleCustomSlash answers slash invocations that have no built-in by
// looking them up in the store. A miss is not an error: the platform may
// still hold registrations for commands deleted elsewhere.
func (f *Flows) handleCustomSlash(c *event.Context) error {
	doc, err := f.store.Load()
	if err != nil {
		return err
	}

	name := c.CommandName()
	for _, sc := range doc.SlashCommands {
		if sc.Name == name {
			return c.Reply(sc.Response)
		}
	}

	logger.Debug(c.Context(), "flow", "slash.ghost",
		slog.String("command", name),
	)
	return nil
}

// HandleMessage fires the first stored keyword trigger whose keyword is a
// case-insensitive substring of the message. At most one trigger fires
// per message.
func (f *Flows) HandleMessage(ctx context.Context, s event.Session, m *discordgo.MessageCreate) error {
	doc, err := f.store.Load()
	if err != nil {
		return err
	}
	if len(doc.TextCommands) == 0 {
		return nil
	}

	content := strings.ToLower(m.Content)
	for _, tc := range doc.TextCommands {
		if tc.Keyword == "" || !strings.Contains(content, strings.ToLower(tc.Keyword)) {
			continue
		}
		logger.Debug(ctx, "flow", "trigger.fire",
			slog.String("keyword", logger.SanitizeLimit(tc.Keyword, 64)),
		)
		if _, err := s.ChannelMessageSend(m.ChannelID, tc.Response); err != nil {
			return err
		}
		return nil
	}
	return nil
}
