package flows

import (
	"fmt"
	"strings"

	"github.com/whykushh/discord-panel-bot/internal/discord/event"
	"github.com/whykushh/discord-panel-bot/internal/discord/format"
	"github.com/whykushh/discord-panel-bot/internal/discord/state"
	"github.com/whykushh/discord-panel-bot/internal/discord/ui"
)

// handlePanel shows the owner control panel.
func (f *Flows) handlePanel(c *event.Context) error {
	return c.ReplyEmbed(ui.PanelEmbed(), ui.PanelRows(), true)
}

// handleCreateCommand starts the command-creation wizard with a type picker.
func (f *Flows) handleCreateCommand(c *event.Context) error {
	f.drafts.SetFlow(c.UserID(), state.FlowAwaitingKind)
	return c.ReplyComponents("What kind of command do you want to create?", ui.KindSelectRow())
}

// handleListCommands renders a summary of every stored automation.
func (f *Flows) handleListCommands(c *event.Context) error {
	doc, err := f.store.Load()
	if err != nil {
		return err
	}

	if len(doc.TextCommands) == 0 && len(doc.SlashCommands) == 0 {
		return c.ReplyEphemeral("No commands yet.")
	}

	var b strings.Builder
	for _, sc := range doc.SlashCommands {
		fmt.Fprintf(&b, "• **/%s** — slash\n", format.EscapeMarkdown(sc.Name))
	}
	for _, tc := range doc.TextCommands {
		fmt.Fprintf(&b, "• **%s** — text trigger\n", format.EscapeMarkdown(tc.Keyword))
	}
	return c.ReplyEphemeral(format.Truncate(b.String(), format.MaxMessageContent))
}
