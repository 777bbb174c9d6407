package flows

import (
	"strings"

	"github.com/whykushh/discord-panel-bot/internal/discord/event"
	"github.com/whykushh/discord-panel-bot/internal/discord/format"
	"github.com/whykushh/discord-panel-bot/internal/discord/state"
	"github.com/whykushh/discord-panel-bot/internal/discord/ui"
)

// handleAnnounceStart opens the announcement form. Reached from both the
// /announce command and the panel button.
func (f *Flows) handleAnnounceStart(c *event.Context) error {
	f.drafts.SetFlow(c.UserID(), state.FlowAwaitingAnnounceForm)
	m := ui.AnnounceModal()
	return c.ShowModal(m.CustomID, m.Title, m.Components)
}

// handleAnnounceForm stores the announcement draft and asks for a channel.
func (f *Flows) handleAnnounceForm(c *event.Context) error {
	if err := f.requireFlow(c.UserID(), state.FlowAwaitingAnnounceForm); err != nil {
		return err
	}

	text := strings.TrimSpace(c.ModalValue(ui.FieldText))
	if text == "" {
		return &ValidationError{Field: "announcement", Reason: "must not be empty"}
	}

	f.drafts.SetAnnounce(c.UserID(), &state.AnnouncementDraft{
		Text: format.Truncate(text, format.MaxMessageContent),
	})
	f.drafts.SetFlow(c.UserID(), state.FlowAwaitingAnnounceChannel)
	return c.ReplyComponents("Where should the announcement go?", ui.ChannelSelectRow(ui.IDAnnounceChannel, "Pick a channel"))
}

// handleAnnounceChannel posts the pending announcement and consumes the
// draft.
func (f *Flows) handleAnnounceChannel(c *event.Context) error {
	draft, ok := f.drafts.Announce(c.UserID())
	if !ok {
		return &NotFoundError{
			What: "draft",
			Hint: "Nothing to send: the draft expired or was already used.",
		}
	}

	values := c.SelectValues()
	if len(values) == 0 {
		return &ValidationError{Field: "channel", Reason: "nothing selected"}
	}

	if _, err := c.Session().ChannelMessageSend(values[0], draft.Text); err != nil {
		return &ExternalError{Op: "announcement post", Err: err}
	}

	f.drafts.Clear(c.UserID())
	return c.ReplyEphemeral("Announcement sent.")
}
