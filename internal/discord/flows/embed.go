package flows

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/whykushh/discord-panel-bot/internal/discord/event"
	"github.com/whykushh/discord-panel-bot/internal/discord/format"
	"github.com/whykushh/discord-panel-bot/internal/discord/state"
	"github.com/whykushh/discord-panel-bot/internal/discord/ui"
)

// handleCreateEmbed opens the embed builder form.
func (f *Flows) handleCreateEmbed(c *event.Context) error {
	f.drafts.SetFlow(c.UserID(), state.FlowAwaitingEmbedForm)
	m := ui.EmbedModal()
	return c.ShowModal(m.CustomID, m.Title, m.Components)
}

// handleEmbedForm turns the submitted form into a draft and asks for a
// destination channel. A malformed color is dropped, not rejected; text
// fields are clipped to the platform caps.
func (f *Flows) handleEmbedForm(c *event.Context) error {
	if err := f.requireFlow(c.UserID(), state.FlowAwaitingEmbedForm); err != nil {
		return err
	}

	title := strings.TrimSpace(c.ModalValue(ui.FieldTitle))
	description := strings.TrimSpace(c.ModalValue(ui.FieldDescription))
	if description == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}

	draft := &state.EmbedDraft{
		Title:       format.Truncate(title, format.MaxEmbedTitle),
		Description: format.Truncate(description, format.MaxEmbedDescription),
		Author:      format.Truncate(strings.TrimSpace(c.ModalValue(ui.FieldAuthor)), format.MaxEmbedTitle),
		Footer:      format.Truncate(strings.TrimSpace(c.ModalValue(ui.FieldFooter)), format.MaxEmbedFooter),
	}
	if color, ok := format.ParseHexColor(c.ModalValue(ui.FieldColor)); ok {
		draft.Color = color
		draft.HasColor = true
	}

	f.drafts.SetEmbed(c.UserID(), draft)
	f.drafts.SetFlow(c.UserID(), state.FlowAwaitingEmbedChannel)
	return c.ReplyComponents("Where should the embed go?", ui.ChannelSelectRow(ui.IDEmbedChannel, "Pick a channel"))
}

// handleEmbedChannel sends the pending draft to the picked channel and
// consumes it. Without a draft the pick is stale and nothing is sent.
func (f *Flows) handleEmbedChannel(c *event.Context) error {
	draft, ok := f.drafts.Embed(c.UserID())
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
	channelID := values[0]

	embed := &discordgo.MessageEmbed{
		Title:       draft.Title,
		Description: draft.Description,
	}
	if draft.Author != "" {
		embed.Author = &discordgo.MessageEmbedAuthor{Name: draft.Author}
	}
	if draft.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: draft.Footer}
	}
	if draft.HasColor {
		embed.Color = draft.Color
	}

	if _, err := c.Session().ChannelMessageSendComplex(channelID, &discordgo.MessageSend{Embed: embed}); err != nil {
		return &ExternalError{Op: "embed post", Err: err}
	}

	f.drafts.Clear(c.UserID())
	return c.ReplyEphemeral("Embed sent.")
}
