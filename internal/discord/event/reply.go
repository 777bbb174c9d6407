package event

import "github.com/bwmarrin/discordgo"

// respond sends the initial interaction response, or a followup when the
// interaction is already acknowledged. Discord accepts exactly one initial
// response per interaction.
func (c *Context) respond(data *discordgo.InteractionResponseData) error {
	if c.responded {
		params := &discordgo.WebhookParams{
			Content:    data.Content,
			Embeds:     data.Embeds,
			Components: data.Components,
			Flags:      data.Flags,
		}
		if _, err := c.session.FollowupMessageCreate(c.ic.Interaction, true, params); err != nil {
			return err
		}
		c.replies++
		return nil
	}

	err := c.session.InteractionRespond(c.ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		return err
	}
	c.responded = true
	c.replies++
	return nil
}

// Reply sends a plain channel-visible message in response.
func (c *Context) Reply(content string) error {
	return c.respond(&discordgo.InteractionResponseData{Content: content})
}

// ReplyEphemeral sends a message only the invoker can see.
func (c *Context) ReplyEphemeral(content string) error {
	return c.respond(&discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

// ReplyComponents sends an ephemeral message carrying interactive
// components such as buttons or selects.
func (c *Context) ReplyComponents(content string, components []discordgo.MessageComponent) error {
	return c.respond(&discordgo.InteractionResponseData{
		Content:    content,
		Components: components,
		Flags:      discordgo.MessageFlagsEphemeral,
	})
}

// ReplyEmbed sends an embed in response.
func (c *Context) ReplyEmbed(embed *discordgo.MessageEmbed, components []discordgo.MessageComponent, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return c.respond(data)
}

// ShowModal opens a modal form. A modal must be the initial response, so
// this fails once the interaction is acknowledged.
func (c *Context) ShowModal(customID, title string, components []discordgo.MessageComponent) error {
	err := c.session.InteractionRespond(c.ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   customID,
			Title:      title,
			Components: components,
		},
	})
	if err != nil {
		return err
	}
	c.responded = true
	return nil
}
