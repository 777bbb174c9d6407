package event

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	responses []*discordgo.InteractionResponse
	followups []*discordgo.WebhookParams
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeSession) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.followups = append(f.followups, data)
	return &discordgo.Message{}, nil
}

func (f *fakeSession) ChannelMessageSend(string, string, ...discordgo.RequestOption) (*discordgo.Message, error) {
	return &discordgo.Message{}, nil
}

func (f *fakeSession) ChannelMessageSendComplex(string, *discordgo.MessageSend, ...discordgo.RequestOption) (*discordgo.Message, error) {
	return &discordgo.Message{}, nil
}

func (f *fakeSession) GuildMemberRoleAdd(string, string, string, ...discordgo.RequestOption) error {
	return nil
}

func (f *fakeSession) GuildMemberRoleRemove(string, string, string, ...discordgo.RequestOption) error {
	return nil
}

func (f *fakeSession) UserChannelCreate(string, ...discordgo.RequestOption) (*discordgo.Channel, error) {
	return &discordgo.Channel{ID: "dm"}, nil
}

func (f *fakeSession) ApplicationCommandBulkOverwrite(string, string, []*discordgo.ApplicationCommand, ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	return nil, nil
}

func slashInteraction(name string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:        "9001",
		Type:      discordgo.InteractionApplicationCommand,
		GuildID:   "42",
		ChannelID: "7",
		Member: &discordgo.Member{
			User:  &discordgo.User{ID: "100"},
			Roles: []string{"500"},
		},
		Data: discordgo.ApplicationCommandInteractionData{Name: name},
	}}
}

func TestContextIdentity(t *testing.T) {
	c := NewContext(context.Background(), &fakeSession{}, slashInteraction("panel"))

	assert.Equal(t, "9001", c.EventID())
	assert.Equal(t, "100", c.UserID())
	assert.Equal(t, "42", c.GuildID())
	assert.Equal(t, "7", c.ChannelID())
	assert.Equal(t, []string{"500"}, c.MemberRoles())
	assert.Equal(t, KindSlash, c.Kind())
	assert.Equal(t, "panel", c.CommandName())
	assert.Empty(t, c.CustomID())
}

func TestContextUserIDFromDM(t *testing.T) {
	ic := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		User: &discordgo.User{ID: "300"},
		Data: discordgo.ApplicationCommandInteractionData{Name: "panel"},
	}}
	c := NewContext(context.Background(), &fakeSession{}, ic)

	assert.Equal(t, "300", c.UserID())
	assert.Nil(t, c.MemberRoles())
}

func TestReplyThenFollowup(t *testing.T) {
	fs := &fakeSession{}
	c := NewContext(context.Background(), fs, slashInteraction("panel"))

	require.NoError(t, c.Reply("first"))
	require.NoError(t, c.ReplyEphemeral("second"))

	require.Len(t, fs.responses, 1)
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, fs.responses[0].Type)
	assert.Equal(t, "first", fs.responses[0].Data.Content)

	require.Len(t, fs.followups, 1)
	assert.Equal(t, "second", fs.followups[0].Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, fs.followups[0].Flags)

	assert.True(t, c.Responded())
	assert.Equal(t, 2, c.Replies())
}

func TestShowModalCountsAsAcknowledged(t *testing.T) {
	fs := &fakeSession{}
	c := NewContext(context.Background(), fs, slashInteraction("panel"))

	require.NoError(t, c.ShowModal("modal_x", "Form", nil))
	require.NoError(t, c.ReplyEphemeral("done"))

	require.Len(t, fs.responses, 1)
	assert.Equal(t, discordgo.InteractionResponseModal, fs.responses[0].Type)
	require.Len(t, fs.followups, 1)
	assert.Equal(t, 1, c.Replies())
}

func TestModalValueExtraction(t *testing.T) {
	ic := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionModalSubmit,
		Data: discordgo.ModalSubmitInteractionData{
			CustomID: "modal_text_cmd",
			Components: []discordgo.MessageComponent{
				&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: "keyword", Value: "hello"},
				}},
				&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: "response", Value: "world"},
				}},
			},
		},
	}}
	c := NewContext(context.Background(), &fakeSession{}, ic)

	assert.Equal(t, KindModal, c.Kind())
	assert.Equal(t, "modal_text_cmd", c.CustomID())
	assert.Equal(t, "hello", c.ModalValue("keyword"))
	assert.Equal(t, "world", c.ModalValue("response"))
	assert.Empty(t, c.ModalValue("missing"))
}

func TestChainOrder(t *testing.T) {
	var order []string
	mk := func(name string) MiddlewareFunc {
		return func(next HandlerFunc) HandlerFunc {
			return func(c *Context) error {
				order = append(order, name)
				return next(c)
			}
		}
	}

	h := Chain(func(c *Context) error {
		order = append(order, "handler")
		return nil
	}, mk("outer"), mk("inner"))

	require.NoError(t, h(NewContext(context.Background(), &fakeSession{}, slashInteraction("panel"))))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}
