package middleware

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whykushh/discord-panel-bot/internal/discord/event"
)

type fakeSession struct {
	responses []*discordgo.InteractionResponse
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeSession) FollowupMessageCreate(*discordgo.Interaction, bool, *discordgo.WebhookParams, ...discordgo.RequestOption) (*discordgo.Message, error) {
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
	return &discordgo.Channel{}, nil
}

func (f *fakeSession) ApplicationCommandBulkOverwrite(string, string, []*discordgo.ApplicationCommand, ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	return nil, nil
}

func ctxForUser(fs *fakeSession, userID string) *event.Context {
	return event.NewContext(context.Background(), fs, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:   "1",
			Type: discordgo.InteractionApplicationCommand,
			Member: &discordgo.Member{
				User: &discordgo.User{ID: userID},
			},
			Data: discordgo.ApplicationCommandInteractionData{Name: "panel"},
		},
	})
}

func TestIsOwner(t *testing.T) {
	assert.True(t, IsOwner("100", "100"))
	assert.False(t, IsOwner("200", "100"))
	assert.False(t, IsOwner("", "100"))
	assert.False(t, IsOwner("100", ""))
	assert.False(t, IsOwner("", ""))
}

func TestHasAnyRole(t *testing.T) {
	assert.True(t, HasAnyRole([]string{"1", "2"}, []string{"2", "3"}))
	assert.False(t, HasAnyRole([]string{"1"}, []string{"2"}))
	assert.False(t, HasAnyRole(nil, []string{"2"}))
	assert.False(t, HasAnyRole([]string{"1"}, nil))
	assert.False(t, HasAnyRole([]string{""}, []string{""}))
}

func TestOwnerOnlyAllowsOwner(t *testing.T) {
	called := false
	h := OwnerOnly(AccessOptions{OwnerID: "100"})(func(c *event.Context) error {
		called = true
		return nil
	})

	require.NoError(t, h(ctxForUser(&fakeSession{}, "100")))
	assert.True(t, called)
}

func TestOwnerOnlyRejectsOthers(t *testing.T) {
	fs := &fakeSession{}
	h := OwnerOnly(AccessOptions{OwnerID: "100"})(func(c *event.Context) error {
		t.Fatal("handler must not run")
		return nil
	})

	require.NoError(t, h(ctxForUser(fs, "200")))
	require.Len(t, fs.responses, 1)
	assert.Equal(t, "Owner only.", fs.responses[0].Data.Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, fs.responses[0].Data.Flags)
}

func TestOwnerOnlyRejectsWhenOwnerUnset(t *testing.T) {
	fs := &fakeSession{}
	h := OwnerOnly(AccessOptions{})(func(c *event.Context) error {
		t.Fatal("handler must not run")
		return nil
	})

	require.NoError(t, h(ctxForUser(fs, "100")))
	require.Len(t, fs.responses, 1)
}

func TestOwnerGatePassthrough(t *testing.T) {
	called := false
	h := OwnerGate(AccessOptions{OwnerID: "100"}, false, func(c *event.Context) error {
		called = true
		return nil
	})

	require.NoError(t, h(ctxForUser(&fakeSession{}, "200")))
	assert.True(t, called)
}

func TestRecoverSwallowsPanicAndReplies(t *testing.T) {
	fs := &fakeSession{}
	h := Recover(func(c *event.Context) error {
		panic("boom")
	})

	require.NoError(t, h(ctxForUser(fs, "100")))
	require.Len(t, fs.responses, 1)
	assert.Equal(t, "Something went wrong.", fs.responses[0].Data.Content)
}

func TestRecoverDoesNotDoubleReply(t *testing.T) {
	fs := &fakeSession{}
	h := Recover(func(c *event.Context) error {
		_ = c.ReplyEphemeral("partial")
		panic("boom")
	})

	require.NoError(t, h(ctxForUser(fs, "100")))
	require.Len(t, fs.responses, 1)
	assert.Equal(t, "partial", fs.responses[0].Data.Content)
}
