package router

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dc "github.com/whykushh/discord-panel-bot/internal/discord"
	"github.com/whykushh/discord-panel-bot/internal/discord/commands"
	"github.com/whykushh/discord-panel-bot/internal/discord/event"
	"github.com/whykushh/discord-panel-bot/internal/discord/flows"
)

type fakeSession struct {
	responses []*discordgo.InteractionResponse
	followups []*discordgo.WebhookParams
	sent      []string
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeSession) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.followups = append(f.followups, data)
	return &discordgo.Message{}, nil
}

func (f *fakeSession) ChannelMessageSend(channelID, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.sent = append(f.sent, content)
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

func slashCtx(fs *fakeSession, userID, name string) *event.Context {
	return event.NewContext(context.Background(), fs, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:     "1",
			Type:   discordgo.InteractionApplicationCommand,
			Member: &discordgo.Member{User: &discordgo.User{ID: userID}},
			Data:   discordgo.ApplicationCommandInteractionData{Name: name},
		},
	})
}

func componentCtx(fs *fakeSession, userID, customID string) *event.Context {
	return event.NewContext(context.Background(), fs, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:     "1",
			Type:   discordgo.InteractionMessageComponent,
			Member: &discordgo.Member{User: &discordgo.User{ID: userID}},
			Data:   discordgo.MessageComponentInteractionData{CustomID: customID},
		},
	})
}

func TestSlashDispatchToBuiltin(t *testing.T) {
	reg := dc.NewRegistry()
	reg.RegisterCommand("panel", commands.Command{
		Handler:     func(c *event.Context) error { return c.ReplyEphemeral("panel here") },
		Description: "Owner panel",
	})

	fs := &fakeSession{}
	require.NoError(t, Handler(reg, InteractionOptions{OwnerID: "owner"})(slashCtx(fs, "owner", "panel")))
	require.Len(t, fs.responses, 1)
	assert.Equal(t, "panel here", fs.responses[0].Data.Content)
}

func TestOwnerOnlyCommandRejectsNonOwner(t *testing.T) {
	reg := dc.NewRegistry()
	reg.RegisterCommand("panel", commands.Command{
		Handler:     func(c *event.Context) error { return c.ReplyEphemeral("panel here") },
		Description: "Owner panel",
		OwnerOnly:   true,
	})

	fs := &fakeSession{}
	require.NoError(t, Handler(reg, InteractionOptions{OwnerID: "owner"})(slashCtx(fs, "intruder", "panel")))
	require.Len(t, fs.responses, 1)
	assert.Equal(t, "Owner only.", fs.responses[0].Data.Content)
}

func TestSlashFallbackForUnknownCommand(t *testing.T) {
	reg := dc.NewRegistry()
	var got string
	reg.SetSlashFallback(func(c *event.Context) error {
		got = c.CommandName()
		return nil
	})

	fs := &fakeSession{}
	require.NoError(t, Handler(reg, InteractionOptions{})(slashCtx(fs, "user", "ping")))
	assert.Equal(t, "ping", got)
}

func TestComponentNotFoundFallback(t *testing.T) {
	reg := dc.NewRegistry()

	fs := &fakeSession{}
	require.NoError(t, Handler(reg, InteractionOptions{})(componentCtx(fs, "user", "ghost_button")))
	require.Len(t, fs.responses, 1)
	assert.Equal(t, "Unsupported action.", fs.responses[0].Data.Content)
}

func TestUnknownInteractionKindAcknowledged(t *testing.T) {
	reg := dc.NewRegistry()
	fs := &fakeSession{}

	c := event.NewContext(context.Background(), fs, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:   "1",
			Type: discordgo.InteractionPing,
			User: &discordgo.User{ID: "user"},
		},
	})
	require.NoError(t, Handler(reg, InteractionOptions{})(c))
	require.Len(t, fs.responses, 1)
	assert.Equal(t, "Unrecognized interaction.", fs.responses[0].Data.Content)
}

func TestValidationErrorBecomesFieldReply(t *testing.T) {
	reg := dc.NewRegistry()
	reg.RegisterCommand("panel", commands.Command{
		Handler: func(c *event.Context) error {
			return &flows.ValidationError{Field: "name", Reason: "must not be empty"}
		},
		Description: "Owner panel",
	})

	fs := &fakeSession{}
	err := Handler(reg, InteractionOptions{})(slashCtx(fs, "user", "panel"))
	require.Error(t, err)
	require.Len(t, fs.responses, 1)
	assert.Equal(t, "Invalid name: must not be empty", fs.responses[0].Data.Content)
}

func TestPermissionDeniedBecomesUniformReply(t *testing.T) {
	reg := dc.NewRegistry()
	reg.RegisterCommand("trial", commands.Command{
		Handler:     func(c *event.Context) error { return flows.ErrPermissionDenied },
		Description: "Trial role",
	})

	fs := &fakeSession{}
	err := Handler(reg, InteractionOptions{})(slashCtx(fs, "user", "trial"))
	require.Error(t, err)
	require.Len(t, fs.responses, 1)
	assert.Equal(t, "Owner only.", fs.responses[0].Data.Content)
}

func TestUnhandledErrorBecomesGenericReply(t *testing.T) {
	reg := dc.NewRegistry()
	reg.RegisterCommand("panel", commands.Command{
		Handler:     func(c *event.Context) error { return errors.New("disk exploded") },
		Description: "Owner panel",
	})

	fs := &fakeSession{}
	err := Handler(reg, InteractionOptions{})(slashCtx(fs, "user", "panel"))
	require.Error(t, err)
	require.Len(t, fs.responses, 1)
	assert.Equal(t, "Something went wrong.", fs.responses[0].Data.Content)
}

func TestErrorAfterReplyDoesNotDoubleReply(t *testing.T) {
	reg := dc.NewRegistry()
	reg.RegisterCommand("panel", commands.Command{
		Handler: func(c *event.Context) error {
			_ = c.ReplyEphemeral("already answered")
			return errors.New("late failure")
		},
		Description: "Owner panel",
	})

	fs := &fakeSession{}
	_ = Handler(reg, InteractionOptions{})(slashCtx(fs, "user", "panel"))
	require.Len(t, fs.responses, 1)
	assert.Empty(t, fs.followups)
}

func TestPanicConvertsToSingleFallbackReply(t *testing.T) {
	reg := dc.NewRegistry()
	reg.RegisterCommand("panel", commands.Command{
		Handler:     func(c *event.Context) error { panic("boom") },
		Description: "Owner panel",
	})

	fs := &fakeSession{}
	require.NoError(t, Handler(reg, InteractionOptions{})(slashCtx(fs, "user", "panel")))
	require.Len(t, fs.responses, 1)
	assert.Equal(t, "Something went wrong.", fs.responses[0].Data.Content)
}

func TestMessageRouteSkipsBots(t *testing.T) {
	called := false
	reg := dc.NewRegistry()
	reg.SetMessageFallback(func(ctx context.Context, s event.Session, m *discordgo.MessageCreate) error {
		called = true
		return nil
	})
	h := MessageRoute(reg)

	h(nil, &discordgo.MessageCreate{Message: &discordgo.Message{
		ID: "1", ChannelID: "c", Content: "hi",
		Author: &discordgo.User{ID: "bot", Bot: true},
	}})
	assert.False(t, called)

	h(nil, &discordgo.MessageCreate{Message: &discordgo.Message{
		ID: "1", ChannelID: "c", Content: "hi",
		Author: &discordgo.User{ID: "human"},
	}})
	assert.True(t, called)
}

func TestMessageRouteWithoutFallbackIgnores(t *testing.T) {
	h := MessageRoute(dc.NewRegistry())

	h(nil, &discordgo.MessageCreate{Message: &discordgo.Message{
		ID: "1", ChannelID: "c", Content: "hi",
		Author: &discordgo.User{ID: "human"},
	}})
}

func TestMessageRouteUsesRegistryFallback(t *testing.T) {
	var got string
	reg := dc.NewRegistry()
	reg.SetMessageFallback(func(ctx context.Context, s event.Session, m *discordgo.MessageCreate) error {
		got = m.Content
		return nil
	})

	MessageRoute(reg)(nil, &discordgo.MessageCreate{Message: &discordgo.Message{
		ID: "1", ChannelID: "c", Content: "ping",
		Author: &discordgo.User{ID: "human"},
	}})
	assert.Equal(t, "ping", got)
}

func TestNormalizeHandlerName(t *testing.T) {
	assert.Equal(t, "panel", normalizeHandlerName("/panel"))
	assert.Equal(t, "embed_channel", normalizeHandlerName("Embed Channel"))
	assert.Equal(t, "unknown", normalizeHandlerName("  "))
}

func TestDeriveErrorCode(t *testing.T) {
	assert.Equal(t, "VALIDATION", deriveErrorCode(&flows.ValidationError{Field: "x", Reason: "y"}))
	assert.Equal(t, "NOT_FOUND", deriveErrorCode(&flows.NotFoundError{What: "draft"}))
	assert.Equal(t, "ERRORSTRING", deriveErrorCode(errors.New("plain")))
}
