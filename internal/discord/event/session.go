package event

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Session is the slice of the gateway client that handlers are allowed to
// touch. *discordgo.Session satisfies it; tests substitute a fake.
type Session interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildMemberRoleRemove(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// HandlerFunc is the signature used for all interaction handlers.
type HandlerFunc func(c *Context) error

// MessageFunc handles an ordinary channel message.
type MessageFunc func(ctx context.Context, s Session, m *discordgo.MessageCreate) error

// MiddlewareFunc wraps a HandlerFunc with additional behavior.
type MiddlewareFunc func(HandlerFunc) HandlerFunc

// Chain applies middlewares to a handler in declaration order, so the
// first middleware in the list is the outermost wrapper.
func Chain(h HandlerFunc, mws ...MiddlewareFunc) HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
