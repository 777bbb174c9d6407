package event

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Kind classifies an interaction for routing and logging.
type Kind string

const (
	KindSlash     Kind = "slash"
	KindComponent Kind = "component"
	KindModal     Kind = "modal"
	KindUnknown   Kind = "unknown"
)

// Context carries one interaction through the middleware chain and into a
// handler. It tracks replies so the interaction is acknowledged exactly
// once and later messages become followups.
type Context struct {
	session Session
	ic      *discordgo.InteractionCreate

	stdctx    context.Context
	responded bool
	replies   int
}

// NewContext builds a Context for an incoming interaction.
func NewContext(ctx context.Context, s Session, ic *discordgo.InteractionCreate) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{session: s, ic: ic, stdctx: ctx}
}

// Session returns the gateway session for the interaction.
func (c *Context) Session() Session { return c.session }

// Interaction returns the raw interaction payload.
func (c *Context) Interaction() *discordgo.InteractionCreate { return c.ic }

// Context returns the request-scoped context carrying logger metadata.
func (c *Context) Context() context.Context { return c.stdctx }

// SetContext replaces the request-scoped context.
func (c *Context) SetContext(ctx context.Context) {
	if ctx != nil {
		c.stdctx = ctx
	}
}

// EventID returns the interaction snowflake.
func (c *Context) EventID() string { return c.ic.ID }

// GuildID returns the guild the interaction came from, or "" in DMs.
func (c *Context) GuildID() string { return c.ic.GuildID }

// ChannelID returns the channel the interaction came from.
func (c *Context) ChannelID() string { return c.ic.ChannelID }

// UserID returns the invoking user's snowflake regardless of whether the
// interaction arrived from a guild or a DM.
func (c *Context) UserID() string {
	if c.ic.Member != nil && c.ic.Member.User != nil {
		return c.ic.Member.User.ID
	}
	if c.ic.User != nil {
		return c.ic.User.ID
	}
	return ""
}

// MemberRoles returns the invoker's role snowflakes, empty outside guilds.
func (c *Context) MemberRoles() []string {
	if c.ic.Member == nil {
		return nil
	}
	return c.ic.Member.Roles
}

// Kind classifies the interaction payload.
func (c *Context) Kind() Kind {
	switch c.ic.Type {
	case discordgo.InteractionApplicationCommand:
		return KindSlash
	case discordgo.InteractionMessageComponent:
		return KindComponent
	case discordgo.InteractionModalSubmit:
		return KindModal
	default:
		return KindUnknown
	}
}

// CommandName returns the invoked slash command name, or "" for other kinds.
func (c *Context) CommandName() string {
	if c.ic.Type != discordgo.InteractionApplicationCommand {
		return ""
	}
	return c.ic.ApplicationCommandData().Name
}

// CommandOptions returns the slash command options, or nil for other kinds.
func (c *Context) CommandOptions() []*discordgo.ApplicationCommandInteractionDataOption {
	if c.ic.Type != discordgo.InteractionApplicationCommand {
		return nil
	}
	return c.ic.ApplicationCommandData().Options
}

// CustomID returns the component or modal identifier, or "" for slash
// commands.
func (c *Context) CustomID() string {
	switch c.ic.Type {
	case discordgo.InteractionMessageComponent:
		return c.ic.MessageComponentData().CustomID
	case discordgo.InteractionModalSubmit:
		return c.ic.ModalSubmitData().CustomID
	default:
		return ""
	}
}

// SelectValues returns the chosen values of a select component.
func (c *Context) SelectValues() []string {
	if c.ic.Type != discordgo.InteractionMessageComponent {
		return nil
	}
	return c.ic.MessageComponentData().Values
}

// ModalValue returns the trimmed-as-submitted value of the text input with
// the given custom identifier, or "" when absent.
func (c *Context) ModalValue(customID string) string {
	if c.ic.Type != discordgo.InteractionModalSubmit {
		return ""
	}
	for _, row := range c.ic.ModalSubmitData().Components {
		ar, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range ar.Components {
			if input, ok := comp.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}

// Responded reports whether the interaction has been acknowledged.
func (c *Context) Responded() bool { return c.responded }

// Replies returns how many user-visible responses were produced.
func (c *Context) Replies() int { return c.replies }
