// Package commands defines the metadata attached to registered slash
// commands and panel components.
package commands

import (
	"github.com/bwmarrin/discordgo"

	"github.com/whykushh/discord-panel-bot/internal/discord/event"
)

// Command represents a built-in slash command with its handler and the
// descriptor published to the platform.
type Command struct {
	Handler     event.HandlerFunc
	Description string
	OwnerOnly   bool
	Options     []*discordgo.ApplicationCommandOption
}

// Component represents a button, select or modal handler keyed by its
// custom identifier.
type Component struct {
	Handler   event.HandlerFunc
	OwnerOnly bool
}
