// Package discord wires the gateway session, the interaction registry and
// the bot lifecycle together.
package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/whykushh/discord-panel-bot/internal/discord/commands"
	"github.com/whykushh/discord-panel-bot/internal/discord/event"
	"github.com/whykushh/discord-panel-bot/internal/logger"
)

// Registry holds slash commands, component handlers and modal handlers.
type Registry struct {
	commands   map[string]commands.Command
	components map[string]commands.Component
	modals     map[string]commands.Component

	mu sync.RWMutex

	componentNotFound event.HandlerFunc
	slashFallback     event.HandlerFunc
	messageFallback   event.MessageFunc
}

// NewRegistry creates an empty Registry with default fallbacks.
func NewRegistry() *Registry {
	return &Registry{
		commands:   make(map[string]commands.Command),
		components: make(map[string]commands.Component),
		modals:     make(map[string]commands.Component),
		componentNotFound: func(c *event.Context) error {
			return c.ReplyEphemeral("Unsupported action.")
		},
	}
}

// RegisterCommand adds a built-in slash command.
func (r *Registry) RegisterCommand(name string, cmd commands.Command) {
	if r == nil || name == "" || cmd.Handler == nil || cmd.Description == "" {
		logger.Warn(context.Background(), "discord.wire", "register.command.skip",
			slog.String("name", name),
			slog.String("cause", "invalid"),
		)
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.commands[name]; exists {
		logger.Warn(context.Background(), "discord.wire", "register.command.duplicate",
			slog.String("name", name),
		)
		return
	}
	r.commands[name] = cmd
}

// RegisterComponent adds a handler for a button or select custom identifier.
func (r *Registry) RegisterComponent(customID string, comp commands.Component) error {
	return r.register(r.components, "register.component", customID, comp)
}

// RegisterModal adds a handler for a modal submit custom identifier.
func (r *Registry) RegisterModal(customID string, comp commands.Component) error {
	return r.register(r.modals, "register.modal", customID, comp)
}

func (r *Registry) register(dst map[string]commands.Component, logEvent string, customID string, comp commands.Component) error {
	if r == nil || customID == "" || comp.Handler == nil {
		logger.Warn(context.Background(), "discord.wire", logEvent+".skip",
			slog.String("custom_id", customID),
		)
		return errors.New("invalid handler registration")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := dst[customID]; exists {
		logger.Warn(context.Background(), "discord.wire", logEvent+".duplicate",
			slog.String("custom_id", customID),
		)
		return fmt.Errorf("handler already registered: %s", customID)
	}
	dst[customID] = comp
	return nil
}

// LookupCommand returns a built-in slash command by name.
func (r *Registry) LookupCommand(name string) (commands.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	return cmd, ok
}

// LookupComponent returns a component handler by custom identifier.
func (r *Registry) LookupComponent(customID string) (commands.Component, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	comp, ok := r.components[customID]
	return comp, ok
}

// LookupModal returns a modal handler by custom identifier.
func (r *Registry) LookupModal(customID string) (commands.Component, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	comp, ok := r.modals[customID]
	return comp, ok
}

// CommandNames returns sorted built-in command names (for diagnostics).
func (r *Registry) CommandNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptors returns the application command payloads for every built-in,
// sorted by name for a stable publish order.
func (r *Registry) Descriptors() []*discordgo.ApplicationCommand {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*discordgo.ApplicationCommand, 0, len(r.commands))
	for name, cmd := range r.commands {
		out = append(out, &discordgo.ApplicationCommand{
			Name:        name,
			Description: cmd.Description,
			Options:     cmd.Options,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SetComponentNotFound replaces the fallback for unknown custom identifiers.
func (r *Registry) SetComponentNotFound(h event.HandlerFunc) {
	if h != nil {
		r.componentNotFound = h
	}
}

// ComponentNotFound returns the current unknown-component fallback.
func (r *Registry) ComponentNotFound() event.HandlerFunc {
	return r.componentNotFound
}

// SetSlashFallback sets the handler for slash commands with no built-in,
// which is how stored custom commands get dispatched.
func (r *Registry) SetSlashFallback(h event.HandlerFunc) {
	r.slashFallback = h
}

// SlashFallback returns the current slash fallback handler.
func (r *Registry) SlashFallback() event.HandlerFunc {
	return r.slashFallback
}

// SetMessageFallback sets the handler invoked for ordinary guild messages,
// which is how stored keyword triggers get dispatched.
func (r *Registry) SetMessageFallback(h event.MessageFunc) {
	r.messageFallback = h
}

// MessageFallback returns the current message handler.
func (r *Registry) MessageFallback() event.MessageFunc {
	return r.messageFallback
}
