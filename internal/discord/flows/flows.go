// Package flows implements the wizard catalog: command creation, embed
// building, announcements, the trial-role toggle and the message-side
// dispatch of stored automations. Each flow is a short chain of
// interaction handlers advancing an explicit per-user wizard state.
package flows

import (
	"context"

	"github.com/whykushh/discord-panel-bot/internal/config"
	dc "github.com/whykushh/discord-panel-bot/internal/discord"
	"github.com/whykushh/discord-panel-bot/internal/discord/commands"
	"github.com/whykushh/discord-panel-bot/internal/discord/event"
	"github.com/whykushh/discord-panel-bot/internal/discord/state"
	"github.com/whykushh/discord-panel-bot/internal/discord/ui"
	"github.com/whykushh/discord-panel-bot/internal/store"
)

// Publisher republishes the slash command set after store changes.
type Publisher interface {
	Publish(ctx context.Context, s event.Session) error
}

// Notifier delivers best-effort messages whose failure never propagates.
type Notifier interface {
	NotifyDM(ctx context.Context, s event.Session, userID, content string)
	NotifyChannel(ctx context.Context, s event.Session, channelID, content string)
}

// Flows bundles the wizard handlers and their collaborators.
type Flows struct {
	cfg    config.DiscordConfig
	store  *store.Store
	drafts state.Manager
	pub    Publisher
	notify Notifier
}

// New constructs the flow set.
func New(cfg config.DiscordConfig, st *store.Store, drafts state.Manager, pub Publisher, notify Notifier) *Flows {
	return &Flows{
		cfg:    cfg,
		store:  st,
		drafts: drafts,
		pub:    pub,
		notify: notify,
	}
}

// Register wires every flow handler into the registry.
func (f *Flows) Register(reg *dc.Registry) {
	reg.RegisterCommand("panel", commands.Command{
		Handler:     f.handlePanel,
		Description: "Open the owner control panel",
		OwnerOnly:   true,
	})
	reg.RegisterCommand("announce", commands.Command{
		Handler:     f.handleAnnounceStart,
		Description: "Post an announcement",
		OwnerOnly:   true,
	})
	reg.RegisterCommand("trial", commands.Command{
		Handler:     f.handleTrial,
		Description: "Accept or decline a trial member",
		Options:     trialOptions(),
	})

	_ = reg.RegisterComponent(ui.IDPanelCreateCommand, commands.Component{Handler: f.handleCreateCommand, OwnerOnly: true})
	_ = reg.RegisterComponent(ui.IDPanelCreateEmbed, commands.Component{Handler: f.handleCreateEmbed, OwnerOnly: true})
	_ = reg.RegisterComponent(ui.IDPanelAnnounce, commands.Component{Handler: f.handleAnnounceStart, OwnerOnly: true})
	_ = reg.RegisterComponent(ui.IDPanelListCommands, commands.Component{Handler: f.handleListCommands, OwnerOnly: true})
	_ = reg.RegisterComponent(ui.IDKindSelect, commands.Component{Handler: f.handleKindSelect, OwnerOnly: true})
	_ = reg.RegisterComponent(ui.IDEmbedChannel, commands.Component{Handler: f.handleEmbedChannel, OwnerOnly: true})
	_ = reg.RegisterComponent(ui.IDAnnounceChannel, commands.Component{Handler: f.handleAnnounceChannel, OwnerOnly: true})

	_ = reg.RegisterModal(ui.IDModalTextCmd, commands.Component{Handler: f.handleTextCommandForm, OwnerOnly: true})
	_ = reg.RegisterModal(ui.IDModalSlashCmd, commands.Component{Handler: f.handleSlashCommandForm, OwnerOnly: true})
	_ = reg.RegisterModal(ui.IDModalEmbed, commands.Component{Handler: f.handleEmbedForm, OwnerOnly: true})
	_ = reg.RegisterModal(ui.IDModalAnnounce, commands.Component{Handler: f.handleAnnounceForm, OwnerOnly: true})

	reg.SetSlashFallback(f.handleCustomSlash)
	reg.SetMessageFallback(f.HandleMessage)
}

// requireFlow validates that the user's wizard is at the expected step.
// A mismatch means the wizard was abandoned, swept or interrupted by a
// restart; the stale event gets a terminal reply instead of advancing.
func (f *Flows) requireFlow(userID string, want state.Flow) error {
	if f.drafts.Flow(userID) != want {
		return &NotFoundError{
			What: "wizard step",
			Hint: "This step has expired. Open the panel and start again.",
		}
	}
	return nil
}
