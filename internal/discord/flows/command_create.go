package flows

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/whykushh/discord-panel-bot/internal/discord/event"
	"github.com/whykushh/discord-panel-bot/internal/discord/state"
	"github.com/whykushh/discord-panel-bot/internal/discord/ui"
	"github.com/whykushh/discord-panel-bot/internal/store"
)

var slashNameRe = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)

// builtinNames are reserved and can never be shadowed by stored commands.
var builtinNames = map[string]bool{
	"panel":    true,
	"announce": true,
	"trial":    true,
}

// handleKindSelect opens the creation form matching the chosen command type.
func (f *Flows) handleKindSelect(c *event.Context) error {
	if err := f.requireFlow(c.UserID(), state.FlowAwaitingKind); err != nil {
		return err
	}

	values := c.SelectValues()
	if len(values) == 0 {
		return &ValidationError{Field: "type", Reason: "nothing selected"}
	}

	switch values[0] {
	case ui.KindText:
		f.drafts.SetFlow(c.UserID(), state.FlowAwaitingTextCommandForm)
		m := ui.TextCommandModal()
		return c.ShowModal(m.CustomID, m.Title, m.Components)
	case ui.KindSlash:
		f.drafts.SetFlow(c.UserID(), state.FlowAwaitingSlashCommandForm)
		m := ui.SlashCommandModal()
		return c.ShowModal(m.CustomID, m.Title, m.Components)
	default:
		return &ValidationError{Field: "type", Reason: "unknown command type"}
	}
}

// handleTextCommandForm persists a keyword trigger.
func (f *Flows) handleTextCommandForm(c *event.Context) error {
	if err := f.requireFlow(c.UserID(), state.FlowAwaitingTextCommandForm); err != nil {
		return err
	}

	keyword := strings.TrimSpace(c.ModalValue(ui.FieldKeyword))
	response := strings.TrimSpace(c.ModalValue(ui.FieldResponse))
	if keyword == "" {
		return &ValidationError{Field: "keyword", Reason: "must not be empty"}
	}
	if response == "" {
		return &ValidationError{Field: "response", Reason: "must not be empty"}
	}

	if err := f.store.AddTextCommand(keyword, response); err != nil {
		return err
	}
	f.drafts.Clear(c.UserID())
	return c.ReplyEphemeral(fmt.Sprintf("Saved. Messages containing %q will now get a reply.", keyword))
}

// handleSlashCommandForm persists a slash command and republishes the
// command set. A failed publish keeps the stored record; the next
// successful publish picks it up.
func (f *Flows) handleSlashCommandForm(c *event.Context) error {
	if err := f.requireFlow(c.UserID(), state.FlowAwaitingSlashCommandForm); err != nil {
		return err
	}

	name := strings.TrimSpace(c.ModalValue(ui.FieldName))
	response := strings.TrimSpace(c.ModalValue(ui.FieldResponse))
	if !slashNameRe.MatchString(name) {
		return &ValidationError{Field: "name", Reason: "must be 1-32 characters of a-z, 0-9, - or _"}
	}
	if builtinNames[name] {
		return &ValidationError{Field: "name", Reason: fmt.Sprintf("%q is reserved", name)}
	}
	if response == "" {
		return &ValidationError{Field: "response", Reason: "must not be empty"}
	}

	if err := f.store.AddSlashCommand(name, response); err != nil {
		if errors.Is(err, store.ErrDuplicateName) {
			return &ValidationError{Field: "name", Reason: fmt.Sprintf("/%s already exists", name)}
		}
		return err
	}
	f.drafts.Clear(c.UserID())

	if err := f.pub.Publish(c.Context(), c.Session()); err != nil {
		return c.ReplyEphemeral(fmt.Sprintf(
			"/%s was saved but not yet published to Discord. It will appear after the next successful sync.", name))
	}
	return c.ReplyEphemeral(fmt.Sprintf("Created /%s.", name))
}
