package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whykushh/discord-panel-bot/internal/discord/commands"
	"github.com/whykushh/discord-panel-bot/internal/discord/event"
)

func noopHandler(*event.Context) error { return nil }

func TestRegisterCommandValidation(t *testing.T) {
	r := NewRegistry()

	r.RegisterCommand("", commands.Command{Handler: noopHandler, Description: "x"})
	r.RegisterCommand("panel", commands.Command{Description: "x"})
	r.RegisterCommand("panel", commands.Command{Handler: noopHandler})
	assert.Empty(t, r.CommandNames())

	r.RegisterCommand("panel", commands.Command{Handler: noopHandler, Description: "Owner panel"})
	_, ok := r.LookupCommand("panel")
	assert.True(t, ok)
}

func TestRegisterCommandDuplicateKeepsFirst(t *testing.T) {
	r := NewRegistry()

	r.RegisterCommand("panel", commands.Command{Handler: noopHandler, Description: "first"})
	r.RegisterCommand("panel", commands.Command{Handler: noopHandler, Description: "second"})

	cmd, ok := r.LookupCommand("panel")
	require.True(t, ok)
	assert.Equal(t, "first", cmd.Description)
}

func TestRegisterComponentAndModal(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.RegisterComponent("panel_create_cmd", commands.Component{Handler: noopHandler}))
	require.Error(t, r.RegisterComponent("panel_create_cmd", commands.Component{Handler: noopHandler}))
	require.Error(t, r.RegisterComponent("", commands.Component{Handler: noopHandler}))
	require.Error(t, r.RegisterComponent("x", commands.Component{}))

	_, ok := r.LookupComponent("panel_create_cmd")
	assert.True(t, ok)

	// modals live in their own namespace
	_, ok = r.LookupModal("panel_create_cmd")
	assert.False(t, ok)

	require.NoError(t, r.RegisterModal("modal_embed", commands.Component{Handler: noopHandler}))
	_, ok = r.LookupModal("modal_embed")
	assert.True(t, ok)
}

func TestDescriptorsSortedByName(t *testing.T) {
	r := NewRegistry()
	r.RegisterCommand("trial", commands.Command{Handler: noopHandler, Description: "Trial role"})
	r.RegisterCommand("announce", commands.Command{Handler: noopHandler, Description: "Announce"})
	r.RegisterCommand("panel", commands.Command{Handler: noopHandler, Description: "Owner panel"})

	descs := r.Descriptors()
	require.Len(t, descs, 3)
	assert.Equal(t, "announce", descs[0].Name)
	assert.Equal(t, "panel", descs[1].Name)
	assert.Equal(t, "trial", descs[2].Name)
}
