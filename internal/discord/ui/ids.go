// Package ui builds the embeds, buttons, selects and modal forms shown by
// the owner panel. All custom identifiers live here so wiring stays in
// one place.
package ui

// Panel button identifiers.
const (
	IDPanelCreateCommand = "panel_create_cmd"
	IDPanelCreateEmbed   = "panel_create_embed"
	IDPanelAnnounce      = "panel_announce"
	IDPanelListCommands  = "panel_list_cmds"
)

// Wizard step identifiers.
const (
	IDKindSelect      = "cmd_kind"
	IDModalTextCmd    = "modal_text_cmd"
	IDModalSlashCmd   = "modal_slash_cmd"
	IDModalEmbed      = "modal_embed"
	IDModalAnnounce   = "modal_announce"
	IDEmbedChannel    = "embed_channel"
	IDAnnounceChannel = "announce_channel"
)

// Kind select option values.
const (
	KindText  = "text"
	KindSlash = "slash"
)

// Modal field identifiers.
const (
	FieldKeyword     = "keyword"
	FieldName        = "name"
	FieldResponse    = "response"
	FieldTitle       = "title"
	FieldAuthor      = "author"
	FieldDescription = "description"
	FieldColor       = "color"
	FieldFooter      = "footer"
	FieldText        = "text"
)
