package ui

import (
	"github.com/bwmarrin/discordgo"

	"github.com/whykushh/discord-panel-bot/internal/discord/format"
)

func textRow(customID, label, placeholder string, style discordgo.TextInputStyle, required bool, maxLength int) discordgo.MessageComponent {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.TextInput{
			CustomID:    customID,
			Label:       label,
			Placeholder: placeholder,
			Style:       style,
			Required:    required,
			MaxLength:   maxLength,
		},
	}}
}

// Modal bundles a modal form's identity and inputs.
type Modal struct {
	CustomID   string
	Title      string
	Components []discordgo.MessageComponent
}

// TextCommandModal returns the keyword-trigger creation form.
func TextCommandModal() Modal {
	return Modal{
		CustomID: IDModalTextCmd,
		Title:    "New text trigger",
		Components: []discordgo.MessageComponent{
			textRow(FieldKeyword, "Keyword", "e.g. help", discordgo.TextInputShort, true, 100),
			textRow(FieldResponse, "Response", "Sent when the keyword appears", discordgo.TextInputParagraph, true, format.MaxMessageContent),
		},
	}
}

// SlashCommandModal returns the slash-command creation form.
func SlashCommandModal() Modal {
	return Modal{
		CustomID: IDModalSlashCmd,
		Title:    "New slash command",
		Components: []discordgo.MessageComponent{
			textRow(FieldName, "Name", "lowercase, digits, - and _", discordgo.TextInputShort, true, 32),
			textRow(FieldResponse, "Response", "Sent when the command is used", discordgo.TextInputParagraph, true, format.MaxMessageContent),
		},
	}
}

// EmbedModal returns the embed builder form.
func EmbedModal() Modal {
	return Modal{
		CustomID: IDModalEmbed,
		Title:    "New embed",
		Components: []discordgo.MessageComponent{
			textRow(FieldTitle, "Title", "", discordgo.TextInputShort, true, format.MaxEmbedTitle),
			textRow(FieldDescription, "Description", "", discordgo.TextInputParagraph, true, format.MaxEmbedDescription),
			textRow(FieldAuthor, "Author (optional)", "", discordgo.TextInputShort, false, format.MaxEmbedTitle),
			textRow(FieldColor, "Color (hex, optional)", "#5865F2", discordgo.TextInputShort, false, 7),
			textRow(FieldFooter, "Footer (optional)", "", discordgo.TextInputShort, false, format.MaxEmbedFooter),
		},
	}
}

// AnnounceModal returns the announcement form.
func AnnounceModal() Modal {
	return Modal{
		CustomID: IDModalAnnounce,
		Title:    "New announcement",
		Components: []discordgo.MessageComponent{
			textRow(FieldText, "Announcement", "", discordgo.TextInputParagraph, true, format.MaxMessageContent),
		},
	}
}
