package ui

import "github.com/bwmarrin/discordgo"

const panelColor = 0x5865F2

// PanelEmbed returns the owner control panel embed.
func PanelEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Owner Control Panel",
		Description: "Choose an action below.",
		Color:       panelColor,
	}
}

// PanelRows returns the panel action buttons.
func PanelRows() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				CustomID: IDPanelCreateCommand,
				Label:    "Create command",
				Style:    discordgo.SuccessButton,
			},
			discordgo.Button{
				CustomID: IDPanelCreateEmbed,
				Label:    "Create embed",
				Style:    discordgo.PrimaryButton,
			},
			discordgo.Button{
				CustomID: IDPanelAnnounce,
				Label:    "Announce",
				Style:    discordgo.PrimaryButton,
			},
			discordgo.Button{
				CustomID: IDPanelListCommands,
				Label:    "List commands",
				Style:    discordgo.SecondaryButton,
			},
		}},
	}
}
