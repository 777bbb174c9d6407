package ui

import "github.com/bwmarrin/discordgo"

// KindSelectRow returns the command-type picker shown after the
// "Create command" button.
func KindSelectRow() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    IDKindSelect,
				Placeholder: "What kind of command?",
				Options: []discordgo.SelectMenuOption{
					{
						Label:       "Text trigger",
						Value:       KindText,
						Description: "Replies when a keyword appears in chat",
					},
					{
						Label:       "Slash command",
						Value:       KindSlash,
						Description: "Registered as a real /command",
					},
				},
			},
		}},
	}
}

// ChannelSelectRow returns a text-channel picker with the given custom
// identifier.
func ChannelSelectRow(customID, placeholder string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:     discordgo.ChannelSelectMenu,
				CustomID:     customID,
				Placeholder:  placeholder,
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
			},
		}},
	}
}
