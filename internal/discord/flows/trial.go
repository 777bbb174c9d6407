package flows

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/whykushh/discord-panel-bot/internal/discord/event"
	"github.com/whykushh/discord-panel-bot/internal/discord/middleware"
)

const (
	trialActionAccept  = "accept"
	trialActionDecline = "decline"
)

func trialOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: "The trial member",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "action",
			Description: "Accept or decline the trial",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "accept", Value: trialActionAccept},
				{Name: "decline", Value: trialActionDecline},
			},
		},
	}
}

// handleTrial toggles the trial role on the target member. The role edit
// must succeed; the DM to the target and the audit post are best-effort.
func (f *Flows) handleTrial(c *event.Context) error {
	if !middleware.IsOwner(c.UserID(), f.cfg.OwnerID) && !middleware.HasAnyRole(c.MemberRoles(), f.cfg.ModRoleIDs) {
		return ErrPermissionDenied
	}
	if f.cfg.TrialRoleID == "" {
		return &ValidationError{Field: "trial role", Reason: "not configured"}
	}
	if c.GuildID() == "" {
		return &ValidationError{Field: "trial", Reason: "only available inside a server"}
	}

	var targetID, action string
	for _, opt := range c.CommandOptions() {
		switch opt.Name {
		case "member":
			if u := opt.UserValue(nil); u != nil {
				targetID = u.ID
			}
		case "action":
			action = opt.StringValue()
		}
	}
	if targetID == "" {
		return &ValidationError{Field: "member", Reason: "missing"}
	}

	var editErr error
	var confirmation, notification string
	switch action {
	case trialActionAccept:
		editErr = c.Session().GuildMemberRoleAdd(c.GuildID(), targetID, f.cfg.TrialRoleID)
		confirmation = fmt.Sprintf("Accepted <@%s> for a trial.", targetID)
		notification = "Congratulations! Your trial has been accepted."
	case trialActionDecline:
		editErr = c.Session().GuildMemberRoleRemove(c.GuildID(), targetID, f.cfg.TrialRoleID)
		confirmation = fmt.Sprintf("Declined the trial of <@%s>.", targetID)
		notification = "Your trial has been declined."
	default:
		return &ValidationError{Field: "action", Reason: "must be accept or decline"}
	}
	if editErr != nil {
		return &ExternalError{Op: "role update", Err: editErr}
	}

	f.notify.NotifyDM(c.Context(), c.Session(), targetID, notification)
	f.notify.NotifyChannel(c.Context(), c.Session(), f.cfg.AuditChannelID,
		fmt.Sprintf("Trial %s: <@%s> (by <@%s>)", action, targetID, c.UserID()))

	return c.ReplyEphemeral(confirmation)
}
