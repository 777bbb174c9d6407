package state

import "time"

// Flow identifies a wizard step the user is currently in.
type Flow string

const (
	// FlowIdle indicates there is no active wizard for the user.
	FlowIdle Flow = "idle"

	// FlowAwaitingKind means the type picker for a new command is open.
	FlowAwaitingKind Flow = "awaiting_kind"

	// FlowAwaitingTextCommandForm means the text-command modal is open.
	FlowAwaitingTextCommandForm Flow = "awaiting_text_command_form"

	// FlowAwaitingSlashCommandForm means the slash-command modal is open.
	FlowAwaitingSlashCommandForm Flow = "awaiting_slash_command_form"

	// FlowAwaitingEmbedForm means the embed builder modal is open.
	FlowAwaitingEmbedForm Flow = "awaiting_embed_form"

	// FlowAwaitingEmbedChannel means an embed draft exists and a target
	// channel has not been chosen yet.
	FlowAwaitingEmbedChannel Flow = "awaiting_embed_channel"

	// FlowAwaitingAnnounceForm means the announcement modal is open.
	FlowAwaitingAnnounceForm Flow = "awaiting_announce_form"

	// FlowAwaitingAnnounceChannel means an announcement draft exists and
	// a target channel has not been chosen yet.
	FlowAwaitingAnnounceChannel Flow = "awaiting_announce_channel"
)

// EmbedDraft holds embed builder input between the modal submit and the
// channel pick.
type EmbedDraft struct {
	Title       string
	Description string
	Author      string
	Color       int
	HasColor    bool
	Footer      string
}

// AnnouncementDraft holds announcement text between the modal submit and
// the channel pick.
type AnnouncementDraft struct {
	Text string
}

// Session stores the wizard position and pending drafts for one user.
type Session struct {
	Flow     Flow
	Embed    *EmbedDraft
	Announce *AnnouncementDraft

	// Deadline is when the session expires and becomes eligible for
	// sweeping. Zero means no expiry.
	Deadline time.Time
}

// Manager orchestrates user sessions and wizard transitions.
type Manager interface {
	Get(userID string) Session
	SetFlow(userID string, f Flow)
	Flow(userID string) Flow
	SetEmbed(userID string, d *EmbedDraft)
	Embed(userID string) (*EmbedDraft, bool)
	SetAnnounce(userID string, d *AnnouncementDraft)
	Announce(userID string) (*AnnouncementDraft, bool)
	Clear(userID string)
	InProgress(userID string) bool

	// Sweep drops sessions whose deadline passed and returns how many
	// were removed.
	Sweep(now time.Time) int
}
