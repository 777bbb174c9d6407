// Package regsync republishes the application command set. The platform
// registration endpoint is a full replace, so every publish recomputes
// the desired set from the built-ins plus the command store and sends it
// whole.
package regsync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/cenkalti/backoff/v4"

	dc "github.com/whykushh/discord-panel-bot/internal/discord"
	"github.com/whykushh/discord-panel-bot/internal/discord/event"
	"github.com/whykushh/discord-panel-bot/internal/logger"
	"github.com/whykushh/discord-panel-bot/internal/store"
)

// Publishes happen on an interaction's reply path, so the retry window
// must stay inside the platform's response deadline.
const (
	publishMaxElapsed = 2 * time.Second
	publishMaxRetries = 3
)

// customDescription is attached to user-created slash commands.
const customDescription = "Custom command"

// Synchronizer recomputes and republishes the full command set.
type Synchronizer struct {
	appID   string
	guildID string // empty means global scope
	reg     *dc.Registry
	store   *store.Store

	mu   sync.Mutex
	last map[string]bool // names of the previous publish, for diff logging
}

// New constructs a Synchronizer. An empty guildID publishes globally.
func New(appID, guildID string, reg *dc.Registry, st *store.Store) *Synchronizer {
	return &Synchronizer{
		appID:   appID,
		guildID: guildID,
		reg:     reg,
		store:   st,
	}
}

// Scope reports the publish target for logging.
func (s *Synchronizer) Scope() string {
	if s.guildID == "" {
		return "global"
	}
	return "guild"
}

func newPublishBackoff() backoff.BackOff {
	// BackOff implementations are stateful; always return a fresh instance.
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	bo.MaxElapsedTime = publishMaxElapsed
	return backoff.WithMaxRetries(bo, publishMaxRetries)
}

// desired builds the declarative command list: built-ins first, then
// stored slash commands, skipping any stored name that collides with a
// built-in. Returns the excluded names alongside.
func (s *Synchronizer) desired(doc *store.Document) ([]*discordgo.ApplicationCommand, []string) {
	cmds := s.reg.Descriptors()
	builtin := make(map[string]bool, len(cmds))
	for _, cmd := range cmds {
		builtin[cmd.Name] = true
	}

	var excluded []string
	for _, sc := range doc.SlashCommands {
		if builtin[sc.Name] {
			excluded = append(excluded, sc.Name)
			continue
		}
		cmds = append(cmds, &discordgo.ApplicationCommand{
			Name:        sc.Name,
			Description: customDescription,
		})
	}
	return cmds, excluded
}

// Publish re-sends the entire command set for the configured scope. The
// desired set is recomputed from the store on every call, and the diff
// against the previous publish is logged before the wire call so a
// dropped entry is observable.
func (s *Synchronizer) Publish(ctx context.Context, session event.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()

	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	cmds, excluded := s.desired(doc)

	names := make(map[string]bool, len(cmds))
	var added, removed []string
	for _, cmd := range cmds {
		names[cmd.Name] = true
		if !s.last[cmd.Name] {
			added = append(added, cmd.Name)
		}
	}
	for name := range s.last {
		if !names[name] {
			removed = append(removed, name)
		}
	}

	attrs := []slog.Attr{
		slog.String("scope", s.Scope()),
		slog.Int("count", len(cmds)),
	}
	if summary, ok := logger.SummarizeStrings(added, 10); ok {
		attrs = append(attrs, slog.String("added", summary))
	}
	if summary, ok := logger.SummarizeStrings(removed, 10); ok {
		attrs = append(attrs, slog.String("removed", summary))
	}
	if summary, ok := logger.SummarizeStrings(excluded, 10); ok {
		attrs = append(attrs, slog.String("excluded", summary))
	}
	logger.Info(ctx, "sync", "sync.plan", attrs...)

	attempts := 0
	op := func() error {
		attempts++
		_, err := session.ApplicationCommandBulkOverwrite(s.appID, s.guildID, cmds)
		return err
	}
	if err := backoff.Retry(op, backoff.WithContext(newPublishBackoff(), ctx)); err != nil {
		logger.Error(ctx, "sync", "sync.publish",
			slog.String("status", "fail"),
			slog.String("scope", s.Scope()),
			slog.Int("attempts", attempts),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return err
	}

	s.last = names
	logger.Info(ctx, "sync", "sync.publish",
		slog.String("status", "ok"),
		slog.String("scope", s.Scope()),
		slog.Int("count", len(cmds)),
		slog.Int("attempts", attempts),
		slog.Int64("duration_ms", logger.RoundMS(time.Since(start)).Milliseconds()),
	)
	return nil
}
