package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	coreconfig "github.com/whykushh/discord-panel-bot/internal/config"
	"github.com/whykushh/discord-panel-bot/internal/discord/sender"
	"github.com/whykushh/discord-panel-bot/internal/logger"
)

// RunOptions controls the behaviour of RunDiscord.
type RunOptions struct {
	Config   *coreconfig.Config
	Registry *Registry

	DispatcherOptions sender.Options
	Dispatcher        *sender.Dispatcher

	InteractionHandler func(*discordgo.Session, *discordgo.InteractionCreate)
	MessageHandler     func(*discordgo.Session, *discordgo.MessageCreate)

	OnStart func(ctx context.Context, rt Runtime) error
	OnStop  func(ctx context.Context, rt Runtime) error
}

// Runtime exposes runtime components to lifecycle hooks.
type Runtime struct {
	Session    *discordgo.Session
	Dispatcher *sender.Dispatcher
	Registry   *Registry
}

// RunDiscord composes and runs the gateway session until the provided
// context is done.
func RunDiscord(ctx context.Context, opts RunOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Config == nil {
		return fmt.Errorf("discord: nil config provided")
	}

	cfg := opts.Config
	reg := opts.Registry
	if reg == nil {
		reg = NewRegistry()
	}

	buildStart := time.Now()
	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("discord: session initialization failed: %w", err)
	}
	session.Client = BuildHTTPClient()
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	dispatcher := opts.Dispatcher
	if dispatcher == nil {
		dispatcher = sender.NewDispatcher(opts.DispatcherOptions)
	}

	rt := Runtime{
		Session:    session,
		Dispatcher: dispatcher,
		Registry:   reg,
	}

	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logger.Info(ctx, "discord", "gateway.ready",
			slog.String("name", r.User.Username),
			slog.Int("count", len(r.Guilds)),
			slog.String("scope", cfg.Discord.Scope()),
			slog.Duration("duration", logger.RoundMS(time.Since(buildStart))),
		)
	})
	if opts.InteractionHandler != nil {
		session.AddHandler(opts.InteractionHandler)
	}
	if opts.MessageHandler != nil {
		session.AddHandler(opts.MessageHandler)
	}

	if err := session.Open(); err != nil {
		dispatcher.Close()
		return fmt.Errorf("discord: gateway open failed: %w", err)
	}

	if opts.OnStart != nil {
		if err := opts.OnStart(ctx, rt); err != nil {
			_ = session.Close()
			dispatcher.Close()
			return err
		}
	}

	<-ctx.Done()
	runErr := ctx.Err()

	var stopErr error
	if opts.OnStop != nil {
		stopErr = opts.OnStop(context.Background(), rt)
	}

	closeErr := session.Close()
	dispatcher.Close()

	if stopErr != nil {
		return stopErr
	}
	if closeErr != nil {
		return closeErr
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}
