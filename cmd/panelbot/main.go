package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	corecmd "github.com/whykushh/discord-panel-bot/internal/cmd"
	coreconfig "github.com/whykushh/discord-panel-bot/internal/config"
	"github.com/whykushh/discord-panel-bot/internal/discord"
	"github.com/whykushh/discord-panel-bot/internal/discord/flows"
	"github.com/whykushh/discord-panel-bot/internal/discord/regsync"
	"github.com/whykushh/discord-panel-bot/internal/discord/router"
	"github.com/whykushh/discord-panel-bot/internal/discord/sender"
	"github.com/whykushh/discord-panel-bot/internal/discord/state"
	"github.com/whykushh/discord-panel-bot/internal/keepalive"
	"github.com/whykushh/discord-panel-bot/internal/logger"
	"github.com/whykushh/discord-panel-bot/internal/store"
)

type app struct {
	cfg        *coreconfig.Config
	registry   *discord.Registry
	dispatcher *sender.Dispatcher
	sync       *regsync.Synchronizer
	drafts     state.Manager
	flows      *flows.Flows
	keepalive  *keepalive.Server
}

func bootstrap(cfg *coreconfig.Config) (corecmd.DiscordApp, error) {
	if err := logger.InitLogger(cfg); err != nil {
		return nil, err
	}

	st := store.New(cfg.Store.Path)
	if _, err := st.Load(); err != nil {
		return nil, err
	}

	drafts := state.NewMemoryManager(time.Duration(cfg.Drafts.TTLMinutes) * time.Minute)
	reg := discord.NewRegistry()
	dispatcher := sender.NewDispatcher(sender.Options{})
	sync := regsync.New(cfg.Discord.AppID, cfg.Discord.GuildID, reg, st)

	fl := flows.New(cfg.Discord, st, drafts, sync, dispatcher)
	fl.Register(reg)

	return &app{
		cfg:        cfg,
		registry:   reg,
		dispatcher: dispatcher,
		sync:       sync,
		drafts:     drafts,
		flows:      fl,
		keepalive:  keepalive.New(cfg.Keepalive.Listen),
	}, nil
}

func (a *app) DiscordRunOptions() (discord.RunOptions, error) {
	sweep := time.Duration(a.cfg.Drafts.SweepMinutes) * time.Minute

	return discord.RunOptions{
		Config:     a.cfg,
		Registry:   a.registry,
		Dispatcher: a.dispatcher,
		InteractionHandler: router.InteractionRoute(a.registry, router.InteractionOptions{
			OwnerID: a.cfg.Discord.OwnerID,
		}),
		MessageHandler: router.MessageRoute(a.registry),
		OnStart: func(ctx context.Context, rt discord.Runtime) error {
			state.StartSweep(ctx, a.drafts, sweep)
			a.keepalive.Start(ctx)
			// A failed publish is recovered by the next successful sync;
			// it must not take the bot down at boot.
			if err := a.sync.Publish(ctx, rt.Session); err != nil {
				logger.Warn(ctx, "sync", "sync.startup",
					slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
				)
			}
			return nil
		},
		OnStop: func(ctx context.Context, rt discord.Runtime) error {
			return a.keepalive.Stop(ctx)
		},
	}, nil
}

func main() {
	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig:        coreconfig.Load,
		Bootstrap:         bootstrap,
	})
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
