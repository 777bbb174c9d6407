package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// DiscordConfig holds Discord bot related settings.
type DiscordConfig struct {
	Token string `yaml:"token" envconfig:"DISCORD_TOKEN"`
	AppID string `yaml:"app_id" envconfig:"DISCORD_APP_ID"`
	// GuildID scopes slash command registration to a single guild.
	// Empty means global registration.
	GuildID        string   `yaml:"guild_id" envconfig:"DISCORD_GUILD_ID"`
	OwnerID        string   `yaml:"owner_id" envconfig:"OWNER_ID"`
	TrialRoleID    string   `yaml:"trial_role_id" envconfig:"TRIAL_ROLE_ID"`
	ModRoleIDs     []string `yaml:"mod_role_ids" envconfig:"MOD_ROLE_IDS"`
	AuditChannelID string   `yaml:"audit_channel_id" envconfig:"AUDIT_CHANNEL_ID"`
}

// StoreConfig specifies command store persistence settings.
type StoreConfig struct {
	Path string `yaml:"path" envconfig:"STORE_PATH"`
}

// DraftsConfig controls lifetime of in-progress wizard drafts.
type DraftsConfig struct {
	TTLMinutes   int `yaml:"ttl_minutes" envconfig:"DRAFT_TTL_MINUTES"`
	SweepMinutes int `yaml:"sweep_minutes" envconfig:"DRAFT_SWEEP_MINUTES"`
}

// KeepaliveConfig specifies the liveness HTTP endpoint settings.
type KeepaliveConfig struct {
	Listen string `yaml:"listen" envconfig:"KEEPALIVE_LISTEN"`
}

// LoggingConfig defines logging related configuration.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	KeysOrder   string `yaml:"keys_order"`
	DebugSample string `yaml:"debug_sample"`
	Stacks      string `yaml:"stacks"`
	Dir         string `yaml:"dir"`
	BotFile     string `yaml:"bot_file"`
	ErrorsFile  string `yaml:"errors_file"`
	// Profile indicates environment profile such as "debug" or "prod".
	Profile string `yaml:"profile"`
}

const (
	// ScopeGuild indicates slash commands are published to a single guild.
	ScopeGuild = "guild"
	// ScopeGlobal indicates slash commands are published application-wide.
	ScopeGlobal = "global"
)

const (
	defaultStorePath    = "data/commands.json"
	defaultDraftTTL     = 15
	defaultDraftSweep   = 5
	defaultKeepaliveTCP = ":3000"
)

// Config aggregates the full application configuration.
type Config struct {
	Discord   DiscordConfig   `yaml:"discord"`
	Store     StoreConfig     `yaml:"store"`
	Drafts    DraftsConfig    `yaml:"drafts"`
	Keepalive KeepaliveConfig `yaml:"keepalive"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// Load reads configuration from a YAML file and environment variables.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize performs basic validation of required configuration fields and adjusts defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}

	if strings.TrimSpace(cfg.Discord.Token) == "" {
		return fmt.Errorf("discord token is required")
	}
	if strings.TrimSpace(cfg.Discord.AppID) == "" {
		return fmt.Errorf("discord.app_id is required")
	}
	if strings.TrimSpace(cfg.Discord.OwnerID) == "" {
		return fmt.Errorf("discord.owner_id is required")
	}

	roles := cfg.Discord.ModRoleIDs[:0]
	for _, r := range cfg.Discord.ModRoleIDs {
		if trimmed := strings.TrimSpace(r); trimmed != "" {
			roles = append(roles, trimmed)
		}
	}
	cfg.Discord.ModRoleIDs = roles

	if strings.TrimSpace(cfg.Store.Path) == "" {
		cfg.Store.Path = defaultStorePath
	}

	if cfg.Drafts.TTLMinutes < 0 {
		return fmt.Errorf("drafts.ttl_minutes must be >= 0")
	}
	if cfg.Drafts.TTLMinutes == 0 {
		cfg.Drafts.TTLMinutes = defaultDraftTTL
	}
	if cfg.Drafts.SweepMinutes < 0 {
		return fmt.Errorf("drafts.sweep_minutes must be >= 0")
	}
	if cfg.Drafts.SweepMinutes == 0 {
		cfg.Drafts.SweepMinutes = defaultDraftSweep
	}

	if strings.TrimSpace(cfg.Keepalive.Listen) == "" {
		cfg.Keepalive.Listen = defaultKeepaliveTCP
	}

	return nil
}

// Scope reports whether slash commands are published per guild or globally.
func (d DiscordConfig) Scope() string {
	if strings.TrimSpace(d.GuildID) != "" {
		return ScopeGuild
	}
	return ScopeGlobal
}
