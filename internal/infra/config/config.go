package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Colors struct {
	Default int `yaml:"default"`
	Info    int `yaml:"info"`
	Success int `yaml:"success"`
}

type Config struct {
	DatabaseURL  string `yaml:"database_url"`
	DiscordToken string `yaml:"discord_token"`
	DiscordGuild string `yaml:"discord_guild"` // vacío = comandos globales
	HTTPAddr     string `yaml:"http_addr"`     // opcional, default :8080

	TMDBAPIKey     string `yaml:"tmdb_api_key"`
	StatsFMAPIKey  string `yaml:"stats_fm_api_key"`
	CardServiceURL string `yaml:"card_service_url"`

	WelcomeChannelID string   `yaml:"welcome_channel_id"`
	AdminRoleIDs     []string `yaml:"admin_role_ids"`
	AFKRetentionDays int      `yaml:"afk_retention_days"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // console | json

	Colors Colors `yaml:"colors"`
}

func Default() Config {
	return Config{
		DatabaseURL:      "kino.db",
		HTTPAddr:         ":8080",
		CardServiceURL:   "http://localhost:3000/api",
		AFKRetentionDays: 30,
		LogLevel:         "info",
		LogFormat:        "console",
		Colors: Colors{
			Default: 0x5865F2,
			Info:    0x3498DB,
			Success: 0x2ECC71,
		},
	}
}

// Load arma la config: defaults, después el yaml (si existe) y al final
// las env, que siempre ganan.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// sin archivo: sólo env
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	get := func(k string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			*dst = v
		}
	}
	get("DATABASE_URL", &cfg.DatabaseURL)
	get("DISCORD_BOT_TOKEN", &cfg.DiscordToken)
	get("DISCORD_GUILD_ID", &cfg.DiscordGuild)
	get("HTTP_ADDR", &cfg.HTTPAddr)
	get("TMDB_API_KEY", &cfg.TMDBAPIKey)
	get("STATS_FM_API_KEY", &cfg.StatsFMAPIKey)
	get("CARD_SERVICE_URL", &cfg.CardServiceURL)
	get("WELCOME_CHANNEL_ID", &cfg.WelcomeChannelID)
	get("LOG_LEVEL", &cfg.LogLevel)
	get("LOG_FORMAT", &cfg.LogFormat)

	if v := os.Getenv("ADMIN_ROLE_IDS"); v != "" {
		cfg.AdminRoleIDs = splitList(v)
	}
	if v := os.Getenv("AFK_RETENTION_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: AFK_RETENTION_DAYS: %w", err)
		}
		cfg.AFKRetentionDays = n
	}

	if cfg.DiscordToken == "" {
		return Config{}, errors.New("config: faltante env DISCORD_BOT_TOKEN")
	}
	return cfg, nil
}

// BotAuth devuelve el token con el prefijo "Bot " que pide discordgo.
func (c Config) BotAuth() string {
	auth := strings.TrimSpace(c.DiscordToken)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	return auth
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
