package discord

import (
	"github.com/jose-valero/kino-bot/internal/app/service"
	"github.com/jose-valero/kino-bot/internal/infra/config"
)

// Services agrupa lo que despachan los handlers.
type Services struct {
	AFK       *service.AFKService
	Movies    *service.MovieService
	TTS       *service.TTSService
	Horoscope *service.HoroscopeService
	Palette   *service.PaletteService
	Listeners *service.ListenerService
	Welcome   *service.WelcomeService
}

// Settings es la parte de config.Config que le importa al router.
type Settings struct {
	GuildID          string
	WelcomeChannelID string
	AdminRoleIDs     []string
	Colors           config.Colors
}

func SettingsFrom(cfg config.Config) Settings {
	return Settings{
		GuildID:          cfg.DiscordGuild,
		WelcomeChannelID: cfg.WelcomeChannelID,
		AdminRoleIDs:     cfg.AdminRoleIDs,
		Colors:           cfg.Colors,
	}
}
