package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

const (
	// cooldown por usuario de /tts y /horoscope
	commandCooldown = 30 * time.Second
	autoDeleteAfter = 5 * time.Second
)

type Router struct {
	s   *discordgo.Session
	cfg Settings
	svc Services

	views    *viewRegistry
	cooldown *userLimiter
}

func NewRouter(s *discordgo.Session, cfg Settings, svc Services) *Router {
	return &Router{
		s:        s,
		cfg:      cfg,
		svc:      svc,
		views:    newViewRegistry(s, viewTimeout),
		cooldown: newUserLimiter(commandCooldown),
	}
}

// Register pisa los comandos del guild (o globales si GuildID está vacío).
func (r *Router) Register() error {
	appID := r.s.State.User.ID
	done := step("commands.register")
	defer done()

	out, err := r.s.ApplicationCommandBulkOverwrite(appID, r.cfg.GuildID, Commands)
	if err != nil {
		return err
	}
	log.Info().Int("count", len(out)).Str("guild", r.cfg.GuildID).Msg("slash commands registered")
	return nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		switch ic.Type {
		case discordgo.InteractionApplicationCommand:
			r.handleSlashCommand(s, ic)
		case discordgo.InteractionMessageComponent:
			r.handleMessageComponent(s, ic)
		case discordgo.InteractionApplicationCommandAutocomplete:
			r.handleAutocomplete(s, ic)
		}
	})
	r.s.AddHandler(r.onMessageCreate)
	r.s.AddHandler(r.onGuildMemberAdd)
}
