package discord

import (
	"bytes"
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/jose-valero/kino-bot/internal/app/service"
)

// onMessageCreate: el autor vuelve de AFK y se avisa de los mencionados AFK.
func (r *Router) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ids := make([]string, 0, len(m.Mentions))
	for _, u := range m.Mentions {
		if u != nil && !u.Bot {
			ids = append(ids, u.ID)
		}
	}

	act, err := r.svc.AFK.OnMessage(ctx, m.Author.ID, ids)
	if err != nil {
		log.Error().Err(err).Str("user", m.Author.ID).Msg("afk on message")
		return
	}
	if act.Empty() {
		return
	}

	if act.Returned {
		msg, err := s.ChannelMessageSend(m.ChannelID, "Welcome back "+mention(m.Author.ID)+"! AFK status removed.")
		if err == nil {
			deleteMessageAfter(s, msg, autoDeleteAfter)
		}
	}
	for _, e := range afkNotices(m.Author.ID, act, r.cfg.Colors.Info) {
		msg, err := s.ChannelMessageSendEmbed(m.ChannelID, e)
		if err != nil {
			log.Warn().Err(err).Msg("afk notice")
			continue
		}
		deleteMessageAfter(s, msg, autoDeleteAfter)
	}
}

func afkNotices(authorID string, act service.AFKActivity, color int) []*discordgo.MessageEmbed {
	out := make([]*discordgo.MessageEmbed, 0, len(act.Mentioned))
	for _, e := range act.Mentioned {
		out = append(out, &discordgo.MessageEmbed{
			Description: "Hello " + mention(authorID) + ", " + mention(e.UserID) + " is currently AFK.",
			Color:       color,
			Fields:      []*discordgo.MessageEmbedField{{Name: "AFK Message", Value: truncate(e.Message, 1024)}},
		})
	}
	return out
}

// onGuildMemberAdd publica la tarjeta de bienvenida si hay canal configurado.
func (r *Router) onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if r.cfg.WelcomeChannelID == "" || m.Member == nil || m.User == nil || m.User.Bot {
		return
	}
	if r.cfg.GuildID != "" && m.GuildID != r.cfg.GuildID {
		return
	}
	defer step("welcome.card")()

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Second)
	defer cancel()

	name := m.User.GlobalName
	if name == "" {
		name = m.User.Username
	}
	png, err := r.svc.Welcome.Card(ctx, m.User.AvatarURL("256"), r.memberCount(m.GuildID), name)
	if err != nil {
		log.Error().Err(err).Str("user", m.User.ID).Msg("welcome card")
		return
	}

	_, err = s.ChannelMessageSendComplex(r.cfg.WelcomeChannelID, &discordgo.MessageSend{
		Content: "Welcome " + mention(m.User.ID) + "!",
		Files:   []*discordgo.File{{Name: "welcome.png", ContentType: "image/png", Reader: bytes.NewReader(png)}},
	})
	if err != nil {
		log.Error().Err(err).Str("channel", r.cfg.WelcomeChannelID).Msg("welcome send")
	}
}
