package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/jose-valero/kino-bot/internal/paginator"
)

const msgViewExpired = "This menu has expired."

func (r *Router) handleMessageComponent(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	data := ic.MessageComponentData()
	user := invoker(ic)
	log.Debug().Str("custom_id", data.CustomID).Str("user", user.ID).Str("guild", ic.GuildID).Msg("component")

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Str("custom_id", data.CustomID).Msg("panic in component")
			_ = SendEphemeral(s, ic, "❌ An unexpected error occurred.")
		}
	}()

	if !isViewCustomID(data.CustomID) {
		_ = SendEphemeral(s, ic, msgViewExpired)
		return
	}
	r.handleViewClick(s, ic, data.CustomID)
}

func (r *Router) handleViewClick(s *discordgo.Session, ic *discordgo.InteractionCreate, customID string) {
	defer step("component.view")()

	id, action, err := parseViewCustomID(customID)
	if err != nil {
		_ = SendEphemeral(s, ic, msgViewExpired)
		return
	}

	up, err := r.views.Handle(id, action)
	switch {
	case errors.Is(err, paginator.ErrInactive), errors.Is(err, errBadCustomID):
		_ = SendEphemeral(s, ic, msgViewExpired)
		return
	case err != nil:
		log.Error().Err(err).Str("view", id).Msg("view navigate")
		_ = SendEphemeral(s, ic, "⚠️ Could not update this menu.")
		return
	}

	if up.Closed {
		// primero sacamos los botones, después borramos el mensaje
		if err := s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{Components: []discordgo.MessageComponent{}},
		}); err != nil {
			log.Warn().Err(err).Str("view", id).Msg("view close update")
		}
		if ic.Message != nil {
			if err := s.ChannelMessageDelete(ic.Message.ChannelID, ic.Message.ID); err != nil {
				log.Warn().Err(err).Str("view", id).Msg("view close delete")
			}
		}
		return
	}

	if err := s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{up.Embed},
			Components: up.Components,
		},
	}); err != nil {
		log.Error().Err(err).Str("view", id).Msg("view update")
	}
}
