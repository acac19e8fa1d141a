package discord

import (
	"bytes"
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// codeUnknownWebhook: todavía no hay respuesta a la interacción.
const codeUnknownWebhook = 10015

func SendEphemeral(s *discordgo.Session, ic *discordgo.InteractionCreate, msg string) error {
	err := s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("SendEphemeral")
	}
	return err
}

// Defer efímero (para trabajos >3s)
func DeferEphemeral(s *discordgo.Session, ic *discordgo.InteractionCreate) error {
	return deferResponse(s, ic, discordgo.MessageFlagsEphemeral)
}

// DeferPublic: igual pero la respuesta la ve todo el canal.
func DeferPublic(s *discordgo.Session, ic *discordgo.InteractionCreate) error {
	return deferResponse(s, ic, 0)
}

func deferResponse(s *discordgo.Session, ic *discordgo.InteractionCreate, flags discordgo.MessageFlags) error {
	err := s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: flags},
	})
	if err != nil {
		log.Error().Err(err).Msg("defer")
	}
	return err
}

func ReplyEphemeral(s *discordgo.Session, ic *discordgo.InteractionCreate, content string, embeds ...*discordgo.MessageEmbed) {
	followup(s, ic, &discordgo.WebhookParams{Content: content, Embeds: embeds}, discordgo.MessageFlagsEphemeral)
}

// Reply responde en público (después de DeferPublic).
func Reply(s *discordgo.Session, ic *discordgo.InteractionCreate, content string, embeds ...*discordgo.MessageEmbed) {
	followup(s, ic, &discordgo.WebhookParams{Content: content, Embeds: embeds}, 0)
}

// ReplyFile manda un adjunto (mp3, png) como respuesta pública.
func ReplyFile(s *discordgo.Session, ic *discordgo.InteractionCreate, name, contentType string, data []byte) {
	followup(s, ic, &discordgo.WebhookParams{
		Files: []*discordgo.File{{Name: name, ContentType: contentType, Reader: bytes.NewReader(data)}},
	}, 0)
}

// ReplyPrivate: la interacción se difirió en público pero la respuesta es
// sólo para el usuario. Se borra el "pensando..." y va un followup efímero.
func ReplyPrivate(s *discordgo.Session, ic *discordgo.InteractionCreate, content string) {
	if err := s.InteractionResponseDelete(ic.Interaction); err != nil {
		log.Warn().Err(err).Msg("ReplyPrivate delete original")
	}
	if _, err := s.FollowupMessageCreate(ic.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	}); err != nil {
		log.Error().Err(err).Msg("ReplyPrivate")
	}
}

func followup(s *discordgo.Session, ic *discordgo.InteractionCreate, params *discordgo.WebhookParams, flags discordgo.MessageFlags) {
	params.Flags = flags
	_, err := s.FollowupMessageCreate(ic.Interaction, true, params)
	if err == nil {
		return
	}

	// Fallback sólo si todavía no hay respuesta (webhook desconocido)
	var reqErr *discordgo.RESTError
	if errors.As(err, &reqErr) && reqErr.Message != nil && reqErr.Message.Code == codeUnknownWebhook {
		_ = s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: params.Content,
				Embeds:  params.Embeds,
				Files:   params.Files,
				Flags:   flags,
			},
		})
		return
	}
	log.Error().Err(err).Msg("followup")
}

// EditOriginal reemplaza la respuesta diferida y devuelve el mensaje (para
// saber channel/message id).
func EditOriginal(s *discordgo.Session, ic *discordgo.InteractionCreate, params *discordgo.WebhookEdit) (*discordgo.Message, error) {
	msg, err := s.InteractionResponseEdit(ic.Interaction, params)
	if err != nil {
		log.Error().Err(err).Msg("EditOriginal")
	}
	return msg, err
}

// deleteResponseAfter borra la respuesta de la interacción pasado d.
func deleteResponseAfter(s *discordgo.Session, ic *discordgo.InteractionCreate, d time.Duration) {
	time.AfterFunc(d, func() {
		if err := s.InteractionResponseDelete(ic.Interaction); err != nil {
			log.Debug().Err(err).Msg("auto delete response")
		}
	})
}

// deleteMessageAfter borra un mensaje normal pasado d.
func deleteMessageAfter(s *discordgo.Session, msg *discordgo.Message, d time.Duration) {
	if msg == nil {
		return
	}
	time.AfterFunc(d, func() {
		if err := s.ChannelMessageDelete(msg.ChannelID, msg.ID); err != nil {
			log.Debug().Err(err).Str("msg", msg.ID).Msg("auto delete message")
		}
	})
}
