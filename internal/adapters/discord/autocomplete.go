package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/jose-valero/kino-bot/internal/app/service"
)

// Discord corta en 25 choices y 3s para responder.
const (
	maxChoices          = 25
	autocompleteTimeout = 2500 * time.Millisecond
)

func (r *Router) handleAutocomplete(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	cmd := ic.ApplicationCommandData()
	opt, ok := focused(ic)
	if !ok {
		return
	}
	log.Debug().Str("cmd", cmd.Name).Str("option", opt.Name).Msg("autocomplete")

	var choices []*discordgo.ApplicationCommandOptionChoice
	switch {
	case cmd.Name == "movie" && opt.Name == "movie":
		ctx, cancel := context.WithTimeout(context.Background(), autocompleteTimeout)
		defer cancel()
		titles, err := r.svc.Movies.Suggest(ctx, opt.StringValue(), maxChoices-1)
		if err != nil {
			log.Warn().Err(err).Msg("popular movies autocomplete")
		}
		choices = movieChoices(titles)
	}

	if err := s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	}); err != nil {
		log.Debug().Err(err).Msg("autocomplete respond")
	}
}

// movieChoices: placeholder primero y después los títulos (value = título).
func movieChoices(titles []string) []*discordgo.ApplicationCommandOptionChoice {
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(titles)+1)
	out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: service.PopularLabel, Value: service.PopularPlaceholder})
	for _, t := range titles {
		if len(out) == maxChoices {
			break
		}
		t = truncate(t, 100)
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: t, Value: t})
	}
	return out
}
