package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/kino-bot/internal/paginator"
)

// colorEmbedBackground es el gris de fondo de los embeds de Discord.
const colorEmbedBackground = 0x2B2D31

func toEmbed(p paginator.Page) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{
		Title:       p.Title,
		Description: p.Description,
		Color:       p.Color,
	}
	if p.Author != nil {
		e.Author = &discordgo.MessageEmbedAuthor{Name: p.Author.Name, URL: p.Author.URL, IconURL: p.Author.IconURL}
	}
	if p.Thumbnail != "" {
		e.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: p.Thumbnail}
	}
	for _, f := range p.Fields {
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	if p.Footer != "" {
		e.Footer = &discordgo.MessageEmbedFooter{Text: p.Footer}
	}
	return e
}

type buttonSpec struct {
	label string
	emoji string
	style discordgo.ButtonStyle
}

var navButtons = map[paginator.Action]buttonSpec{
	paginator.First:    {"First", "⏮️", discordgo.SecondaryButton},
	paginator.Previous: {"Previous", "⬅️", discordgo.SecondaryButton},
	paginator.Next:     {"Next", "➡️", discordgo.SecondaryButton},
	paginator.Last:     {"Last", "⏭️", discordgo.SecondaryButton},
	paginator.Close:    {"Close", "", discordgo.DangerButton},
}

// navComponents arma la fila de botones de una vista. Discord deja 5 por fila.
func navComponents(viewID string, actions []paginator.Action, disabled bool) []discordgo.MessageComponent {
	btns := make([]discordgo.MessageComponent, 0, len(actions))
	for _, a := range actions {
		cfg := navButtons[a]
		b := discordgo.Button{
			Label:    cfg.label,
			Style:    cfg.style,
			CustomID: viewCustomID(viewID, a),
			Disabled: disabled,
		}
		if cfg.emoji != "" {
			b.Emoji = &discordgo.ComponentEmoji{Name: cfg.emoji}
		}
		btns = append(btns, b)
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: btns}}
}

func linkButton(label, url string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{Label: label, Style: discordgo.LinkButton, URL: url},
	}}}
}
