package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/kino-bot/internal/app/service"
	"github.com/jose-valero/kino-bot/internal/domain"
	"github.com/jose-valero/kino-bot/internal/paginator"
)

// listenerPage: una página por listener, con el track en el author.
func listenerPage(t domain.Track) func(domain.Listener) paginator.Page {
	return func(l domain.Listener) paginator.Page {
		bio := strings.TrimSpace(l.Bio)
		if bio == "" {
			bio = "No bio"
		}
		return paginator.Page{
			Description: bio,
			Color:       colorEmbedBackground,
			Thumbnail:   l.Image,
			Author: &paginator.Author{
				Name:    t.Title + " by " + t.Artist,
				URL:     t.URL,
				IconURL: t.CoverURL,
			},
			Fields: []paginator.Field{
				{Name: "User", Value: fmt.Sprintf("%s ([Open in Spotify](%s%s))", l.DisplayName, spotifyUserBase, l.UserID), Inline: true},
				{Name: "Streams", Value: fmt.Sprintf("%dx (%s)", l.Streams, service.PlayedTime(l.PlayedMs)), Inline: true},
			},
		}
	}
}

func newListenerPaginator(t domain.Track, ls []domain.Listener) (*paginator.Paginator[domain.Listener], error) {
	return paginator.NewList(ls, listenerPage(t))
}

// invitesEmbed: Discord deja 25 fields, el título lleva el total real.
func invitesEmbed(invites []*discordgo.Invite, color int) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Active Invites (%d)", len(invites)),
		Color: color,
	}
	for _, inv := range invites {
		if len(e.Fields) == 25 {
			break
		}
		creator, channel := "unknown", "unknown"
		if inv.Inviter != nil {
			creator = mention(inv.Inviter.ID)
		}
		if inv.Channel != nil {
			channel = "<#" + inv.Channel.ID + ">"
		}
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
			Name:   inv.Code,
			Value:  fmt.Sprintf("**Creator**: %s\n**Uses**: %d\n**Channel**: %s", creator, inv.Uses, channel),
			Inline: true,
		})
	}
	return e
}
