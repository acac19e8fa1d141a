package discord

import (
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/kino-bot/internal/domain"
)

const (
	spotifyCoverBase  = "https://i.scdn.co/image/"
	spotifySearchBase = "https://open.spotify.com/search/"
	spotifyUserBase   = "https://open.spotify.com/user/"
)

func (r *Router) safeGetGuild(id string) (*discordgo.Guild, error) {
	if g, err := r.s.State.Guild(id); err == nil && g != nil && g.MemberCount > 0 {
		return g, nil
	}
	g, err := r.s.GuildWithCounts(id)
	if err != nil {
		return nil, err
	}
	if g.MemberCount == 0 {
		g.MemberCount = g.ApproximateMemberCount
	}
	return g, nil
}

// memberCount del guild; 0 si no se pudo leer.
func (r *Router) memberCount(guildID string) int {
	g, err := r.safeGetGuild(guildID)
	if err != nil || g == nil {
		return 0
	}
	return g.MemberCount
}

// spotifyTrack lee la presencia cacheada del usuario (necesita el intent
// GuildPresences).
func (r *Router) spotifyTrack(guildID, userID string) (domain.Track, bool) {
	p, err := r.s.State.Presence(guildID, userID)
	if err != nil || p == nil {
		return domain.Track{}, false
	}
	return spotifyFromActivities(p.Activities)
}

// spotifyFromActivities: Details es el título, State los artistas ("A; B") y
// la large image "spotify:<id>" la portada.
func spotifyFromActivities(acts []*discordgo.Activity) (domain.Track, bool) {
	for _, a := range acts {
		if a == nil || a.Type != discordgo.ActivityTypeListening || !strings.EqualFold(a.Name, "Spotify") {
			continue
		}
		if strings.TrimSpace(a.Details) == "" {
			continue
		}
		t := domain.Track{
			Title:  a.Details,
			Artist: a.State,
			URL:    spotifySearchBase + url.PathEscape(a.Details+" "+a.State),
		}
		if id, ok := strings.CutPrefix(a.Assets.LargeImageID, "spotify:"); ok && id != "" {
			t.CoverURL = spotifyCoverBase + id
		}
		return t, true
	}
	return domain.Track{}, false
}
