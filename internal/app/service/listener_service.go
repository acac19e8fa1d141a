package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jose-valero/kino-bot/internal/domain"
)

type ListenerService struct {
	api ListenerAPI
}

func NewListenerService(api ListenerAPI) *ListenerService { return &ListenerService{api: api} }

// TopListeners busca el track en stats.fm (título + algún artista en común) y
// devuelve sus top listeners. ErrTrackNotFound si no hay match o nadie lo escuchó.
func (s *ListenerService) TopListeners(ctx context.Context, t domain.Track) ([]domain.Listener, error) {
	if strings.TrimSpace(t.Title) == "" {
		return nil, ErrNotListening
	}

	hits, err := s.api.SearchTracks(ctx, t.Title)
	if err != nil {
		return nil, err
	}
	id, ok := MatchTrack(hits, t.Artist)
	if !ok {
		return nil, ErrTrackNotFound
	}

	ls, err := s.api.TopListeners(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(ls) == 0 {
		return nil, ErrTrackNotFound
	}
	return ls, nil
}

// MatchTrack devuelve el primer hit que comparte artista. Spotify manda los
// artistas juntos separados por "; ".
func MatchTrack(hits []domain.TrackHit, artist string) (int, bool) {
	want := map[string]bool{}
	for _, a := range strings.Split(artist, ";") {
		if a = strings.TrimSpace(a); a != "" {
			want[strings.ToLower(a)] = true
		}
	}
	for _, h := range hits {
		for _, a := range h.Artists {
			if want[strings.ToLower(a)] {
				return h.ID, true
			}
		}
	}
	return 0, false
}

// PlayedTime: ms -> "{h}h {m}m {s}s".
func PlayedTime(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	h := ms / 3_600_000
	m := ms % 3_600_000 / 60_000
	sec := ms % 60_000 / 1000
	return fmt.Sprintf("%dh %dm %ds", h, m, sec)
}
