package statsfm

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jose-valero/kino-bot/internal/adapters/httpx"
	"github.com/jose-valero/kino-bot/internal/domain"
)

const (
	defaultBase = "https://beta-api.stats.fm/api/v1"
	userAgent   = "Mozilla/5.0 (U; Linux i654 ) Gecko/20130401 Firefox/46.2"
)

type Client struct{ c *httpx.Client }

func New(apiKey string, opts ...httpx.Option) *Client {
	opts = append([]httpx.Option{
		httpx.WithBearer(apiKey),
		httpx.WithHeader("User-Agent", userAgent),
	}, opts...)
	return &Client{c: httpx.New("statsfm", defaultBase, opts...)}
}

type searchDTO struct {
	Items struct {
		Tracks []struct {
			ID      int    `json:"id"`
			Name    string `json:"name"`
			Artists []struct {
				Name string `json:"name"`
			} `json:"artists"`
		} `json:"tracks"`
	} `json:"items"`
}

type listenersDTO struct {
	Items []struct {
		Streams  int   `json:"streams"`
		PlayedMs int64 `json:"playedMs"`
		User     struct {
			ID          string `json:"id"`
			DisplayName string `json:"displayName"`
			Image       string `json:"image"`
			Profile     *struct {
				Bio string `json:"bio"`
			} `json:"profile"`
		} `json:"user"`
	} `json:"items"`
}

func (c *Client) SearchTracks(ctx context.Context, query string) ([]domain.TrackHit, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("type", "track")
	q.Set("limit", "50")

	var dto searchDTO
	if err := c.c.GetJSON(ctx, "/search/elastic", q, &dto); err != nil {
		return nil, err
	}
	out := make([]domain.TrackHit, 0, len(dto.Items.Tracks))
	for _, t := range dto.Items.Tracks {
		h := domain.TrackHit{ID: t.ID, Name: t.Name}
		for _, a := range t.Artists {
			h.Artists = append(h.Artists, a.Name)
		}
		out = append(out, h)
	}
	return out, nil
}

func (c *Client) TopListeners(ctx context.Context, trackID int) ([]domain.Listener, error) {
	var dto listenersDTO
	if err := c.c.GetJSON(ctx, fmt.Sprintf("/tracks/%d/top/listeners", trackID), nil, &dto); err != nil {
		return nil, err
	}
	out := make([]domain.Listener, 0, len(dto.Items))
	for _, it := range dto.Items {
		l := domain.Listener{
			UserID:      it.User.ID,
			DisplayName: it.User.DisplayName,
			Image:       it.User.Image,
			Streams:     it.Streams,
			PlayedMs:    it.PlayedMs,
		}
		if it.User.Profile != nil {
			l.Bio = it.User.Profile.Bio
		}
		out = append(out, l)
	}
	return out, nil
}
