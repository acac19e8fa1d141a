package horoscope

import (
	"context"
	"net/url"

	"github.com/jose-valero/kino-bot/internal/adapters/httpx"
	"github.com/jose-valero/kino-bot/internal/domain"
)

const defaultBase = "https://newastro.vercel.app"

type Client struct{ c *httpx.Client }

func New(opts ...httpx.Option) *Client {
	return &Client{c: httpx.New("horoscope", defaultBase, opts...)}
}

type dailyDTO struct {
	Horoscope string `json:"horoscope"`
	Icon      string `json:"icon"`
}

func (c *Client) Daily(ctx context.Context, sign string) (domain.Horoscope, error) {
	var dto dailyDTO
	if err := c.c.GetJSON(ctx, "/"+url.PathEscape(sign), nil, &dto); err != nil {
		return domain.Horoscope{}, err
	}
	return domain.Horoscope{Sign: sign, Text: dto.Horoscope, Icon: dto.Icon}, nil
}
