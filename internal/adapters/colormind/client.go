package colormind

import (
	"context"

	"github.com/jose-valero/kino-bot/internal/adapters/httpx"
	"github.com/jose-valero/kino-bot/internal/domain"
)

const defaultBase = "http://colormind.io"

type Client struct{ c *httpx.Client }

func New(opts ...httpx.Option) *Client {
	return &Client{c: httpx.New("colormind", defaultBase, opts...)}
}

type resultDTO struct {
	Result [][3]int `json:"result"`
}

// Palette pide una paleta al modelo "default". Los valores fuera de 0..255
// se recortan.
func (c *Client) Palette(ctx context.Context) (domain.Palette, error) {
	var dto resultDTO
	if err := c.c.PostJSON(ctx, "/api/", map[string]string{"model": "default"}, &dto); err != nil {
		return nil, err
	}
	out := make(domain.Palette, 0, len(dto.Result))
	for _, rgb := range dto.Result {
		out = append(out, domain.RGB{clip(rgb[0]), clip(rgb[1]), clip(rgb[2])})
	}
	return out, nil
}

func clip(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
