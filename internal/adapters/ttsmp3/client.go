package ttsmp3

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/jose-valero/kino-bot/internal/adapters/httpx"
)

const defaultBase = "https://ttsmp3.com"

// ErrNoAudio: la API respondió pero sin URL (límite de uso, texto vacío, ...).
var ErrNoAudio = errors.New("ttsmp3: no audio url in response")

type Client struct{ c *httpx.Client }

func New(opts ...httpx.Option) *Client {
	return &Client{c: httpx.New("ttsmp3", defaultBase, opts...)}
}

type makeDTO struct {
	Error any    `json:"Error"`
	URL   string `json:"URL"`
}

// Synthesize pide el mp3 y devuelve la URL de descarga.
func (c *Client) Synthesize(ctx context.Context, text, voice string) (string, error) {
	form := url.Values{}
	form.Set("msg", text)
	form.Set("lang", voice)
	form.Set("source", "ttsmp3")
	form.Set("quality", "hi")
	form.Set("speed", "0")
	form.Set("action", "process")

	var dto makeDTO
	if err := c.c.PostForm(ctx, "/makemp3_new.php", form, &dto); err != nil {
		return "", err
	}
	if dto.URL == "" {
		if msg, ok := dto.Error.(string); ok && msg != "" {
			return "", fmt.Errorf("%w: %s", ErrNoAudio, msg)
		}
		return "", ErrNoAudio
	}
	return dto.URL, nil
}

func (c *Client) Download(ctx context.Context, audioURL string) ([]byte, error) {
	return c.c.GetBytes(ctx, audioURL, nil)
}
