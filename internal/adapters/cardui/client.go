package cardui

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/jose-valero/kino-bot/internal/adapters/httpx"
	"github.com/jose-valero/kino-bot/internal/domain"
)

// Client habla con el servicio que renderiza las tarjetas (welcome, ...).
type Client struct{ c *httpx.Client }

func New(baseURL string, opts ...httpx.Option) *Client {
	// el render tarda: 60s de techo en vez de los 10s por defecto
	opts = append([]httpx.Option{httpx.WithHTTPClient(&http.Client{Timeout: 60 * time.Second})}, opts...)
	return &Client{c: httpx.New("cardui", baseURL, opts...)}
}

// EncodePayload: JSON -> base64, tal cual lo espera el query param "data".
func EncodePayload(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// Welcome devuelve el PNG de la tarjeta de bienvenida.
func (c *Client) Welcome(ctx context.Context, card domain.WelcomeCard) ([]byte, error) {
	data, err := EncodePayload(card)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("data", data)
	q.Set("nodeId", "capture")
	return c.c.GetBytes(ctx, "/welcome", q)
}
