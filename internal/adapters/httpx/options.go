package httpx

import "net/http"

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}
func WithHeader(k, v string) Option {
	return func(c *Client) { c.headers.Set(k, v) }
}

// WithBearer no agrega nada si el token está vacío (APIs sin key).
func WithBearer(token string) Option {
	return func(c *Client) {
		if token != "" {
			c.headers.Set("Authorization", "Bearer "+token)
		}
	}
}
