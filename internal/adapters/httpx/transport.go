// Package httpx es el transporte JSON que comparten los clientes de APIs
// externas (tmdb, statsfm, colormind, ...).
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// maxBody corta descargas gigantes (audio, imágenes).
const maxBody = 16 << 20

type Client struct {
	service string
	http    *http.Client
	baseURL string
	headers http.Header
}

func New(service, baseURL string, opts ...Option) *Client {
	c := &Client{
		service: service,
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: http.Header{},
	}
	c.headers.Set("Accept", "application/json")
	for _, o := range opts {
		o(c)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	return c
}

type Request struct {
	Method string
	// Path relativo a baseURL, o una URL absoluta (p.ej. el mp3 de ttsmp3).
	Path        string
	Query       url.Values
	Body        []byte
	ContentType string
}

func (c *Client) GetJSON(ctx context.Context, path string, q url.Values, out any) error {
	return c.DoJSON(ctx, Request{Method: http.MethodGet, Path: path, Query: q}, out)
}

func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s encode: %w", c.service, err)
	}
	return c.DoJSON(ctx, Request{Method: http.MethodPost, Path: path, Body: b, ContentType: "application/json"}, out)
}

func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	return c.DoJSON(ctx, Request{
		Method:      http.MethodPost,
		Path:        path,
		Body:        []byte(form.Encode()),
		ContentType: "application/x-www-form-urlencoded",
	}, out)
}

// GetBytes baja el body crudo (audio, png).
func (c *Client) GetBytes(ctx context.Context, path string, q url.Values) ([]byte, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: q})
}

// DoJSON decodifica el body aunque el server mande otro content-type
// (colormind responde text/html con JSON adentro).
func (c *Client) DoJSON(ctx context.Context, r Request, out any) error {
	b, err := c.Do(ctx, r)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%s decode: %w", c.service, err)
	}
	return nil
}

// Do: arma la URL, agrega headers, maneja 404 y 429 con Retry-After simple.
func (c *Client) Do(ctx context.Context, r Request) ([]byte, error) {
	return c.do(ctx, r, true)
}

func (c *Client) do(ctx context.Context, r Request, retry bool) ([]byte, error) {
	u := r.Path
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = c.baseURL + u
	}
	if len(r.Query) > 0 {
		sep := "?"
		if strings.Contains(u, "?") {
			sep = "&"
		}
		u += sep + r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, u, body)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", c.service, err)
	}
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if r.ContentType != "" {
		req.Header.Set("Content-Type", r.ContentType)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s http: %w", c.service, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusTooManyRequests && retry {
		// backoff básico leyendo Retry-After (segundos), un solo reintento
		if ra := res.Header.Get("Retry-After"); ra != "" {
			if sec, _ := strconv.Atoi(ra); sec > 0 {
				select {
				case <-time.After(time.Duration(sec) * time.Second):
				case <-ctx.Done():
					return nil, ctx.Err()
				}
				return c.do(ctx, r, false)
			}
		}
	}

	if res.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return nil, &APIError{Service: c.service, Status: res.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	b, err := io.ReadAll(io.LimitReader(res.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("%s read: %w", c.service, err)
	}
	return b, nil
}
