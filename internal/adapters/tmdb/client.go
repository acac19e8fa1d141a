package tmdb

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jose-valero/kino-bot/internal/adapters/httpx"
	"github.com/jose-valero/kino-bot/internal/domain"
)

const defaultBase = "https://api.themoviedb.org/3"

type Client struct{ c *httpx.Client }

func New(apiKey string, opts ...httpx.Option) *Client {
	opts = append([]httpx.Option{httpx.WithBearer(apiKey)}, opts...)
	return &Client{c: httpx.New("tmdb", defaultBase, opts...)}
}

type movieDTO struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	GenreIDs    []int   `json:"genre_ids"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

type listDTO struct {
	Results []movieDTO `json:"results"`
}

func (c *Client) SearchMovies(ctx context.Context, query string, includeAdult bool) ([]domain.Movie, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("language", "en-US")
	q.Set("include_adult", strconv.FormatBool(includeAdult))

	var dto listDTO
	if err := c.c.GetJSON(ctx, "/search/movie", q, &dto); err != nil {
		return nil, err
	}
	return toMovies(dto.Results), nil
}

// PopularMovies: /discover ordenado por popularidad, primera página.
func (c *Client) PopularMovies(ctx context.Context) ([]domain.Movie, error) {
	q := url.Values{}
	q.Set("language", "en-US")
	q.Set("page", "1")
	q.Set("sort_by", "popularity.desc")

	var dto listDTO
	if err := c.c.GetJSON(ctx, "/discover/movie", q, &dto); err != nil {
		return nil, err
	}
	return toMovies(dto.Results), nil
}

func toMovies(in []movieDTO) []domain.Movie {
	out := make([]domain.Movie, 0, len(in))
	for _, m := range in {
		out = append(out, domain.Movie{
			ID:          m.ID,
			Title:       m.Title,
			Overview:    m.Overview,
			PosterPath:  m.PosterPath,
			GenreIDs:    m.GenreIDs,
			VoteAverage: m.VoteAverage,
			VoteCount:   m.VoteCount,
		})
	}
	return out
}
