package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jose-valero/kino-bot/internal/domain"
)

const (
	// PopularPlaceholder es el value de la opción "Popular Movies Right Now".
	PopularPlaceholder = "0"
	PopularLabel       = "Popular Movies Right Now"

	posterBase = "https://image.tmdb.org/t/p/w500"
	watchBase  = "https://movie-web.app/media/tmdb-movie-"
	popularTTL = 10 * time.Minute
)

// genres de TMDB, en el orden en que se listan.
var genres = []struct {
	Name string
	ID   int
}{
	{"Action", 28},
	{"Adventure", 12},
	{"Animation", 16},
	{"Comedy", 35},
	{"Crime", 80},
	{"Documentary", 99},
	{"Drama", 18},
	{"Family", 10751},
	{"Fantasy", 14},
	{"History", 36},
	{"Horror", 27},
	{"Music", 10402},
	{"Mystery", 9648},
	{"Romance", 10749},
	{"Science Fiction", 878},
	{"TV Movie", 10770},
	{"Thriller", 53},
	{"War", 10752},
	{"Western", 37},
}

type MovieCard struct {
	ID        int
	Title     string
	Overview  string
	PosterURL string
	WatchURL  string
	Genres    []string
	Vote      float64
	VoteCount int
}

// VoteLabel: "7.5 (1234)".
func (c MovieCard) VoteLabel() string {
	return fmt.Sprintf("%s (%d)", strconv.FormatFloat(c.Vote, 'f', 1, 64), c.VoteCount)
}

func (c MovieCard) GenreLabel() string {
	if len(c.Genres) == 0 {
		return "N/A"
	}
	return strings.Join(c.Genres, ", ")
}

type MovieService struct {
	api MovieAPI
	now func() time.Time

	sf      singleflight.Group
	mu      sync.Mutex
	popular []domain.Movie
	fetched time.Time
}

func NewMovieService(api MovieAPI) *MovieService {
	return &MovieService{api: api, now: time.Now}
}

// Watch busca por título y arma la tarjeta con el primer resultado.
func (s *MovieService) Watch(ctx context.Context, query string, includeAdult bool) (MovieCard, error) {
	query = strings.TrimSpace(query)
	if query == PopularPlaceholder {
		return MovieCard{}, ErrPlaceholder
	}
	if query == "" {
		return MovieCard{}, ErrNoResults
	}

	res, err := s.api.SearchMovies(ctx, query, includeAdult)
	if err != nil {
		return MovieCard{}, err
	}
	if len(res) == 0 {
		return MovieCard{}, ErrNoResults
	}
	return toCard(res[0]), nil
}

// Popular: discover cacheado popularTTL; llamadas concurrentes comparten el fetch.
func (s *MovieService) Popular(ctx context.Context) ([]domain.Movie, error) {
	s.mu.Lock()
	if s.popular != nil && s.now().Sub(s.fetched) < popularTTL {
		out := s.popular
		s.mu.Unlock()
		return out, nil
	}
	s.mu.Unlock()

	v, err, _ := s.sf.Do("popular", func() (any, error) {
		res, err := s.api.PopularMovies(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.popular, s.fetched = res, s.now()
		s.mu.Unlock()
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Movie), nil
}

// Suggest devuelve títulos populares para el autocomplete, filtrados por lo
// que el usuario lleva escrito. Como mucho limit.
func (s *MovieService) Suggest(ctx context.Context, typed string, limit int) ([]string, error) {
	movies, err := s.Popular(ctx)
	if err != nil {
		return nil, err
	}
	typed = strings.ToLower(strings.TrimSpace(typed))
	out := make([]string, 0, len(movies))
	for _, m := range movies {
		if len(out) == limit {
			break
		}
		if typed != "" && !strings.Contains(strings.ToLower(m.Title), typed) {
			continue
		}
		out = append(out, m.Title)
	}
	return out, nil
}

func toCard(m domain.Movie) MovieCard {
	c := MovieCard{
		ID:        m.ID,
		Title:     m.Title,
		Overview:  m.Overview,
		WatchURL:  WatchURL(m.ID, m.Title),
		Genres:    GenreNames(m.GenreIDs),
		Vote:      RoundHalf(m.VoteAverage),
		VoteCount: m.VoteCount,
	}
	if m.PosterPath != "" {
		c.PosterURL = posterBase + m.PosterPath
	}
	return c
}

func WatchURL(id int, title string) string {
	slug := strings.ToLower(strings.ReplaceAll(title, " ", "-"))
	return fmt.Sprintf("%s%d-%s", watchBase, id, slug)
}

func GenreNames(ids []int) []string {
	has := make(map[int]bool, len(ids))
	for _, id := range ids {
		has[id] = true
	}
	var out []string
	for _, g := range genres {
		if has[g.ID] {
			out = append(out, g.Name)
		}
	}
	return out
}

// RoundHalf redondea al 0.5 más cercano (empates al par, 7.25 -> 7.0).
func RoundHalf(v float64) float64 {
	return math.RoundToEven(v*2) / 2
}
