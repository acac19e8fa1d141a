package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/kino-bot/internal/app/service"
	"github.com/jose-valero/kino-bot/internal/domain"
)

func TestMovieService_Watch(t *testing.T) {
	api := &fakeMovies{search: []domain.Movie{
		{ID: 603, Title: "The Matrix", Overview: "Neo.", PosterPath: "/m.jpg", GenreIDs: []int{878, 28}, VoteAverage: 8.22, VoteCount: 25000},
		{ID: 604, Title: "The Matrix Reloaded"},
	}}

	card, err := service.NewMovieService(api).Watch(context.Background(), "  matrix ", false)
	require.NoError(t, err)

	assert.Equal(t, "matrix", api.lastQuery)
	assert.False(t, api.lastAdult)
	assert.Equal(t, "The Matrix", card.Title)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/m.jpg", card.PosterURL)
	assert.Equal(t, "https://movie-web.app/media/tmdb-movie-603-the-matrix", card.WatchURL)
	assert.Equal(t, []string{"Action", "Science Fiction"}, card.Genres)
	assert.Equal(t, "Action, Science Fiction", card.GenreLabel())
	assert.Equal(t, "8.0 (25000)", card.VoteLabel())
}

func TestMovieService_Watch_Negative(t *testing.T) {
	ctx := context.Background()

	_, err := service.NewMovieService(&fakeMovies{}).Watch(ctx, service.PopularPlaceholder, true)
	assert.ErrorIs(t, err, service.ErrPlaceholder)

	_, err = service.NewMovieService(&fakeMovies{}).Watch(ctx, "nothing", true)
	assert.ErrorIs(t, err, service.ErrNoResults)

	boom := errors.New("tmdb down")
	_, err = service.NewMovieService(&fakeMovies{err: boom}).Watch(ctx, "x", true)
	assert.ErrorIs(t, err, boom)
}

func TestMovieCard_NoGenresNoPoster(t *testing.T) {
	api := &fakeMovies{search: []domain.Movie{{ID: 1, Title: "Odd"}}}
	card, err := service.NewMovieService(api).Watch(context.Background(), "odd", true)
	require.NoError(t, err)
	assert.Empty(t, card.PosterURL)
	assert.Equal(t, "N/A", card.GenreLabel())
}

func TestRoundHalf(t *testing.T) {
	tests := map[float64]float64{
		7.0:  7.0,
		7.2:  7.0,
		7.3:  7.5,
		7.74: 7.5,
		7.76: 8.0,
		7.25: 7.0,
		7.75: 8.0,
	}
	for in, want := range tests {
		assert.Equal(t, want, service.RoundHalf(in), "in=%v", in)
	}
}

func TestMovieService_PopularIsCached(t *testing.T) {
	api := &fakeMovies{popular: []domain.Movie{{Title: "Dune"}, {Title: "Alien"}, {Title: "Dune: Part Two"}}}
	svc := service.NewMovieService(api)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Popular(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	calls := atomic.LoadInt32(&api.popularCalls)
	assert.GreaterOrEqual(t, calls, int32(1))

	titles, err := svc.Suggest(context.Background(), "dune", 25)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dune", "Dune: Part Two"}, titles)

	titles, err = svc.Suggest(context.Background(), "", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dune", "Alien"}, titles)

	// dentro del TTL no se vuelve a pedir
	assert.Equal(t, calls, atomic.LoadInt32(&api.popularCalls))
}

func TestMovieService_PopularErrorNotCached(t *testing.T) {
	api := &fakeMovies{err: errors.New("nope")}
	svc := service.NewMovieService(api)

	_, err := svc.Popular(context.Background())
	require.Error(t, err)

	api.err = nil
	api.popular = []domain.Movie{{Title: "Heat"}}
	got, err := svc.Popular(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
