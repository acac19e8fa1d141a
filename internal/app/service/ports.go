package service

import (
	"context"
	"errors"
	"time"

	"github.com/jose-valero/kino-bot/internal/domain"
	"github.com/jose-valero/kino-bot/internal/infra/storage"
)

var (
	// ErrNoResults: la API respondió bien pero sin nada útil.
	ErrNoResults     = errors.New("no results")
	ErrTrackNotFound = errors.New("track not found")
	ErrNotListening  = errors.New("not listening to spotify")
	ErrPlaceholder   = errors.New("placeholder option selected")
	ErrUnknownSign   = errors.New("unknown zodiac sign")
)

// Lo implementa internal/adapters/tmdb.Client
type MovieAPI interface {
	SearchMovies(ctx context.Context, query string, includeAdult bool) ([]domain.Movie, error)
	PopularMovies(ctx context.Context) ([]domain.Movie, error)
}

// Lo implementa internal/adapters/ttsmp3.Client
type TTSAPI interface {
	Synthesize(ctx context.Context, text, voice string) (string, error)
	Download(ctx context.Context, audioURL string) ([]byte, error)
}

// Lo implementa internal/adapters/horoscope.Client
type HoroscopeAPI interface {
	Daily(ctx context.Context, sign string) (domain.Horoscope, error)
}

// Lo implementa internal/adapters/colormind.Client
type PaletteAPI interface {
	Palette(ctx context.Context) (domain.Palette, error)
}

// Lo implementa internal/adapters/statsfm.Client
type ListenerAPI interface {
	SearchTracks(ctx context.Context, query string) ([]domain.TrackHit, error)
	TopListeners(ctx context.Context, trackID int) ([]domain.Listener, error)
}

// Lo implementa internal/adapters/cardui.Client
type CardRenderer interface {
	Welcome(ctx context.Context, card domain.WelcomeCard) ([]byte, error)
}

// Lo implementa internal/infra/storage.AFKRepo
type AFKStore interface {
	Get(ctx context.Context, userID string) (storage.AFKEntry, error)
	Set(ctx context.Context, userID, message string) error
	Delete(ctx context.Context, userID string) (bool, error)
	GetMany(ctx context.Context, userIDs []string) (map[string]storage.AFKEntry, error)
}

// Lo implementa internal/infra/storage.AFKRepo (janitor)
type AFKPruner interface {
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
