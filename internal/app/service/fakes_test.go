package service_test

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jose-valero/kino-bot/internal/domain"
	"github.com/jose-valero/kino-bot/internal/infra/storage"
)

type fakeAFK struct {
	entries map[string]storage.AFKEntry
	err     error
}

func newFakeAFK(entries ...storage.AFKEntry) *fakeAFK {
	f := &fakeAFK{entries: map[string]storage.AFKEntry{}}
	for _, e := range entries {
		f.entries[e.UserID] = e
	}
	return f
}

func (f *fakeAFK) Get(_ context.Context, id string) (storage.AFKEntry, error) {
	if f.err != nil {
		return storage.AFKEntry{}, f.err
	}
	e, ok := f.entries[id]
	if !ok {
		return storage.AFKEntry{}, storage.ErrNotFound
	}
	return e, nil
}

func (f *fakeAFK) Set(_ context.Context, id, msg string) error {
	if f.err != nil {
		return f.err
	}
	f.entries[id] = storage.AFKEntry{UserID: id, Message: msg, SetAt: time.Now()}
	return nil
}

func (f *fakeAFK) Delete(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.entries[id]
	delete(f.entries, id)
	return ok, nil
}

func (f *fakeAFK) GetMany(_ context.Context, ids []string) (map[string]storage.AFKEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := map[string]storage.AFKEntry{}
	for _, id := range ids {
		if e, ok := f.entries[id]; ok {
			out[id] = e
		}
	}
	return out, nil
}

type fakeMovies struct {
	search       []domain.Movie
	popular      []domain.Movie
	err          error
	popularCalls int32
	lastQuery    string
	lastAdult    bool
}

func (f *fakeMovies) SearchMovies(_ context.Context, q string, adult bool) ([]domain.Movie, error) {
	f.lastQuery, f.lastAdult = q, adult
	return f.search, f.err
}

func (f *fakeMovies) PopularMovies(context.Context) ([]domain.Movie, error) {
	atomic.AddInt32(&f.popularCalls, 1)
	return f.popular, f.err
}

type fakeTTS struct {
	voice string
	url   string
	audio []byte
	err   error
}

func (f *fakeTTS) Synthesize(_ context.Context, _, voice string) (string, error) {
	f.voice = voice
	return f.url, f.err
}

func (f *fakeTTS) Download(_ context.Context, u string) ([]byte, error) {
	if u != f.url {
		return nil, storage.ErrNotFound
	}
	return f.audio, nil
}

type fakeHoroscope struct {
	h   domain.Horoscope
	err error
}

func (f *fakeHoroscope) Daily(_ context.Context, sign string) (domain.Horoscope, error) {
	h := f.h
	h.Sign = sign
	return h, f.err
}

type fakePalette struct {
	p   domain.Palette
	err error
}

func (f *fakePalette) Palette(context.Context) (domain.Palette, error) { return f.p, f.err }

type fakeListeners struct {
	hits      []domain.TrackHit
	listeners map[int][]domain.Listener
	err       error
	query     string
}

func (f *fakeListeners) SearchTracks(_ context.Context, q string) ([]domain.TrackHit, error) {
	f.query = q
	return f.hits, f.err
}

func (f *fakeListeners) TopListeners(_ context.Context, id int) ([]domain.Listener, error) {
	return f.listeners[id], nil
}

type fakeCards struct {
	got domain.WelcomeCard
	png []byte
	err error
}

func (f *fakeCards) Welcome(_ context.Context, c domain.WelcomeCard) ([]byte, error) {
	f.got = c
	return f.png, f.err
}

type fakePruner struct {
	cutoff time.Time
	n      int64
}

func (f *fakePruner) PruneOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return f.n, nil
}
