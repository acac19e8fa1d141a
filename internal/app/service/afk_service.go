package service

import (
	"context"
	"errors"
	"time"

	"github.com/jose-valero/kino-bot/internal/infra/storage"
)

type AFKService struct {
	store AFKStore
}

func NewAFKService(store AFKStore) *AFKService { return &AFKService{store: store} }

// Toggle: si ya estaba AFK lo saca, si no lo marca con msg.
// Devuelve true cuando quedó AFK.
func (s *AFKService) Toggle(ctx context.Context, userID, msg string) (bool, error) {
	_, err := s.store.Get(ctx, userID)
	switch {
	case err == nil:
		if _, err := s.store.Delete(ctx, userID); err != nil {
			return false, err
		}
		return false, nil
	case errors.Is(err, storage.ErrNotFound):
		if err := s.store.Set(ctx, userID, msg); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

// AFKActivity es lo que el listener de mensajes tiene que anunciar.
type AFKActivity struct {
	// Returned: el autor estaba AFK y se le quitó el estado.
	Returned bool
	// Mentioned: usuarios mencionados que siguen AFK, en orden de mención.
	Mentioned []storage.AFKEntry
}

func (a AFKActivity) Empty() bool { return !a.Returned && len(a.Mentioned) == 0 }

// OnMessage procesa un mensaje nuevo: el autor vuelve, los mencionados avisan.
func (s *AFKService) OnMessage(ctx context.Context, authorID string, mentionIDs []string) (AFKActivity, error) {
	var out AFKActivity

	removed, err := s.store.Delete(ctx, authorID)
	if err != nil {
		return out, err
	}
	out.Returned = removed

	ids := make([]string, 0, len(mentionIDs))
	seen := map[string]bool{authorID: true}
	for _, id := range mentionIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return out, nil
	}

	afk, err := s.store.GetMany(ctx, ids)
	if err != nil {
		return out, err
	}
	for _, id := range ids {
		if e, ok := afk[id]; ok {
			out.Mentioned = append(out.Mentioned, e)
		}
	}
	return out, nil
}

// Prune borra entradas más viejas que retention. Lo usa el janitor.
func Prune(ctx context.Context, p AFKPruner, now time.Time, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}
	return p.PruneOlderThan(ctx, now.Add(-retention))
}
