package storage

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	pq "github.com/lib/pq"
)

var ErrNotFound = errors.New("not found")

type AFKEntry struct {
	UserID  string
	Message string
	SetAt   time.Time
}

type AFKRepo struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

func NewAFKRepo(db *sql.DB, dialect Dialect) *AFKRepo {
	return &AFKRepo{db: db, dialect: dialect, now: time.Now}
}

func (r *AFKRepo) Get(ctx context.Context, userID string) (AFKEntry, error) {
	var e AFKEntry
	err := r.db.QueryRowContext(ctx, r.q(`
SELECT user_id, message, set_at
  FROM afk
 WHERE user_id = ?
`), userID).Scan(&e.UserID, &e.Message, &e.SetAt)
	if errors.Is(err, sql.ErrNoRows) {
		return AFKEntry{}, ErrNotFound
	}
	return e, err
}

// Set: upsert, pisa el mensaje y reinicia set_at.
func (r *AFKRepo) Set(ctx context.Context, userID, message string) error {
	_, err := r.db.ExecContext(ctx, r.q(`
INSERT INTO afk (user_id, message, set_at)
VALUES (?, ?, ?)
ON CONFLICT (user_id) DO UPDATE SET
  message = EXCLUDED.message,
  set_at  = EXCLUDED.set_at
`), userID, message, r.now().UTC())
	return err
}

func (r *AFKRepo) Delete(ctx context.Context, userID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.q(`
DELETE FROM afk
 WHERE user_id = ?
`), userID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// GetMany: devuelve mapa user_id -> entry sólo para los que están AFK.
func (r *AFKRepo) GetMany(ctx context.Context, userIDs []string) (map[string]AFKEntry, error) {
	out := map[string]AFKEntry{}
	if len(userIDs) == 0 {
		return out, nil
	}

	var (
		rows *sql.Rows
		err  error
	)
	if r.dialect == Postgres {
		rows, err = r.db.QueryContext(ctx, `
SELECT user_id, message, set_at
  FROM afk
 WHERE user_id = ANY($1)
`, pq.Array(userIDs))
	} else {
		marks := strings.TrimSuffix(strings.Repeat("?,", len(userIDs)), ",")
		args := make([]any, len(userIDs))
		for i, id := range userIDs {
			args[i] = id
		}
		rows, err = r.db.QueryContext(ctx, `
SELECT user_id, message, set_at
  FROM afk
 WHERE user_id IN (`+marks+`)
`, args...)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e AFKEntry
		if err := rows.Scan(&e.UserID, &e.Message, &e.SetAt); err != nil {
			return nil, err
		}
		out[e.UserID] = e
	}
	return out, rows.Err()
}

// PruneOlderThan borra los AFK seteados antes de cutoff.
func (r *AFKRepo) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.q(`
DELETE FROM afk
 WHERE set_at < ?
`), cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// q pasa los "?" a $n para postgres (pgx no acepta "?").
func (r *AFKRepo) q(query string) string {
	if r.dialect != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}
