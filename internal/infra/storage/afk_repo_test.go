package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T, dialect Dialect) (*AFKRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewAFKRepo(db, dialect), mock
}

func TestAFKRepo_Get(t *testing.T) {
	ctx := context.Background()
	setAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    AFKEntry
		wantErr error
	}{
		{
			name: "found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT user_id, message, set_at\s+FROM afk`).
					WithArgs("42").
					WillReturnRows(sqlmock.NewRows([]string{"user_id", "message", "set_at"}).
						AddRow("42", "lunch", setAt))
			},
			want: AFKEntry{UserID: "42", Message: "lunch", SetAt: setAt},
		},
		{
			name: "absent maps to ErrNotFound",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM afk`).WithArgs("42").WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "db error passes through",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM afk`).WithArgs("42").WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t, SQLite)
			tt.mock(mock)

			got, err := repo.Get(ctx, "42")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAFKRepo_Set_Upserts(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	repo, mock := newMockRepo(t, SQLite)
	repo.now = func() time.Time { return now }

	mock.ExpectExec(`INSERT INTO afk .* ON CONFLICT \(user_id\) DO UPDATE`).
		WithArgs("42", "brb", now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Set(context.Background(), "42", "brb"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAFKRepo_Delete(t *testing.T) {
	repo, mock := newMockRepo(t, SQLite)
	mock.ExpectExec(`DELETE FROM afk`).WithArgs("42").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM afk`).WithArgs("43").WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(context.Background(), "42")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(context.Background(), "43")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAFKRepo_GetMany(t *testing.T) {
	setAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"user_id", "message", "set_at"}).AddRow("2", "away", setAt)
	}

	t.Run("empty input skips the query", func(t *testing.T) {
		repo, mock := newMockRepo(t, SQLite)
		got, err := repo.GetMany(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sqlite uses IN list", func(t *testing.T) {
		repo, mock := newMockRepo(t, SQLite)
		mock.ExpectQuery(`WHERE user_id IN \(\?,\?,\?\)`).
			WithArgs("1", "2", "3").
			WillReturnRows(rows())

		got, err := repo.GetMany(context.Background(), []string{"1", "2", "3"})
		require.NoError(t, err)
		assert.Equal(t, map[string]AFKEntry{"2": {UserID: "2", Message: "away", SetAt: setAt}}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("postgres uses ANY array", func(t *testing.T) {
		repo, mock := newMockRepo(t, Postgres)
		mock.ExpectQuery(`WHERE user_id = ANY\(\$1\)`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(rows())

		got, err := repo.GetMany(context.Background(), []string{"1", "2"})
		require.NoError(t, err)
		assert.Contains(t, got, "2")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAFKRepo_PruneOlderThan(t *testing.T) {
	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo, mock := newMockRepo(t, Postgres)
	mock.ExpectExec(`DELETE FROM afk\s+WHERE set_at < \$1`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.PruneOlderThan(context.Background(), cutoff)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRebind(t *testing.T) {
	pg := &AFKRepo{dialect: Postgres}
	assert.Equal(t, "a = $1 AND b = $2", pg.q("a = ? AND b = ?"))

	lite := &AFKRepo{dialect: SQLite}
	assert.Equal(t, "a = ?", lite.q("a = ?"))
}

func TestDialectFor(t *testing.T) {
	assert.Equal(t, Postgres, DialectFor("postgres://u:p@localhost/db"))
	assert.Equal(t, Postgres, DialectFor("PostgreSQL://host/db"))
	assert.Equal(t, SQLite, DialectFor("kino.db"))
	assert.Equal(t, SQLite, DialectFor("file:kino.db?_pragma=busy_timeout(5000)"))
}
