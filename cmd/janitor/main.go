package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"

	"github.com/jose-valero/kino-bot/internal/app/service"
	"github.com/jose-valero/kino-bot/internal/infra/config"
	"github.com/jose-valero/kino-bot/internal/infra/storage"
)

const defaultRetentionDays = 30

// retention lee AFK_RETENTION_DAYS (días); vacío = 30, 0 = no borrar nada.
func retention() (time.Duration, error) {
	v := os.Getenv("AFK_RETENTION_DAYS")
	if v == "" {
		return defaultRetentionDays * 24 * time.Hour, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("AFK_RETENTION_DAYS: %w", err)
	}
	return time.Duration(n) * 24 * time.Hour, nil
}

// handler corre con el schedule de EventBridge; borra AFK viejos.
func handler(ctx context.Context, evt events.CloudWatchEvent) (string, error) {
	dsn := os.Getenv("DATABASE_URL")
	if storage.DialectFor(dsn) != storage.Postgres {
		return "no postgres DATABASE_URL", nil
	}
	keep, err := retention()
	if err != nil {
		return "", err
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}
	cfg.MaxConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return "", fmt.Errorf("pool: %w", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// invocación manual: el evento viene sin time
	now := evt.Time
	if now.IsZero() {
		now = time.Now()
	}
	n, err := service.Prune(cctx, storage.NewAFKRepo(db, storage.Postgres), now, keep)
	if err != nil {
		return "", fmt.Errorf("prune: %w", err)
	}
	log.Info().Int64("deleted", n).Dur("retention", keep).Str("event", evt.ID).Msg("afk prune")
	return fmt.Sprintf("ok: %d afk entries pruned", n), nil
}

func main() {
	config.InitLogger(os.Getenv("LOG_LEVEL"), "json")
	lambda.Start(handler)
}
