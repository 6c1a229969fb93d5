package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/jose-valero/bowling-bot/internal/infra/storage"
)

const (
	staleChannelGames = 30 * 24 * time.Hour
	keepLaneEvents    = 7 * 24 * time.Hour
)

func handler(ctx context.Context) (string, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return "no DATABASE_URL", nil
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Sprintf("parse: %v", err), nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return fmt.Sprintf("pool: %v", err), nil
	}
	defer pool.Close()
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	games, err := storage.NewChannelGamesRepo(db).PruneStale(cctx, staleChannelGames)
	if err != nil {
		fmt.Println("prune channel_games:", err)
	}
	events, err := storage.NewLaneEventsRepo(db).PruneBefore(cctx, time.Now().Add(-keepLaneEvents))
	if err != nil {
		fmt.Println("prune lane_events:", err)
	}

	return fmt.Sprintf("ok channel_games=%d lane_events=%d", games, events), nil
}

func main() { lambda.Start(handler) }
