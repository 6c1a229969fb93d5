package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strconv"
	"testing"
	"time"
)

// Integration-style: sólo corre si DATABASE_URL está seteado (postgres desechable).
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}
	db, err := Open(context.Background(), url)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestChannelGamesRepoIntegration(t *testing.T) {
	db := openTestDB(t)
	repo := NewChannelGamesRepo(db)
	ctx := context.Background()
	guild := "it-" + strconv.FormatInt(time.Now().UnixNano(), 10)

	if _, err := repo.Get(ctx, guild, "c1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty = %v; want ErrNotFound", err)
	}
	if err := repo.Bind(ctx, ChannelGame{GuildID: guild, ChannelID: "c1", GameID: "g1", Players: []string{"Alice", "Bob, Jr."}, CreatedBy: "u1"}); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	cg, err := repo.Get(ctx, guild, "c1")
	if err != nil || len(cg.Players) != 2 || cg.Players[1] != "Bob, Jr." {
		t.Fatalf("Get players = %q, %v", cg.Players, err)
	}
	if err := repo.Bind(ctx, ChannelGame{GuildID: guild, ChannelID: "c1", GameID: "g2", CreatedBy: "u2"}); err != nil {
		t.Fatalf("rebind: %v", err)
	}
	cg, err = repo.Get(ctx, guild, "c1")
	if err != nil || cg.GameID != "g2" || len(cg.Players) != 0 {
		t.Fatalf("Get = %+v, %v", cg, err)
	}
	ok, err := repo.Unbind(ctx, guild, "c1")
	if err != nil || !ok {
		t.Fatalf("Unbind = %v, %v", ok, err)
	}
	if ok, _ := repo.Unbind(ctx, guild, "c1"); ok {
		t.Fatal("second Unbind should report nothing removed")
	}
}

func TestLaneEventsRepoIntegration(t *testing.T) {
	db := openTestDB(t)
	repo := NewLaneEventsRepo(db)
	ctx := context.Background()
	key := "it-" + strconv.FormatInt(time.Now().UnixNano(), 10)

	ev := LaneEvent{DedupKey: key, GameID: "g1", PlayerID: "p1", Pins: 7, Payload: `{"pins":7}`}
	id, inserted, err := repo.Record(ctx, ev)
	if err != nil || !inserted || id == 0 {
		t.Fatalf("Record = %d, %v, %v", id, inserted, err)
	}
	if _, inserted, err := repo.Record(ctx, ev); err != nil || inserted {
		t.Fatalf("duplicate Record inserted=%v err=%v", inserted, err)
	}
	if err := repo.MarkForwarded(ctx, id, 503); err != nil {
		t.Fatalf("MarkForwarded: %v", err)
	}
	again, inserted, err := repo.Record(ctx, ev)
	if err != nil || !inserted || again != id {
		t.Fatalf("Record after failure = %d, %v, %v; want same row back", again, inserted, err)
	}
	if err := repo.MarkForwarded(ctx, id, 200); err != nil {
		t.Fatalf("MarkForwarded: %v", err)
	}
	if _, inserted, err := repo.Record(ctx, ev); err != nil || inserted {
		t.Fatalf("Record after success inserted=%v err=%v", inserted, err)
	}
}
