package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	pq "github.com/lib/pq"
)

// ChannelGame: qué partida se está jugando en un canal. Sólo ids, nunca el estado del juego.
type ChannelGame struct {
	GuildID   string
	ChannelID string
	GameID    string
	Players   []string // nombres como los escribió el usuario, en orden
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ChannelGamesRepo struct{ db *sql.DB }

func NewChannelGamesRepo(db *sql.DB) *ChannelGamesRepo { return &ChannelGamesRepo{db: db} }

func (r *ChannelGamesRepo) Get(ctx context.Context, guildID, channelID string) (ChannelGame, error) {
	var cg ChannelGame
	err := r.db.QueryRowContext(ctx, `
SELECT guild_id, channel_id, game_id, players, created_by, created_at, updated_at
  FROM channel_games
 WHERE guild_id = $1 AND channel_id = $2
`, guildID, channelID).Scan(&cg.GuildID, &cg.ChannelID, &cg.GameID, pq.Array(&cg.Players), &cg.CreatedBy, &cg.CreatedAt, &cg.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ChannelGame{}, ErrNotFound
	}
	return cg, err
}

// Bind reemplaza la partida del canal (una sola por canal).
func (r *ChannelGamesRepo) Bind(ctx context.Context, cg ChannelGame) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO channel_games (guild_id, channel_id, game_id, players, created_by)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (guild_id, channel_id) DO UPDATE SET
  game_id    = EXCLUDED.game_id,
  players    = EXCLUDED.players,
  created_by = EXCLUDED.created_by,
  created_at = now(),
  updated_at = now()
`, cg.GuildID, cg.ChannelID, cg.GameID, pq.Array(players(cg.Players)), cg.CreatedBy)
	return err
}

// players: nil iría como NULL y la columna es NOT NULL.
func players(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}

// Touch marca actividad para que el janitor no la limpie.
func (r *ChannelGamesRepo) Touch(ctx context.Context, guildID, channelID string) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE channel_games SET updated_at = now() WHERE guild_id = $1 AND channel_id = $2
`, guildID, channelID)
	return err
}

func (r *ChannelGamesRepo) Unbind(ctx context.Context, guildID, channelID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM channel_games WHERE guild_id = $1 AND channel_id = $2
`, guildID, channelID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *ChannelGamesRepo) PruneStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM channel_games WHERE updated_at < $1
`, time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
