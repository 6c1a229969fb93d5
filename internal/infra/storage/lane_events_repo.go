package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type LaneEvent struct {
	ID            int64
	DedupKey      string
	GameID        string
	PlayerID      string
	Pins          int
	Payload       string
	BackendStatus *int
	ReceivedAt    time.Time
}

type LaneEventsRepo struct{ db *sql.DB }

func NewLaneEventsRepo(db *sql.DB) *LaneEventsRepo { return &LaneEventsRepo{db: db} }

// inflightGrace: un evento sin backend_status se considera en curso hasta que pasa esto.
const inflightGrace = time.Minute

// Record inserta el evento y lo deja "en curso". inserted=false sólo si el dedup_key
// ya se reenvió con 2xx o lo está reenviando otro request. Si el intento anterior
// falló (status fuera de 2xx o 0) o quedó colgado, la fila se reusa y hay que reenviar.
func (r *LaneEventsRepo) Record(ctx context.Context, ev LaneEvent) (int64, bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
INSERT INTO lane_events (dedup_key, game_id, player_id, pins, payload)
VALUES ($1,$2,$3,$4,$5::jsonb)
ON CONFLICT (dedup_key) DO UPDATE SET
  game_id        = EXCLUDED.game_id,
  player_id      = EXCLUDED.player_id,
  pins           = EXCLUDED.pins,
  payload        = EXCLUDED.payload,
  backend_status = NULL,
  forwarded_at   = NULL,
  received_at    = now()
WHERE lane_events.backend_status NOT BETWEEN 200 AND 299
   OR (lane_events.backend_status IS NULL AND lane_events.received_at < now() - $6::int * interval '1 second')
RETURNING id
`, ev.DedupKey, ev.GameID, ev.PlayerID, ev.Pins, nullIfEmpty(ev.Payload), int(inflightGrace.Seconds())).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// MarkForwarded guarda qué respondió el backend (0 = no llegó).
func (r *LaneEventsRepo) MarkForwarded(ctx context.Context, id int64, status int) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE lane_events SET backend_status = $2, forwarded_at = now() WHERE id = $1
`, id, status)
	return err
}

func (r *LaneEventsRepo) PruneBefore(ctx context.Context, t time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lane_events WHERE received_at < $1`, t)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
