package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/jose-valero/bowling-bot/internal/adapters/bowling"
	"github.com/jose-valero/bowling-bot/internal/infra/metrics"
	"github.com/jose-valero/bowling-bot/internal/infra/storage"
)

var ErrBadLaneEvent = errors.New("bad lane event")

// laneEventDTO es lo que manda el pinsetter de la pista.
type laneEventDTO struct {
	EventID  string `json:"event_id"`
	Lane     string `json:"lane"`
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Pins     *int   `json:"pins"`
}

type LaneResult struct {
	Duplicate bool
	Result    bowling.RollResult // nil si el backend no devolvió body
}

// LaneService reenvía al backend las tiradas que reportan las pistas.
// events puede ser nil (sin DB): entonces no hay dedup.
type LaneService struct {
	api    BowlingAPI
	events LaneEvents
}

func NewLaneService(api BowlingAPI, events LaneEvents) *LaneService {
	return &LaneService{api: api, events: events}
}

func (s *LaneService) Handle(ctx context.Context, body []byte) (LaneResult, error) {
	var dto laneEventDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		metrics.LaneEvents.WithLabelValues("rejected").Inc()
		return LaneResult{}, fmt.Errorf("%w: %v", ErrBadLaneEvent, err)
	}
	gameID := strings.TrimSpace(dto.GameID)
	playerID := strings.TrimSpace(dto.PlayerID)
	if gameID == "" || playerID == "" || dto.Pins == nil {
		metrics.LaneEvents.WithLabelValues("rejected").Inc()
		return LaneResult{}, fmt.Errorf("%w: game_id, player_id y pins son obligatorios", ErrBadLaneEvent)
	}

	var eventID int64
	if s.events != nil {
		id, inserted, err := s.events.Record(ctx, storage.LaneEvent{
			DedupKey: dedupKey(dto.EventID, body),
			GameID:   gameID,
			PlayerID: playerID,
			Pins:     *dto.Pins,
			Payload:  string(body),
		})
		if err != nil {
			// sin registro no hay dedup; igual reenviamos
			log.Printf("[lane] record: %v", err)
		} else if !inserted {
			metrics.LaneEvents.WithLabelValues("duplicate").Inc()
			log.Printf("[lane] duplicado lane=%s game=%s player=%s", dto.Lane, gameID, playerID)
			return LaneResult{Duplicate: true}, nil
		}
		eventID = id
	}

	r, err := s.api.RollBall(ctx, gameID, playerID, *dto.Pins)
	status := http.StatusOK // cualquier 2xx queda como 200
	var he *bowling.HTTPError
	switch {
	case errors.As(err, &he):
		status = he.Status
		metrics.LaneEvents.WithLabelValues("backend_error").Inc()
	case err != nil:
		status = 0
		metrics.LaneEvents.WithLabelValues("transport_error").Inc()
	default:
		metrics.LaneEvents.WithLabelValues("forwarded").Inc()
	}
	if s.events != nil && eventID != 0 {
		if mErr := s.events.MarkForwarded(ctx, eventID, status); mErr != nil {
			log.Printf("[lane] mark forwarded %d: %v", eventID, mErr)
		}
	}
	log.Printf("[lane] lane=%s game=%s player=%s pins=%d status=%d", dto.Lane, gameID, playerID, *dto.Pins, status)
	if err != nil {
		return LaneResult{}, err
	}
	return LaneResult{Result: r}, nil
}

// LaneResponse traduce el resultado a status + body JSON; lo usan el server HTTP y la lambda.
func LaneResponse(res LaneResult, err error) (int, []byte) {
	out := map[string]any{"ok": err == nil}
	code := http.StatusOK

	var he *bowling.HTTPError
	switch {
	case err == nil:
		if res.Duplicate {
			out["duplicate"] = true
		} else {
			out["result"] = res.Result
		}
	case errors.Is(err, ErrBadLaneEvent):
		code = http.StatusBadRequest
		out["error"] = err.Error()
	case errors.As(err, &he):
		code = http.StatusBadGateway
		out["status"] = he.Status
		out["body"] = he.Body
	default:
		code = http.StatusBadGateway
		out["error"] = err.Error()
	}
	b, _ := json.Marshal(out)
	return code, b
}

func dedupKey(eventID string, body []byte) string {
	if id := strings.TrimSpace(eventID); id != "" {
		return "evt:" + id
	}
	sum := sha256.Sum256(body)
	return "sha:" + hex.EncodeToString(sum[:])
}
