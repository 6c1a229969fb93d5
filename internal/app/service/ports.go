package service

import (
	"context"

	"github.com/jose-valero/bowling-bot/internal/adapters/bowling"
	"github.com/jose-valero/bowling-bot/internal/infra/storage"
)

// Lo implementa internal/adapters/bowling.Client
type BowlingAPI interface {
	CreateGame(ctx context.Context, playerNames []string) (bowling.GameResource, error)
	GetGame(ctx context.Context, gameID string) (bowling.GameResource, error)
	RollBall(ctx context.Context, gameID, playerID string, pins int) (bowling.RollResult, error)
}

// Lo implementa internal/infra/storage.ChannelGamesRepo
type ChannelGames interface {
	Get(ctx context.Context, guildID, channelID string) (storage.ChannelGame, error)
	Bind(ctx context.Context, cg storage.ChannelGame) error
	Touch(ctx context.Context, guildID, channelID string) error
	Unbind(ctx context.Context, guildID, channelID string) (bool, error)
}

// Lo implementa internal/infra/storage.LaneEventsRepo.
// Record devuelve inserted=false sólo para eventos ya reenviados con 2xx (o en curso);
// uno que falló vuelve a salir con inserted=true.
type LaneEvents interface {
	Record(ctx context.Context, ev storage.LaneEvent) (int64, bool, error)
	MarkForwarded(ctx context.Context, id int64, status int) error
}
