package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/jose-valero/bowling-bot/internal/adapters/bowling"
	"github.com/jose-valero/bowling-bot/internal/infra/storage"
)

// un mensaje de Discord no pasa de 2000 caracteres
const maxPretty = 1600

var ErrNoGame = errors.New("no hay partida en este canal")

type GameService struct {
	api      BowlingAPI
	channels ChannelGames
}

func NewGameService(api BowlingAPI, channels ChannelGames) *GameService {
	return &GameService{api: api, channels: channels}
}

// NewGame crea la partida en el backend y la deja asociada al canal.
func (s *GameService) NewGame(ctx context.Context, guildID, channelID, userID, rawNames string) (string, error) {
	names := SplitNames(rawNames)
	g, err := s.api.CreateGame(ctx, names)
	if err != nil {
		return "", err
	}

	id := g.ID()
	if id == "" {
		// el backend no devolvió id reconocible: mostramos igual, sin vincular
		log.Printf("[bowling] create_game sin id: %v", g)
		return "✅ Partida creada, pero no pude leer su id:\n" + codeBlock(g), nil
	}
	if err := s.channels.Bind(ctx, storage.ChannelGame{
		GuildID:   guildID,
		ChannelID: channelID,
		GameID:    id,
		Players:   names,
		CreatedBy: userID,
	}); err != nil {
		return "", fmt.Errorf("vincular canal: %w", err)
	}
	return fmt.Sprintf("🎳 Nueva partida `%s` con **%s**.\n%s", id, strings.Join(names, ", "), codeBlock(g)), nil
}

func (s *GameService) Show(ctx context.Context, guildID, channelID, gameID string) (string, error) {
	id, err := s.Resolve(ctx, guildID, channelID, gameID)
	if err != nil {
		return "", err
	}
	g, err := s.api.GetGame(ctx, id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("🎳 Partida `%s`\n%s", id, codeBlock(g)), nil
}

func (s *GameService) Roll(ctx context.Context, guildID, channelID, gameID, playerID string, pins int) (string, error) {
	id, err := s.Resolve(ctx, guildID, channelID, gameID)
	if err != nil {
		return "", err
	}
	r, err := s.api.RollBall(ctx, id, playerID, pins)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(gameID) == "" {
		if err := s.channels.Touch(ctx, guildID, channelID); err != nil {
			log.Printf("[bowling] touch: %v", err)
		}
	}

	msg := fmt.Sprintf("✅ Tirada registrada en `%s`: **%s** derribó **%d**.", id, playerID, pins)
	if r == nil {
		return msg, nil
	}
	return msg + "\n" + codeBlock(r), nil
}

// End suelta la partida del canal; en el backend no se toca nada.
// Sólo quien la creó o un admin.
func (s *GameService) End(ctx context.Context, guildID, channelID, userID string, admin bool) (string, error) {
	cg, err := s.channels.Get(ctx, guildID, channelID)
	if errors.Is(err, storage.ErrNotFound) {
		return "ℹ️ No había partida en este canal.", nil
	}
	if err != nil {
		return "", err
	}
	if !admin && cg.CreatedBy != userID {
		return "🔒 Sólo quien creó la partida o un admin puede terminarla.", nil
	}
	if _, err := s.channels.Unbind(ctx, guildID, channelID); err != nil {
		return "", err
	}
	return "✅ Listo, el canal quedó libre. Usa `/bowl new` para otra partida.", nil
}

// Resolve: el id explícito manda; si no, la partida del canal.
func (s *GameService) Resolve(ctx context.Context, guildID, channelID, gameID string) (string, error) {
	if id := strings.TrimSpace(gameID); id != "" {
		return id, nil
	}
	cg, err := s.channels.Get(ctx, guildID, channelID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrNoGame
	}
	if err != nil {
		return "", err
	}
	return cg.GameID, nil
}

// SplitNames separa por comas y descarta vacíos; el orden se respeta.
func SplitNames(raw string) []string {
	names := []string{}
	for _, n := range strings.Split(raw, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// ErrText arma el texto para el usuario.
func ErrText(err error) string {
	var he *bowling.HTTPError
	switch {
	case errors.As(err, &he):
		body := strings.TrimSpace(he.Body)
		body = clip(body, 300, "…")
		if body == "" {
			return fmt.Sprintf("el servicio respondió %d", he.Status)
		}
		return fmt.Sprintf("el servicio respondió %d: %s", he.Status, body)
	case errors.Is(err, ErrNoGame):
		return "no hay partida en este canal. Usa `/bowl new` o pasá `game:`"
	}
	return err.Error()
}

func codeBlock(r *bowling.Resource) string {
	p := clip(r.Pretty(), maxPretty, "\n…")
	return "```json\n" + p + "\n```"
}

// clip corta a n bytes sin partir una runa y agrega tail si cortó.
func clip(s string, n int, tail string) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + tail
}
