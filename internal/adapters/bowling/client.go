package bowling

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// CreateGame: POST {endpoint} con la lista de nombres tal cual.
func (c *Client) CreateGame(ctx context.Context, playerNames []string) (GameResource, error) {
	if playerNames == nil {
		playerNames = []string{}
	}
	b, err := c.do(ctx, "create_game", http.MethodPost, "", playerNames)
	if err != nil {
		return nil, err
	}
	g, err := decodeResource(b)
	if err != nil {
		return nil, fmt.Errorf("bowling create_game: decode: %w", err)
	}
	return g, nil
}

// GetGame: GET {endpoint}/{gameID}. gameID va al path sin escapar.
func (c *Client) GetGame(ctx context.Context, gameID string) (GameResource, error) {
	b, err := c.do(ctx, "get_game", http.MethodGet, "/"+gameID, nil)
	if err != nil {
		return nil, err
	}
	g, err := decodeResource(b)
	if err != nil {
		return nil, fmt.Errorf("bowling get_game: decode: %w", err)
	}
	return g, nil
}

// RollBall: POST {endpoint}/{gameID}/roll con {playerId, pins}.
// Ojo: si el 2xx viene vacío, no es JSON o no se pudo leer devolvemos (nil, nil), no error.
// Hay tiradas que el backend confirma sin body.
func (c *Client) RollBall(ctx context.Context, gameID, playerID string, pins int) (RollResult, error) {
	b, err := c.do(ctx, "roll_ball", http.MethodPost, "/"+gameID+"/roll", rollDTO{PlayerID: playerID, Pins: pins})
	if errors.Is(err, errReadBody) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r, err := decodeResource(b)
	if err != nil {
		return nil, nil
	}
	return r, nil
}
