package service

import (
	"context"
	"sync"

	"github.com/jose-valero/bowling-bot/internal/adapters/bowling"
	"github.com/jose-valero/bowling-bot/internal/infra/storage"
)

type rollCall struct {
	gameID, playerID string
	pins             int
}

type fakeAPI struct {
	mu      sync.Mutex
	created [][]string
	fetched []string
	rolls   []rollCall

	game    *bowling.Resource
	roll    *bowling.Resource
	err     error
	rollErr error
}

func (f *fakeAPI) CreateGame(_ context.Context, names []string) (bowling.GameResource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, names)
	return f.game, f.err
}

func (f *fakeAPI) GetGame(_ context.Context, id string) (bowling.GameResource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, id)
	return f.game, f.err
}

func (f *fakeAPI) RollBall(_ context.Context, gameID, playerID string, pins int) (bowling.RollResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rolls = append(f.rolls, rollCall{gameID, playerID, pins})
	if f.rollErr != nil {
		return nil, f.rollErr
	}
	return f.roll, nil
}

type fakeChannels struct {
	rows     map[string]storage.ChannelGame
	touched  int
	touchErr error
	err      error
}

func newFakeChannels() *fakeChannels { return &fakeChannels{rows: map[string]storage.ChannelGame{}} }

func (f *fakeChannels) Get(_ context.Context, g, c string) (storage.ChannelGame, error) {
	if f.err != nil {
		return storage.ChannelGame{}, f.err
	}
	cg, ok := f.rows[g+"/"+c]
	if !ok {
		return storage.ChannelGame{}, storage.ErrNotFound
	}
	return cg, nil
}

func (f *fakeChannels) Bind(_ context.Context, cg storage.ChannelGame) error {
	if f.err != nil {
		return f.err
	}
	f.rows[cg.GuildID+"/"+cg.ChannelID] = cg
	return nil
}

func (f *fakeChannels) Touch(context.Context, string, string) error {
	f.touched++
	return f.touchErr
}

func (f *fakeChannels) Unbind(_ context.Context, g, c string) (bool, error) {
	_, ok := f.rows[g+"/"+c]
	delete(f.rows, g+"/"+c)
	return ok, nil
}

type fakeEvents struct {
	keys      map[string]int64
	forwarded map[int64]int
	err       error
}

func newFakeEvents() *fakeEvents {
	return &fakeEvents{keys: map[string]int64{}, forwarded: map[int64]int{}}
}

func (f *fakeEvents) Record(_ context.Context, ev storage.LaneEvent) (int64, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	if id, ok := f.keys[ev.DedupKey]; ok {
		status, done := f.forwarded[id]
		if done && (status < 200 || status > 299) {
			delete(f.forwarded, id)
			return id, true, nil
		}
		return 0, false, nil
	}
	id := int64(len(f.keys) + 1)
	f.keys[ev.DedupKey] = id
	return id, true, nil
}

func (f *fakeEvents) MarkForwarded(_ context.Context, id int64, status int) error {
	f.forwarded[id] = status
	return nil
}

func bindingFor(gameID string) storage.ChannelGame {
	return storage.ChannelGame{GuildID: "guild", ChannelID: "chan", GameID: gameID}
}
