// Package view holds the state behind the leaderboard page. A Leaderboard is
// bound to the game id of the visitor, loads the ranked players of that game
// once, and tells its subscribers whenever the players change.
//
// Loading is fail-soft: a missing game id or a failed fetch is logged, and
// the view keeps showing whatever it had before (nothing, on first load).
package view

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mww/guess_or_mess/model"
)

var (
	ErrMissingGameID error = errors.New("no game id provided")
	ErrFetchFailed   error = errors.New("error fetching top players")
)

type Fetcher interface {
	FetchLeaderboard(ctx context.Context, gameID string) ([]*model.Player, error)
}

// Logger is the diagnostic channel. Entries are meant for operators, never
// for the players looking at the page.
type Logger interface {
	Printf(format string, v ...any)
}

type State struct {
	GameID      string
	Leaderboard model.Leaderboard
}

type Leaderboard struct {
	ctx     context.Context
	cancel  context.CancelFunc
	fetcher Fetcher
	logger  Logger

	mu          sync.Mutex
	closed      bool
	bound       bool
	boundID     string
	generation  uint64
	done        chan struct{}
	pending     bool
	cancelFetch context.CancelFunc
	state       State
	subscribers map[int]func(State)
	nextSubID   int
}

func New(ctx context.Context, fetcher Fetcher, logger Logger) *Leaderboard {
	ctx, cancel := context.WithCancel(ctx)
	return &Leaderboard{
		ctx:     ctx,
		cancel:  cancel,
		fetcher: fetcher,
		logger:  logger,
		state: State{
			Leaderboard: model.Leaderboard{Players: []model.Player{}},
		},
		subscribers: make(map[int]func(State)),
	}
}

// State returns a snapshot of the current state.
func (v *Leaderboard) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot()
}

// Subscribe registers fn to be called with the new state each time the
// players change. The returned func removes the subscription.
func (v *Leaderboard) Subscribe(fn func(State)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextSubID
	v.nextSubID++
	v.subscribers[id] = fn

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.subscribers, id)
	}
}

// Bind points the view at a game. A fetch is only started when the id is
// different from the last one bound; the result of any fetch still running
// for an earlier id is thrown away. The returned channel is closed once the
// binding has settled, whether or not the fetch succeeded.
func (v *Leaderboard) Bind(gameID string) <-chan struct{} {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return closedChan()
	}

	if v.bound && v.boundID == gameID {
		return v.done
	}

	v.bound = true
	v.boundID = gameID
	v.generation++
	if v.cancelFetch != nil {
		v.cancelFetch()
		v.cancelFetch = nil
	}

	v.pending = false

	if gameID == "" {
		v.logger.Printf("%v", ErrMissingGameID)
		v.done = closedChan()
		return v.done
	}

	ctx, cancel := context.WithCancel(v.ctx)
	done := make(chan struct{})
	v.cancelFetch = cancel
	v.done = done
	v.pending = true

	go v.fetch(ctx, cancel, v.generation, gameID, done)

	return done
}

func (v *Leaderboard) fetch(ctx context.Context, cancel context.CancelFunc, generation uint64, gameID string, done chan struct{}) {
	defer close(done)
	defer cancel()

	raw, err := v.fetcher.FetchLeaderboard(ctx, gameID)

	v.mu.Lock()
	if v.closed || generation != v.generation {
		// The view was torn down or moved on to another game.
		v.mu.Unlock()
		return
	}
	v.cancelFetch = nil

	if err != nil && ctx.Err() != nil {
		// Canceled from outside before the source answered. The binding
		// stays pending and whoever canceled it reports that.
		v.mu.Unlock()
		return
	}
	v.pending = false

	if err != nil {
		v.mu.Unlock()
		v.logger.Printf("%v", fmt.Errorf("%w for game %s: %w", ErrFetchFailed, gameID, err))
		return
	}

	v.state = State{
		GameID: gameID,
		Leaderboard: model.Leaderboard{
			GameID:  gameID,
			Players: model.FilterPlayers(raw),
		},
	}
	state := v.snapshot()
	subscribers := make([]func(State), 0, len(v.subscribers))
	for _, fn := range v.subscribers {
		subscribers = append(subscribers, fn)
	}
	v.mu.Unlock()

	for _, fn := range subscribers {
		fn(state)
	}
}

// Pending reports whether the current binding is still waiting on a fetch,
// either because it is in flight or because its context ended before the
// source answered.
func (v *Leaderboard) Pending() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pending
}

// Close tears the view down. A fetch still running is canceled and its
// result is never applied.
func (v *Leaderboard) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}
	v.closed = true
	v.cancelFetch = nil
	v.subscribers = make(map[int]func(State))
	v.cancel()
}

// snapshot must be called with the lock held.
func (v *Leaderboard) snapshot() State {
	players := make([]model.Player, len(v.state.Leaderboard.Players))
	copy(players, v.state.Leaderboard.Players)
	return State{
		GameID: v.state.GameID,
		Leaderboard: model.Leaderboard{
			GameID:  v.state.Leaderboard.GameID,
			Players: players,
		},
	}
}

func closedChan() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}
