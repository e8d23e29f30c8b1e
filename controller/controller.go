package controller

import (
	"context"
	"errors"

	"github.com/mww/guess_or_mess/model"
)

var (
	ErrMissingGameID error = errors.New("no game id provided")
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Fetch the ranked players of a game. The players are sorted by descending
	// score. Entries may be nil when the record of a player is incomplete.
	FetchLeaderboard(ctx context.Context, gameID string) ([]*model.Player, error)
}

// Source is where leaderboards are loaded from: the database, a cache in front
// of it, or a remote API.
type Source interface {
	FetchLeaderboard(ctx context.Context, gameID string) ([]*model.Player, error)
}

type controller struct {
	source Source
}

func New(source Source) (C, error) {
	if source == nil {
		return nil, errors.New("a leaderboard source is required")
	}

	c := &controller{
		source: source,
	}
	return c, nil
}
