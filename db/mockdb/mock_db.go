package mockdb

import (
	"context"

	"github.com/mww/guess_or_mess/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) FetchLeaderboard(ctx context.Context, gameID string) ([]*model.Player, error) {
	args := db.Called(ctx, gameID)

	var r []*model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]*model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) AddGame(ctx context.Context, gameID string) error {
	args := db.Called(ctx, gameID)
	return args.Error(0)
}

func (db *DB) DeleteGame(ctx context.Context, gameID string) error {
	args := db.Called(ctx, gameID)
	return args.Error(0)
}

func (db *DB) SaveScore(ctx context.Context, gameID string, p *model.Player) error {
	args := db.Called(ctx, gameID, p)
	return args.Error(0)
}

func (db *DB) AddIncompleteEntry(ctx context.Context, gameID string) error {
	args := db.Called(ctx, gameID)
	return args.Error(0)
}
