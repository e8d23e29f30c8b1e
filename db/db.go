package db

import (
	"context"

	"github.com/mww/guess_or_mess/model"
)

type DB interface {
	// Returns the players of a game ranked by descending score. Players whose
	// record is incomplete (no username or no score yet) are returned as nil
	// entries at their place in the list.
	FetchLeaderboard(ctx context.Context, gameID string) ([]*model.Player, error)

	AddGame(ctx context.Context, gameID string) error
	DeleteGame(ctx context.Context, gameID string) error
	// Records the score of a player in a game, replacing any earlier score
	// for the same username.
	SaveScore(ctx context.Context, gameID string, p *model.Player) error
	// Records a player that joined the game without a complete record.
	AddIncompleteEntry(ctx context.Context, gameID string) error
}
