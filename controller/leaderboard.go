package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/mww/guess_or_mess/model"
)

func (c *controller) FetchLeaderboard(ctx context.Context, gameID string) ([]*model.Player, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, ErrMissingGameID
	}

	players, err := c.source.FetchLeaderboard(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("error fetching leaderboard for game %s: %w", gameID, err)
	}
	return players, nil
}
