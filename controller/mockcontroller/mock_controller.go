package mockcontroller

import (
	"context"

	"github.com/mww/guess_or_mess/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) FetchLeaderboard(ctx context.Context, gameID string) ([]*model.Player, error) {
	args := c.Called(ctx, gameID)

	var res []*model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]*model.Player)
	}

	return res, args.Error(1)
}
