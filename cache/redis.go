package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mww/guess_or_mess/controller"
	"github.com/mww/guess_or_mess/model"
	"github.com/redis/go-redis/v9"
)

const DefaultTTL = 30 * time.Second

type Logger interface {
	Printf(format string, v ...any)
}

// Leaderboards is a read-through cache of leaderboards kept in redis. The raw
// result of the source is stored, nil entries included, so a cached read
// returns exactly what the source returned.
type Leaderboards struct {
	client *redis.Client
	source controller.Source
	ttl    time.Duration
	logger Logger
}

func New(client *redis.Client, source controller.Source, ttl time.Duration, logger Logger) *Leaderboards {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Leaderboards{
		client: client,
		source: source,
		ttl:    ttl,
		logger: logger,
	}
}

func key(gameID string) string {
	return fmt.Sprintf("leaderboard:%s", gameID)
}

func (c *Leaderboards) FetchLeaderboard(ctx context.Context, gameID string) ([]*model.Player, error) {
	players, err := c.read(ctx, gameID)
	if err == nil {
		return players, nil
	}
	if !errors.Is(err, redis.Nil) {
		// Redis being unavailable shouldn't take the leaderboard down with it.
		c.logger.Printf("error reading cached leaderboard for game %s: %v", gameID, err)
	}

	players, err = c.source.FetchLeaderboard(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := c.write(ctx, gameID, players); err != nil {
		c.logger.Printf("error caching leaderboard for game %s: %v", gameID, err)
	}
	return players, nil
}

// Invalidate drops the cached leaderboard of a game.
func (c *Leaderboards) Invalidate(ctx context.Context, gameID string) error {
	return c.client.Del(ctx, key(gameID)).Err()
}

func (c *Leaderboards) read(ctx context.Context, gameID string) ([]*model.Player, error) {
	data, err := c.client.Get(ctx, key(gameID)).Bytes()
	if err != nil {
		return nil, err
	}

	var players []*model.Player
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, fmt.Errorf("unmarshaling leaderboard: %w", err)
	}
	return players, nil
}

func (c *Leaderboards) write(ctx context.Context, gameID string, players []*model.Player) error {
	if players == nil {
		players = []*model.Player{}
	}
	data, err := json.Marshal(players)
	if err != nil {
		return fmt.Errorf("marshaling leaderboard: %w", err)
	}
	return c.client.Set(ctx, key(gameID), data, c.ttl).Err()
}
