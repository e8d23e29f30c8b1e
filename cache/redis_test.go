package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mww/guess_or_mess/containers"
	"github.com/mww/guess_or_mess/db/mockdb"
	"github.com/mww/guess_or_mess/model"
	"github.com/mww/guess_or_mess/testutils"
	"github.com/redis/go-redis/v9"
)

var testClient *redis.Client

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	container := containers.NewRedisContainer()

	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			container.Shutdown()
			fmt.Printf("panic - %v\n", r)
		}
	}()

	opts, err := redis.ParseURL(container.ConnectionString())
	if err != nil {
		fmt.Printf("error parsing redis url: %v", err)
		container.Shutdown()
		os.Exit(-1)
	}
	testClient = redis.NewClient(opts)

	code := m.Run()
	testClient.Close()
	container.Shutdown()
	os.Exit(code)
}

func TestFetchLeaderboard_readThrough(t *testing.T) {
	ctx := context.Background()
	gameID := uuid.NewString()

	raw := []*model.Player{
		{Username: "Alice", Score: 100},
		nil,
		{Username: "Bob", Score: 90},
	}

	source := &mockdb.DB{}
	source.On("FetchLeaderboard", ctx, gameID).Return(raw, nil).Once()

	logger := &testutils.Logger{}
	c := New(testClient, source, time.Minute, logger)

	for i := 0; i < 3; i++ {
		res, err := c.FetchLeaderboard(ctx, gameID)
		if err != nil {
			t.Fatalf("fetch %d - error fetching leaderboard: %v", i, err)
		}
		if !reflect.DeepEqual(raw, res) {
			t.Errorf("fetch %d - leaderboard not as expected: %v", i, res)
		}
	}

	source.AssertNumberOfCalls(t, "FetchLeaderboard", 1)
	if logger.Len() != 0 {
		t.Errorf("expected no log entries, got: %v", logger.Entries())
	}

	ttl, err := testClient.TTL(ctx, key(gameID)).Result()
	if err != nil {
		t.Fatalf("error reading ttl: %v", err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("unexpected ttl on cached leaderboard: %v", ttl)
	}
}

func TestFetchLeaderboard_invalidate(t *testing.T) {
	ctx := context.Background()
	gameID := uuid.NewString()

	first := []*model.Player{{Username: "Alice", Score: 10}}
	second := []*model.Player{{Username: "Bob", Score: 20}, {Username: "Alice", Score: 10}}

	source := &mockdb.DB{}
	source.On("FetchLeaderboard", ctx, gameID).Return(first, nil).Once()
	source.On("FetchLeaderboard", ctx, gameID).Return(second, nil).Once()

	c := New(testClient, source, time.Minute, &testutils.Logger{})

	res, err := c.FetchLeaderboard(ctx, gameID)
	if err != nil || !reflect.DeepEqual(first, res) {
		t.Fatalf("unexpected first result: %v, %v", res, err)
	}

	if err := c.Invalidate(ctx, gameID); err != nil {
		t.Fatalf("error invalidating: %v", err)
	}

	res, err = c.FetchLeaderboard(ctx, gameID)
	if err != nil || !reflect.DeepEqual(second, res) {
		t.Fatalf("unexpected result after invalidate: %v, %v", res, err)
	}
	source.AssertExpectations(t)
}

func TestFetchLeaderboard_errorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	gameID := uuid.NewString()
	fetchErr := errors.New("source is down")

	source := &mockdb.DB{}
	source.On("FetchLeaderboard", ctx, gameID).Return(nil, fetchErr).Once()
	source.On("FetchLeaderboard", ctx, gameID).Return([]*model.Player{}, nil).Once()

	c := New(testClient, source, time.Minute, &testutils.Logger{})

	_, err := c.FetchLeaderboard(ctx, gameID)
	if !errors.Is(err, fetchErr) {
		t.Fatalf("expected the source error, got: %v", err)
	}

	res, err := c.FetchLeaderboard(ctx, gameID)
	if err != nil {
		t.Fatalf("error fetching leaderboard: %v", err)
	}
	if res == nil || len(res) != 0 {
		t.Errorf("expected an empty leaderboard, got: %v", res)
	}
	source.AssertExpectations(t)
}

func TestFetchLeaderboard_redisDown(t *testing.T) {
	ctx := context.Background()
	raw := []*model.Player{{Username: "Alice", Score: 10}}

	source := &mockdb.DB{}
	source.On("FetchLeaderboard", ctx, "abc123").Return(raw, nil)

	down := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer down.Close()

	logger := &testutils.Logger{}
	c := New(down, source, 0, logger)
	if c.ttl != DefaultTTL {
		t.Errorf("expected default ttl, got %v", c.ttl)
	}

	res, err := c.FetchLeaderboard(ctx, "abc123")
	if err != nil {
		t.Fatalf("expected the source result when redis is down, got error: %v", err)
	}
	if !reflect.DeepEqual(raw, res) {
		t.Errorf("leaderboard not as expected: %v", res)
	}

	// One entry for the failed read and one for the failed write.
	if logger.Len() != 2 {
		t.Errorf("expected 2 log entries, got: %v", logger.Entries())
	}
}
