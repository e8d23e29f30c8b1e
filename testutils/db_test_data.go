package testutils

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
	"github.com/mww/guess_or_mess/containers"
	"github.com/mww/guess_or_mess/db"
	"github.com/mww/guess_or_mess/model"
)

// The game used by most tests, with the players in leaderboard order.
const GameID = "abc123"

var (
	Alice = &model.Player{Username: "Alice", Score: 100}
	Bob   = &model.Player{Username: "Bob", Score: 90}
	Cara  = &model.Player{Username: "Cara", Score: 80}
	Dee   = &model.Player{Username: "Dee", Score: 70}
)

// Leaderboard returns the raw leaderboard of GameID, including one incomplete
// entry between Bob and Cara.
func Leaderboard() []*model.Player {
	return []*model.Player{Alice, Bob, nil, Cara, Dee}
}

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     *clock.Mock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.NewMock()
	clock.Set(time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC))

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestGame(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

// InsertTestGame saves GameID with its players. Incomplete entries have no
// score, so the database always ranks them last.
func InsertTestGame(d db.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := d.AddGame(ctx, GameID); err != nil && !errors.Is(err, db.ErrGameExists) {
		return err
	}

	for _, p := range Leaderboard() {
		var err error
		if p == nil {
			err = d.AddIncompleteEntry(ctx, GameID)
		} else {
			err = d.SaveScore(ctx, GameID, p)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// NewGameID returns a game id that no other test uses.
func NewGameID() string {
	return uuid.NewString()
}
