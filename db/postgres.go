package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mww/guess_or_mess/model"
)

var (
	ErrGameNotFound error = errors.New("game not found")
	ErrGameExists   error = errors.New("game already exists")
	ErrNoUsername   error = errors.New("player has no username")
)

// Postgres error code for unique_violation
const uniqueViolation = "23505"

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) FetchLeaderboard(ctx context.Context, gameID string) ([]*model.Player, error) {
	const query = `SELECT username, score FROM scores
					WHERE game_id=@gameID
					ORDER BY score DESC NULLS LAST, joined ASC, id ASC`

	if err := db.checkGameExists(ctx, gameID); err != nil {
		return nil, err
	}

	args := pgx.NamedArgs{
		"gameID": gameID,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error running leaderboard query: %w", err)
	}
	defer rows.Close()

	results := make([]*model.Player, 0, 16)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning player for game %s: %w", gameID, err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading leaderboard rows: %w", err)
	}

	return results, nil
}

// scanPlayer returns nil, without an error, when the row is an incomplete
// record.
func scanPlayer(row pgx.Row) (*model.Player, error) {
	var username sql.NullString
	var score sql.NullInt32
	if err := row.Scan(&username, &score); err != nil {
		return nil, err
	}

	if !username.Valid || username.String == "" || !score.Valid {
		return nil, nil
	}

	return &model.Player{
		Username: username.String,
		Score:    int(score.Int32),
	}, nil
}

func (db *postgresDB) AddGame(ctx context.Context, gameID string) error {
	const query = `INSERT INTO games (id, created) VALUES (@id, @created)`

	args := pgx.NamedArgs{
		"id":      gameID,
		"created": db.clock.Now(),
	}
	_, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrGameExists
		}
		return fmt.Errorf("error inserting game (%s): %w", gameID, err)
	}
	return nil
}

func (db *postgresDB) DeleteGame(ctx context.Context, gameID string) error {
	const query = `DELETE FROM games WHERE id=@id`

	args := pgx.NamedArgs{
		"id": gameID,
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error deleting game (%s): %w", gameID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (db *postgresDB) SaveScore(ctx context.Context, gameID string, p *model.Player) error {
	if p == nil {
		return errors.New("SaveScore - player is nil")
	}
	if p.Username == "" {
		return ErrNoUsername
	}

	const query = `INSERT INTO scores (game_id, username, score, joined)
					VALUES (@gameID, @username, @score, @now)
					ON CONFLICT (game_id, username)
					DO UPDATE SET score=EXCLUDED.score, updated=@now`

	if err := db.checkGameExists(ctx, gameID); err != nil {
		return err
	}

	args := pgx.NamedArgs{
		"gameID":   gameID,
		"username": p.Username,
		"score":    p.Score,
		"now":      db.clock.Now(),
	}
	_, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error saving score for %s in game %s: %w", p.Username, gameID, err)
	}
	return nil
}

func (db *postgresDB) AddIncompleteEntry(ctx context.Context, gameID string) error {
	const query = `INSERT INTO scores (game_id, joined) VALUES (@gameID, @now)`

	if err := db.checkGameExists(ctx, gameID); err != nil {
		return err
	}

	args := pgx.NamedArgs{
		"gameID": gameID,
		"now":    db.clock.Now(),
	}
	_, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error adding incomplete entry to game %s: %w", gameID, err)
	}
	return nil
}

func (db *postgresDB) checkGameExists(ctx context.Context, gameID string) error {
	const query = `SELECT EXISTS(SELECT 1 FROM games WHERE id=@id)`

	args := pgx.NamedArgs{
		"id": gameID,
	}
	var exists bool
	if err := db.pool.QueryRow(ctx, query, args).Scan(&exists); err != nil {
		return fmt.Errorf("error looking up game %s: %w", gameID, err)
	}
	if !exists {
		return ErrGameNotFound
	}
	return nil
}
