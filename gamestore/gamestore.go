/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package gamestore persists reconstructed games to PostgreSQL. It
// implements fide.GameSink so a batch scrape can stream games straight into
// the database.
package gamestore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/mikeb26/fide-ratings-scraper/fide"
)

type Store struct {
	conn *sql.DB
}

const createTableQuery = `
CREATE TABLE IF NOT EXISTS games (
	tournament_code TEXT NOT NULL,
	round INTEGER NOT NULL,
	white_id TEXT NOT NULL,
	black_id TEXT NOT NULL,
	game_date DATE,
	white_score DOUBLE PRECISION NOT NULL,
	forfeit BOOLEAN NOT NULL DEFAULT FALSE,
	scraped_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (tournament_code, round, white_id, black_id)
)`

const upsertGameQuery = `
INSERT INTO games
	(tournament_code, round, white_id, black_id, game_date, white_score,
	forfeit)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (tournament_code, round, white_id, black_id)
DO UPDATE SET game_date = EXCLUDED.game_date,
	white_score = EXCLUDED.white_score,
	forfeit = EXCLUDED.forfeit,
	scraped_at = NOW()`

// Open connects to the database and ensures the games table exists.
func Open(ctx context.Context, dsn string) (*Store, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(4)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, createTableQuery); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create games table: %w", err)
	}

	return &Store{conn: conn}, nil
}

func (store *Store) Close() error {
	if store.conn != nil {
		return store.conn.Close()
	}
	return nil
}

// Append upserts a batch of games in a single transaction. Rescraping a
// tournament overwrites earlier rows rather than duplicating them.
func (store *Store) Append(ctx context.Context,
	games []fide.GameRecord) error {

	if len(games) == 0 {
		return nil
	}

	tx, err := store.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertGameQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, game := range games {
		var gameDate sql.NullString
		if game.Date != "" {
			gameDate = sql.NullString{String: game.Date, Valid: true}
		}
		_, err := stmt.ExecContext(ctx, game.TournamentCode, game.Round,
			game.WhiteID, game.BlackID, gameDate, game.WhiteScore,
			game.Forfeit)
		if err != nil {
			return fmt.Errorf("failed to upsert game %v r%d %v-%v: %w",
				game.TournamentCode, game.Round, game.WhiteID,
				game.BlackID, err)
		}
	}

	return tx.Commit()
}

// CountGames returns the number of stored games for one tournament.
func (store *Store) CountGames(ctx context.Context, code string) (int,
	error) {

	var count int
	err := store.conn.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM games WHERE tournament_code = $1",
		code).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}
	return count, nil
}
