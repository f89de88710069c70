/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package gamestore

import (
	"context"
	"os"
	"testing"

	"github.com/mikeb26/fide-ratings-scraper/fide"
	"github.com/mikeb26/fide-ratings-scraper/internal"
)

// requires a live database; set FIDESCRAPE_PG_DSN to run
func TestStoreRoundTrip(t *testing.T) {
	dsn := os.Getenv(internal.GameStoreDSNEnvVar)
	if dsn == "" {
		t.Skipf("%v not set; skipping", internal.GameStoreDSNEnvVar)
	}

	ctx := context.Background()
	store, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer store.Close()

	games := []fide.GameRecord{
		{TournamentCode: "gamestore-test", Round: 1, Date: "2024-11-02",
			WhiteID: "100", BlackID: "101", WhiteScore: 1.0},
		{TournamentCode: "gamestore-test", Round: 2,
			WhiteID: "101", BlackID: "100", WhiteScore: 0.5},
	}
	if err := store.Append(ctx, games); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	// upserting the same batch twice must not duplicate rows
	if err := store.Append(ctx, games); err != nil {
		t.Fatalf("second Append returned error: %v", err)
	}

	count, err := store.CountGames(ctx, "gamestore-test")
	if err != nil {
		t.Fatalf("CountGames returned error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 games, got %d", count)
	}
}
