/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fide

import (
	"context"
	"errors"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
)

const DefaultScrapeWorkers = 4

// GameSink receives reconstructed games as tournaments finish scraping.
// Append is only ever called from a single goroutine.
type GameSink interface {
	Append(ctx context.Context, games []GameRecord) error
}

// BoundsProvider supplies a tournament's start/end window for round-date
// disambiguation. Implementations return ok=false when the window is
// unknown.
type BoundsProvider interface {
	Lookup(code string) (DateBounds, bool)
}

// BoundsMap is a static BoundsProvider.
type BoundsMap map[string]DateBounds

func (m BoundsMap) Lookup(code string) (DateBounds, bool) {
	bounds, ok := m[code]
	return bounds, ok
}

// ScrapeSummary tallies the outcome of a batch scrape.
type ScrapeSummary struct {
	Succeeded     int
	ParseFailures int
	FetchFailures int
	Games         int
}

// ScrapeReports fetches and parses the reports for all codes with up to
// workers concurrent fetches, reconstructs games, and forwards them to sink.
// Per-tournament failures are logged and counted rather than aborting the
// batch; only a sink failure or context cancellation stops the run early.
func (client *Client) ScrapeReports(ctx context.Context, codes []string,
	bounds BoundsProvider, sink GameSink,
	workers int) (ScrapeSummary, error) {

	if workers <= 0 {
		workers = DefaultScrapeWorkers
	}

	var mu sync.Mutex
	var summary ScrapeSummary

	gamesCh := make(chan []GameRecord, workers)
	writerDone := make(chan error, 1)
	go func() {
		var writeErr error
		for batch := range gamesCh {
			if writeErr != nil {
				continue
			}
			writeErr = sink.Append(ctx, batch)
		}
		writerDone <- writeErr
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, code := range codes {
		code := code
		g.Go(func() error {
			players, err := client.FetchTournamentReport(gctx, code)
			if err != nil {
				mu.Lock()
				var perr *ParseError
				if errors.As(err, &perr) {
					summary.ParseFailures++
				} else {
					summary.FetchFailures++
				}
				mu.Unlock()
				log.Printf("warning: failed to scrape tournament %v: %v",
					code, err)
				return nil
			}

			var db DateBounds
			if bounds != nil {
				if b, ok := bounds.Lookup(code); ok {
					db = b
				}
			}
			games := ReconstructGames(players, code, db)

			mu.Lock()
			summary.Succeeded++
			summary.Games += len(games)
			mu.Unlock()

			if len(games) == 0 {
				return nil
			}
			select {
			case gamesCh <- games:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}

	err := g.Wait()
	close(gamesCh)
	writeErr := <-writerDone

	if err != nil {
		return summary, err
	}
	return summary, writeErr
}

// DetailBounds fetches the information pages for all codes and returns the
// start/end windows that could be determined. Lookup failures are logged and
// skipped; a code absent from the result just means round dates fall back to
// the default field ordering.
func (client *Client) DetailBounds(ctx context.Context, codes []string,
	workers int) (BoundsMap, error) {

	if workers <= 0 {
		workers = DefaultScrapeWorkers
	}

	var mu sync.Mutex
	boundsMap := make(BoundsMap)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, code := range codes {
		code := code
		g.Go(func() error {
			detail, err := client.FetchTournamentDetail(gctx, code)
			if err != nil {
				log.Printf("warning: failed to fetch details for tournament %v: %v",
					code, err)
				return nil
			}
			bounds := detail.Bounds()
			if bounds.Start.IsZero() && bounds.End.IsZero() {
				return nil
			}
			mu.Lock()
			boundsMap[code] = bounds
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return boundsMap, nil
}
