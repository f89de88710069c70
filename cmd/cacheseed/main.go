/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/mikeb26/fide-ratings-scraper/fide"
	"github.com/mikeb26/fide-ratings-scraper/internal"
)

// this program exists just to seed the http cache ahead of a large scrape;
// it walks a federation's recent rating periods and fetches every
// tournament's report and information page

func main() {
	fed := flag.String("fed", "USA", "Federation code to seed")
	months := flag.Int("months", 3, "Number of recent rating periods")
	flag.Parse()

	ctx := context.Background()
	client := fide.NewClient(ctx)

	periods, err := client.GetFederationPeriods(ctx, *fed)
	if err != nil {
		log.Fatalf("Error fetching periods for %v: %v", *fed, err)
	}
	if len(periods) > *months {
		periods = periods[:*months]
	}

	for _, period := range periods {
		when, err := internal.ParseDateOrZero(period.Period)
		if err != nil || when.IsZero() {
			continue
		}
		tournaments, err := client.GetFederationTournaments(ctx, *fed,
			when.Year(), int(when.Month()))
		if err != nil {
			// best effort
			continue
		}

		for _, t := range tournaments {
			if _, err := client.FetchTournamentDetail(ctx, t.ID); err == nil {
				fmt.Printf("seeded details:%v\n", t.ID)
			}
			time.Sleep(2 * time.Second) // avoid pegging fide.com
			if _, err := client.FetchTournamentReport(ctx, t.ID); err == nil {
				fmt.Printf("seeded report:%v\n", t.ID)
			}
			time.Sleep(2 * time.Second) // avoid pegging fide.com
		}
	}
}
