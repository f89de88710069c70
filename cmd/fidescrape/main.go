/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"bufio"
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/mikeb26/fide-ratings-scraper/fide"
	"github.com/mikeb26/fide-ratings-scraper/gamestore"
	"github.com/mikeb26/fide-ratings-scraper/internal"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, client *fide.Client, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":        handleHelp,
	"federations": handleFederations,
	"periods":     handlePeriods,
	"tournaments": handleTournaments,
	"details":     handleDetails,
	"report":      handleReport,
	"games":       handleGames,
	"playerlist":  handlePlayerList,
	"scrape":      handleScrape,
}

func main() {
	ctx := context.Background()

	// optional; credentials and DSNs can come from a local .env
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	handler, ok := commands[cmd]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}

	handler(ctx, fide.NewClient(ctx), os.Args[2:])
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, client *fide.Client, args []string) {
	usage()
}

func handleFederations(ctx context.Context, client *fide.Client,
	args []string) {

	federations, err := client.GetFederations(ctx)
	if err != nil {
		log.Fatalf("Error fetching federations: %v", err)
	}
	fmt.Print(fide.BuildFederationsOutput(federations))
}

func handlePeriods(ctx context.Context, client *fide.Client, args []string) {
	fs := flag.NewFlagSet("periods", flag.ExitOnError)
	fed := fs.String("fed", "", "Federation code (e.g. USA)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *fed == "" {
		log.Fatalf("periods requires -fed")
	}

	periods, err := client.GetFederationPeriods(ctx, *fed)
	if err != nil {
		log.Fatalf("Error fetching periods for %v: %v", *fed, err)
	}
	for _, p := range periods {
		fmt.Printf("%v  %v\n", p.Period, p.Label)
	}
}

func handleTournaments(ctx context.Context, client *fide.Client,
	args []string) {

	now := time.Now()
	fs := flag.NewFlagSet("tournaments", flag.ExitOnError)
	fed := fs.String("fed", "", "Federation code (e.g. USA)")
	year := fs.Int("year", now.Year(), "Rating period year")
	month := fs.Int("month", int(now.Month()), "Rating period month (1-12)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *fed == "" {
		log.Fatalf("tournaments requires -fed")
	}
	if *month < 1 || *month > 12 {
		log.Fatalf("invalid month: %v", *month)
	}

	tournaments, err := client.GetFederationTournaments(ctx, *fed, *year,
		*month)
	if err != nil {
		log.Fatalf("Error fetching tournaments for %v: %v", *fed, err)
	}
	fmt.Print(fide.BuildTournamentsOutput(tournaments))
}

func handleDetails(ctx context.Context, client *fide.Client, args []string) {
	fs := flag.NewFlagSet("details", flag.ExitOnError)
	code := fs.String("code", "", "Tournament event code")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *code == "" {
		log.Fatalf("details requires -code")
	}

	detail, err := client.FetchTournamentDetail(ctx, *code)
	if err != nil {
		log.Fatalf("Error fetching details for %v: %v", *code, err)
	}
	fmt.Print(fide.BuildDetailOutput(detail))
}

func handleReport(ctx context.Context, client *fide.Client, args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	code := fs.String("code", "", "Tournament event code")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *code == "" {
		log.Fatalf("report requires -code")
	}

	players, err := client.FetchTournamentReport(ctx, *code)
	if err != nil {
		log.Fatalf("Error fetching report for %v: %v", *code, err)
	}
	fmt.Print(fide.BuildReportOutput(players))
}

func handleGames(ctx context.Context, client *fide.Client, args []string) {
	fs := flag.NewFlagSet("games", flag.ExitOnError)
	code := fs.String("code", "", "Tournament event code")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *code == "" {
		log.Fatalf("games requires -code")
	}

	players, err := client.FetchTournamentReport(ctx, *code)
	if err != nil {
		log.Fatalf("Error fetching report for %v: %v", *code, err)
	}

	// the information page narrows down ambiguous round dates; games still
	// come out without dates when it can't be fetched
	var bounds fide.DateBounds
	if detail, err := client.FetchTournamentDetail(ctx, *code); err != nil {
		log.Printf("warning: unable to fetch details for %v: %v", *code,
			err)
	} else {
		bounds = detail.Bounds()
	}

	games := fide.ReconstructGames(players, *code, bounds)
	fmt.Print(fide.BuildGamesOutput(games))
}

func handlePlayerList(ctx context.Context, client *fide.Client,
	args []string) {

	fs := flag.NewFlagSet("playerlist", flag.ExitOnError)
	fed := fs.String("fed", "", "Only list players from this federation")
	limit := fs.Int("limit", 0, "Stop after this many players (0 = all)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	players, err := client.FetchPlayerList(ctx)
	if err != nil {
		log.Fatalf("Error fetching player list: %v", err)
	}

	printed := 0
	for _, p := range players {
		if *fed != "" && !strings.EqualFold(p.Fed, *fed) {
			continue
		}
		fmt.Printf("%-10d %-3v %-3v %4d %v\n", p.ID, p.Fed, p.Title,
			p.StdRating, p.Name)
		printed++
		if *limit > 0 && printed >= *limit {
			break
		}
	}
	fmt.Printf("%d players\n", printed)
}

func handleScrape(ctx context.Context, client *fide.Client, args []string) {
	fs := flag.NewFlagSet("scrape", flag.ExitOnError)
	codesFile := fs.String("codes", "",
		"File with one tournament event code per line")
	workers := fs.Int("workers", fide.DefaultScrapeWorkers,
		"Concurrent fetches")
	noBounds := fs.Bool("no-bounds", false,
		"Skip fetching information pages for date disambiguation")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	codes := fs.Args()
	if *codesFile != "" {
		fileCodes, err := readCodesFile(*codesFile)
		if err != nil {
			log.Fatalf("Error reading %v: %v", *codesFile, err)
		}
		codes = append(codes, fileCodes...)
	}
	if len(codes) == 0 {
		log.Fatalf("scrape requires tournament codes (arguments or -codes file)")
	}

	var bounds fide.BoundsProvider
	if !*noBounds {
		boundsMap, err := client.DetailBounds(ctx, codes, *workers)
		if err != nil {
			log.Fatalf("Error fetching tournament windows: %v", err)
		}
		bounds = boundsMap
	}

	var sink fide.GameSink = stdoutSink{}
	if dsn := os.Getenv(internal.GameStoreDSNEnvVar); dsn != "" {
		store, err := gamestore.Open(ctx, dsn)
		if err != nil {
			log.Fatalf("Error connecting to game store: %v", err)
		}
		defer store.Close()
		sink = store
	}

	summary, err := client.ScrapeReports(ctx, codes, bounds, sink, *workers)
	if err != nil {
		log.Fatalf("Scrape failed: %v", err)
	}
	fmt.Printf("scraped %d tournaments (%d parse failures, %d fetch failures), %d games\n",
		summary.Succeeded, summary.ParseFailures, summary.FetchFailures,
		summary.Games)
}

// stdoutSink prints games instead of storing them; used when no database is
// configured.
type stdoutSink struct{}

func (stdoutSink) Append(ctx context.Context,
	games []fide.GameRecord) error {

	fmt.Print(fide.BuildGamesOutput(games))
	return nil
}

func readCodesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var codes []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		code := strings.TrimSpace(scanner.Text())
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes, scanner.Err()
}
