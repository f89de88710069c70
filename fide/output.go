/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fide

import (
	"fmt"
	"strings"

	"github.com/mikeb26/fide-ratings-scraper/internal"
)

// BuildReportOutput formats a parsed report into aligned per-player round
// tables.
func BuildReportOutput(players []PlayerRecord) string {
	var sb strings.Builder

	for _, player := range players {
		sb.WriteString(fmt.Sprintf("%v (%v) rating:%v total:%v\n",
			player.Name, player.ID, player.Rating,
			internal.ScoreToString(player.Total)))

		if len(player.Rounds) == 0 {
			sb.WriteString("  <no rounds reported>\n\n")
			continue
		}

		headers := []string{"Rd", "Date", "Opponent", "Fed", "Rating",
			"Color", "Result"}
		var rows [][]string
		for _, rr := range player.Rounds {
			rows = append(rows, []string{
				fmt.Sprintf("%d", rr.Round),
				rr.Date,
				rr.OppName,
				rr.OppFed,
				fmt.Sprintf("%d", rr.OppRating),
				rr.Color,
				roundResultString(rr),
			})
		}
		writeAlignedTable(&sb, headers, rows)
		sb.WriteString("\n")
	}

	return sb.String()
}

// BuildGamesOutput formats reconstructed games as an aligned table, scores
// from white's perspective.
func BuildGamesOutput(games []GameRecord) string {
	if len(games) == 0 {
		return "No games could be reconstructed\n"
	}

	var sb strings.Builder
	headers := []string{"Rd", "Date", "White", "Black", "Score"}
	var rows [][]string
	forfeitFound := false
	for _, game := range games {
		score := internal.ScoreToString(game.WhiteScore)
		if game.Forfeit {
			score += "*"
			forfeitFound = true
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", game.Round),
			game.Date,
			game.WhiteID,
			game.BlackID,
			score,
		})
	}
	writeAlignedTable(&sb, headers, rows)
	if forfeitFound {
		sb.WriteString("* indicates game was decided by forfeit\n")
	}

	return sb.String()
}

// BuildTournamentsOutput formats a federation's tournament list.
func BuildTournamentsOutput(tournaments []Tournament) string {
	if len(tournaments) == 0 {
		return "No tournaments found\n"
	}

	var sb strings.Builder
	headers := []string{"Code", "Name", "Location", "TC", "Start", "End"}
	var rows [][]string
	for _, t := range tournaments {
		rows = append(rows, []string{t.ID, t.Name, t.Location,
			t.TimeControl, t.StartDate, t.EndDate})
	}
	writeAlignedTable(&sb, headers, rows)

	return sb.String()
}

// BuildDetailOutput formats a tournament information page.
func BuildDetailOutput(detail *TournamentDetail) string {
	var sb strings.Builder

	writeDetailField := func(label string, value string) {
		if value != "" {
			sb.WriteString(fmt.Sprintf("%v: %v\n", label, value))
		}
	}

	writeDetailField("Event code", detail.EventCode)
	writeDetailField("Name", detail.Name)
	writeDetailField("City", detail.City)
	writeDetailField("Country", detail.Country)
	writeDetailField("Players", detail.NumPlayers)
	writeDetailField("System", detail.System)
	writeDetailField("Category", detail.Category)
	writeDetailField("Type", detail.Type)
	writeDetailField("Time Control", detail.TimeControl)
	writeDetailField("Start", detail.StartDate)
	writeDetailField("End", detail.EndDate)
	writeDetailField("Date received", detail.DateReceived)
	writeDetailField("Zone", detail.Zone)
	writeDetailField("Chief Arbiter", strings.Join(detail.ChiefArbiter, ", "))
	writeDetailField("Deputy Chief Arbiter",
		strings.Join(detail.DeputyChiefArbiter, ", "))
	writeDetailField("Arbiters", strings.Join(detail.Arbiters, ", "))
	writeDetailField("Chief Organizer",
		strings.Join(detail.ChiefOrganizer, ", "))
	writeDetailField("Organizers", strings.Join(detail.Organizers, ", "))

	return sb.String()
}

// BuildFederationsOutput formats the federation list.
func BuildFederationsOutput(federations []Federation) string {
	var sb strings.Builder
	for _, fed := range federations {
		sb.WriteString(fmt.Sprintf("%v  %v\n", fed.Code, fed.Name))
	}
	return sb.String()
}

func roundResultString(rr RoundRecord) string {
	if rr.Forfeit != "" {
		return fmt.Sprintf("forfeit(%v)", rr.Forfeit)
	}
	if rr.Score == nil {
		return "?"
	}
	return internal.ScoreToString(*rr.Score)
}

func writeAlignedTable(sb *strings.Builder, headers []string,
	rows [][]string) {

	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	var fmtStrBuilder strings.Builder
	for _, w := range colWidths {
		fmtStrBuilder.WriteString(fmt.Sprintf("%%-%ds  ", w))
	}
	fmtStr := strings.TrimRight(fmtStrBuilder.String(), " ") + "\n"

	sb.WriteString(fmt.Sprintf(fmtStr, toAnySlice(headers)...))
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf(fmtStr, toAnySlice(row)...))
	}
}
