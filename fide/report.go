/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fide

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mikeb26/fide-ratings-scraper/internal"
)

const (
	ColorWhite = "white"
	ColorBlack = "black"
)

// PlayerRecord is one player's summary row from a tournament calculation
// report, plus their round-by-round results.
type PlayerRecord struct {
	ID      string
	Name    string
	Country string
	Rating  int
	Total   float64
	Rounds  []RoundRecord
}

// RoundRecord is one round row beneath a player's summary row. The record is
// from that player's perspective; the opponent's identity comes from the
// report's intra-page anchor links.
type RoundRecord struct {
	Round     int    // 0 when the row had no parseable round number
	Date      string // raw, e.g. "24/11/05"; field order resolved per tournament
	OppName   string
	OppID     string
	Color     string // ColorWhite, ColorBlack, or "" when unmarked
	OppFed    string
	Title     string
	WTitle    string
	OppRating int
	Score     *float64 // 0, 0.5, or 1; nil on forfeits and unparseable cells
	Forfeit   string   // "+", "-", or ""
}

var scoreNumRegex = regexp.MustCompile(`(\d+\.?\d*)`)

// ParseReport parses a tournament_src_report page into per-player records.
// The report is a single calc_table where each player's summary row is
// followed by their round rows; opponents are cross-referenced through
// <a name="N"> anchors in the name cells. Returns a ParseError wrapping
// ErrNoTable or ErrNoPlayers when the page lacks the expected structure.
func ParseReport(data []byte, code string) ([]PlayerRecord, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Code: code, Err: ErrNoTable}
	}

	table := doc.Find("table.calc_table").First()
	if table.Length() == 0 {
		return nil, &ParseError{Code: code, Err: ErrNoTable}
	}

	rows := table.Find("tr")
	anchorToID := buildAnchorMap(rows)

	players := make([]PlayerRecord, 0)
	numRows := rows.Length()
	idx := 0
	for idx < numRows {
		cells := rows.Eq(idx).Find("td")
		first := strings.TrimSpace(cells.Eq(0).Text())
		if cells.Length() < 7 || !isAllDigits(first) {
			idx++
			continue
		}

		player := PlayerRecord{
			ID:      first,
			Name:    internal.NormalizeName(cellText(cells.Eq(1))),
			Country: strings.TrimSpace(cells.Eq(2).Text()),
			Rating:  atoiOrZero(cells.Eq(5).Text()),
			Total:   parseFloatOrZero(cells.Eq(6).Text()),
		}
		idx++

		// some reports repeat a "Round ..." header row under each player
		if idx < numRows {
			next := rows.Eq(idx).Find("td")
			if next.Length() >= 7 &&
				strings.EqualFold(strings.TrimSpace(next.Eq(0).Text()),
					"round") {
				idx++
			}
		}

		for idx < numRows {
			roundCells := rows.Eq(idx).Find("td")
			if roundCells.Length() < 7 {
				break
			}
			roundFirst := strings.TrimSpace(roundCells.Eq(0).Text())
			if roundFirst == "" || roundFirst[0] < '0' ||
				roundFirst[0] > '9' {
				break
			}
			if rr, ok := parseRoundRow(roundCells, anchorToID); ok {
				player.Rounds = append(player.Rounds, rr)
			}
			idx++
		}

		players = append(players, player)
	}

	if len(players) == 0 {
		return nil, &ParseError{Code: code, Err: ErrNoPlayers}
	}

	return players, nil
}

// buildAnchorMap pre-scans every player summary row and maps its name-cell
// anchor to the player's fide id. Round rows reference opponents via "#N"
// hrefs which may point forward to players not yet walked, hence the
// separate pass.
func buildAnchorMap(rows *goquery.Selection) map[string]string {
	anchorToID := make(map[string]string)

	rows.Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		first := strings.TrimSpace(cells.Eq(0).Text())
		if !isAllDigits(first) {
			return
		}
		cells.Eq(1).Find("a").EachWithBreak(
			func(_ int, a *goquery.Selection) bool {
				anchor, ok := a.Attr("name")
				if !ok || anchor == "" {
					anchor, ok = a.Attr("id")
				}
				if !ok || anchor == "" {
					return true
				}
				anchorToID[anchor] = first
				return false
			})
	})

	return anchorToID
}

func parseRoundRow(cells *goquery.Selection,
	anchorToID map[string]string) (RoundRecord, bool) {

	round, date := parseRoundAndDate(cells.Eq(0).Text())
	scoreText := strings.TrimSpace(cells.Eq(6).Text())

	rr := RoundRecord{
		Round:     round,
		Date:      date,
		OppName:   internal.NormalizeName(cellText(cells.Eq(1))),
		Color:     cellColor(cells.Eq(1)),
		OppFed:    strings.TrimSpace(cells.Eq(2).Text()),
		Title:     strings.TrimSpace(cells.Eq(3).Text()),
		WTitle:    strings.TrimSpace(cells.Eq(4).Text()),
		OppRating: atoiOrZero(cells.Eq(5).Text()),
		Score:     parseScore(scoreText),
		Forfeit:   forfeitIndicator(scoreText),
	}
	if anchor := cellAnchorRef(cells.Eq(1)); anchor != "" {
		rr.OppID = anchorToID[anchor]
	}

	// a row with no opponent and no forfeit marker is a bye; the game never
	// happened so the row isn't kept
	if rr.OppName == "" && rr.Forfeit == "" {
		return RoundRecord{}, false
	}

	return rr, true
}

// cellText extracts a cell's text with link contents kept intact: link texts
// first in document order, then whatever loose text is left around them.
func cellText(cell *goquery.Selection) string {
	links := cell.Find("a")
	if links.Length() == 0 {
		return strings.TrimSpace(cell.Text())
	}

	parts := make([]string, 0, links.Length()+1)
	links.Each(func(_ int, a *goquery.Selection) {
		if t := strings.TrimSpace(a.Text()); t != "" {
			parts = append(parts, t)
		}
	})

	clone := cell.Clone()
	clone.Find("a").Remove()
	if rest := strings.TrimSpace(clone.Text()); rest != "" {
		parts = append(parts, rest)
	}

	if len(parts) == 0 {
		return strings.TrimSpace(cell.Text())
	}
	return strings.Join(parts, " ")
}

func cellColor(cell *goquery.Selection) string {
	if cell.Find("span.white_note").Length() > 0 {
		return ColorWhite
	}
	if cell.Find("span.black_note").Length() > 0 {
		return ColorBlack
	}
	return ""
}

// cellAnchorRef returns the fragment of the first href link in the cell
// ("#65" -> "65"), or "" when the first href isn't an intra-page reference.
func cellAnchorRef(cell *goquery.Selection) string {
	var ref string
	cell.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok {
			return true
		}
		if strings.HasPrefix(href, "#") {
			ref = strings.TrimSpace(href[1:])
		}
		return false
	})
	return ref
}

// parseScore interprets a score cell as 0, 0.5, or 1 from the row player's
// perspective. Forfeit markers and anything else yield nil.
func parseScore(scoreText string) *float64 {
	scoreText = strings.ToLower(strings.TrimSpace(scoreText))
	if scoreText == "" {
		return nil
	}
	if strings.Contains(scoreText, "forfeit") || scoreText == "-" ||
		scoreText == "+" {
		return nil
	}

	m := scoreNumRegex.FindStringSubmatch(scoreText)
	if m == nil {
		return nil
	}
	score, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	if score != 0.0 && score != 0.5 && score != 1.0 {
		return nil
	}

	return &score
}

// forfeitIndicator extracts the forfeit direction from a score cell: "+"
// means the row's player won by forfeit, "-" that they lost. A bare
// "forfeit" with no sign is treated as a loss.
func forfeitIndicator(scoreText string) string {
	scoreText = strings.TrimSpace(scoreText)
	if scoreText == "" {
		return ""
	}

	if strings.Contains(strings.ToLower(scoreText), "forfeit") {
		if strings.Contains(scoreText, "-") {
			return "-"
		}
		if strings.Contains(scoreText, "+") {
			return "+"
		}
		return "-"
	}

	switch scoreText {
	case "-":
		return "-"
	case "+":
		return "+"
	}

	return ""
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parseFloatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0.0
	}
	return f
}
