/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fide

// GameRecord is one game, deduplicated across the two player-perspective
// rows that describe it in a report. Scores are always from white's
// perspective.
type GameRecord struct {
	TournamentCode string
	Round          int
	Date           string // YYYY-MM-DD, or "" when the round had no usable date
	WhiteID        string
	BlackID        string
	WhiteScore     float64
	Forfeit        bool
}

type gameKey struct {
	code    string
	round   int
	whiteID string
	blackID string
}

// ReconstructGames converts per-player round records into one GameRecord per
// game. Each game normally appears twice in a report (once per player); the
// first perspective encountered wins. Rounds without a parseable round
// number, without a resolved opponent id, or without a color marker can't be
// paired up and are skipped, as are rows carrying neither a score nor a
// forfeit marker.
func ReconstructGames(players []PlayerRecord, code string,
	bounds DateBounds) []GameRecord {

	order := InferDateOrder(collectRoundDates(players), bounds)

	games := make([]GameRecord, 0)
	seen := make(map[gameKey]struct{})

	for _, player := range players {
		for _, rr := range player.Rounds {
			if rr.Round == 0 || player.ID == "" || rr.OppID == "" {
				continue
			}

			var whiteID, blackID string
			switch rr.Color {
			case ColorWhite:
				whiteID, blackID = player.ID, rr.OppID
			case ColorBlack:
				whiteID, blackID = rr.OppID, player.ID
			default:
				continue
			}

			key := gameKey{code, rr.Round, whiteID, blackID}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			var whiteScore float64
			switch {
			case rr.Forfeit != "":
				// "+" means the row's player won the forfeit
				won := rr.Forfeit == "+"
				if rr.Color == ColorWhite {
					whiteScore = boolToScore(won)
				} else {
					whiteScore = boolToScore(!won)
				}
			case rr.Score != nil:
				if rr.Color == ColorWhite {
					whiteScore = *rr.Score
				} else {
					whiteScore = 1.0 - *rr.Score
				}
			default:
				continue
			}

			var date string
			if rr.Date != "" {
				date = RoundDateToISO(rr.Date, order)
			}

			games = append(games, GameRecord{
				TournamentCode: code,
				Round:          rr.Round,
				Date:           date,
				WhiteID:        whiteID,
				BlackID:        blackID,
				WhiteScore:     whiteScore,
				Forfeit:        rr.Forfeit != "",
			})
		}
	}

	return games
}

func collectRoundDates(players []PlayerRecord) []string {
	distinct := make(map[string]struct{})
	dates := make([]string, 0)
	for _, player := range players {
		for _, rr := range player.Rounds {
			if rr.Date == "" {
				continue
			}
			if _, ok := distinct[rr.Date]; ok {
				continue
			}
			distinct[rr.Date] = struct{}{}
			dates = append(dates, rr.Date)
		}
	}
	return dates
}

func boolToScore(won bool) float64 {
	if won {
		return 1.0
	}
	return 0.0
}
