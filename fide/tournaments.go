/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fide

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Tournament is one row from a federation's monthly rated-tournaments list.
type Tournament struct {
	ID          string
	Name        string
	Location    string
	TimeControl string // "s" standard, "r" rapid, "b" blitz
	StartDate   string
	EndDate     string
	Federation  string
}

// RatingPeriod is one month for which a federation has published rated
// tournaments.
type RatingPeriod struct {
	Period    string // e.g. "2025-01-01"
	Published string
	Label     string // e.g. "January 2025"
}

// the tournaments endpoint serves datatables-style rows: each row is a
// mixed-type array of [id, name_link, location, time_control, start,
// end_link, ...]
type apiTournamentsResponse struct {
	Data [][]any `json:"data"`
}

var ajaxHeaders = map[string]string{
	"X-Requested-With": "XMLHttpRequest",
	"Accept":           "application/json, text/javascript, */*; q=0.01",
}

// GetFederationTournaments lists a federation's rated tournaments for one
// rating period (year/month). The period always uses the first of the month.
func (client *Client) GetFederationTournaments(ctx context.Context,
	fed string, year int, month int) ([]Tournament, error) {

	url := fmt.Sprintf("%v/a_tournaments.php?country=%v&period=%04d-%02d-01",
		client.baseURL, fed, year, month)
	body, err := client.fetchWithRetry(ctx, client.httpClient1day, url,
		ajaxHeaders)
	if err != nil {
		return nil, err
	}

	// the endpoint falls back to serving the full HTML page when it doesn't
	// like the request; that's an error, not an empty list
	if bytesLooksLikeHTML(body) {
		return nil, fmt.Errorf("tournaments endpoint for %v returned HTML instead of JSON",
			fed)
	}

	var apiResp apiTournamentsResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse tournaments JSON for %v: %w",
			fed, err)
	}

	tournaments := make([]Tournament, 0, len(apiResp.Data))
	for _, row := range apiResp.Data {
		if t, ok := parseTournamentRow(row, fed); ok {
			tournaments = append(tournaments, t)
		}
	}

	return tournaments, nil
}

// GetFederationPeriods lists the rating periods for which a federation has
// published tournaments.
func (client *Client) GetFederationPeriods(ctx context.Context,
	fed string) ([]RatingPeriod, error) {

	url := fmt.Sprintf("%v/a_tournaments_panel.php?country=%v&periods_tab=1",
		client.baseURL, fed)
	body, err := client.fetchWithRetry(ctx, client.httpClient1day, url,
		ajaxHeaders)
	if err != nil {
		return nil, err
	}
	if bytesLooksLikeHTML(body) {
		return nil, fmt.Errorf("periods endpoint for %v returned HTML instead of JSON",
			fed)
	}

	var rawPeriods []map[string]any
	if err := json.Unmarshal(body, &rawPeriods); err != nil {
		return nil, fmt.Errorf("failed to parse periods JSON for %v: %w",
			fed, err)
	}

	periods := make([]RatingPeriod, 0, len(rawPeriods))
	for _, raw := range rawPeriods {
		periods = append(periods, RatingPeriod{
			Period:    anyToString(raw["num1"]),
			Published: anyToString(raw["frl_publish"]),
			Label:     anyToString(raw["txt2"]),
		})
	}

	return periods, nil
}

func parseTournamentRow(row []any, fed string) (Tournament, bool) {
	id := anyToString(rowField(row, 0))
	if id == "" {
		return Tournament{}, false
	}

	tc := anyToString(rowField(row, 3))
	if tc == "" {
		tc = "s"
	}

	return Tournament{
		ID:          id,
		Name:        stripLinkMarkup(anyToString(rowField(row, 1))),
		Location:    anyToString(rowField(row, 2)),
		TimeControl: tc,
		StartDate:   anyToString(rowField(row, 4)),
		EndDate:     stripLinkMarkup(anyToString(rowField(row, 5))),
		Federation:  fed,
	}, true
}

func rowField(row []any, idx int) any {
	if idx >= len(row) {
		return nil
	}
	return row[idx]
}

func anyToString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		// datatables serves numeric ids unquoted
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

var htmlTagRegex = regexp.MustCompile(`<[^>]+>`)

// stripLinkMarkup unwraps values served as HTML links, e.g.
// `<a href=/report.phtml?event=399495>4th Annual Forester Open</a>`.
func stripLinkMarkup(s string) string {
	openIdx := strings.Index(s, ">")
	closeIdx := strings.Index(s, "</a>")
	if openIdx >= 0 && closeIdx > openIdx {
		return s[openIdx+1 : closeIdx]
	}
	if stripped := strings.TrimSpace(htmlTagRegex.ReplaceAllString(s, "")); stripped != "" {
		return stripped
	}
	return s
}

func bytesLooksLikeHTML(body []byte) bool {
	return strings.HasPrefix(strings.TrimSpace(string(body)), "<")
}
