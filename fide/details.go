/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fide

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TournamentDetail holds the metadata from a tournament information page.
// String fields keep fide's verbatim values; use Bounds() for normalized
// start/end dates.
type TournamentDetail struct {
	EventCode       string
	Name            string
	City            string
	Country         string
	NumPlayers      string
	System          string
	Hybrid          string
	Category        string
	StartDate       string
	EndDate         string
	DateReceived    string
	DateRegistered  string
	Type            string
	TimeControl     string
	Zone            string
	NatChampionship string

	ChiefArbiter       []string
	DeputyChiefArbiter []string
	Arbiters           []string
	AssistantArbiters  []string
	ChiefOrganizer     []string
	Organizers         []string

	OrigReportHref string
}

// ParseTournamentDetail parses a tournament_information page. Rows are
// label/value pairs in a details_table; arbiter and organizer rows hold one
// link per person.
func ParseTournamentDetail(data []byte, code string) (*TournamentDetail, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Code: code, Err: ErrNoTable}
	}

	table := doc.Find("table.details_table").First()
	if table.Length() == 0 {
		return nil, &ParseError{Code: code, Err: ErrNoTable}
	}

	detail := &TournamentDetail{}

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		label := strings.TrimSpace(row.Find("td.info_table_l").First().Text())
		cells := row.Find("td")
		if label == "" || cells.Length() < 2 {
			return
		}
		valueCell := cells.Eq(1)
		value := cellText(valueCell)

		switch label {
		case "Event code":
			detail.EventCode = value
		case "Tournament Name":
			detail.Name = value
		case "City":
			detail.City = value
		case "Country":
			detail.Country = value
		case "Number of players":
			detail.NumPlayers = value
		case "System":
			detail.System = value
		case "Hybrid":
			detail.Hybrid = value
		case "Category":
			detail.Category = value
		case "Start Date":
			detail.StartDate = value
		case "End Date":
			detail.EndDate = value
		case "Date received":
			detail.DateReceived = value
		case "Date registered":
			detail.DateRegistered = value
		case "Type":
			detail.Type = value
		case "Time Control":
			detail.TimeControl = value
		case "Zone":
			detail.Zone = value
		case "Nat. Championship":
			detail.NatChampionship = value
		case "Chief Arbiter":
			detail.ChiefArbiter = cellLinkTexts(valueCell)
		case "Deputy Chief Arbiter":
			detail.DeputyChiefArbiter = cellLinkTexts(valueCell)
		case "Arbiter":
			detail.Arbiters = cellLinkTexts(valueCell)
		case "Assistant Arbiter":
			detail.AssistantArbiters = cellLinkTexts(valueCell)
		case "Chief Organizer":
			detail.ChiefOrganizer = cellLinkTexts(valueCell)
		case "Organizer":
			detail.Organizers = cellLinkTexts(valueCell)
		case "Orig.Report":
			detail.OrigReportHref = cellFirstHref(valueCell)
		}
	})

	return detail, nil
}

func cellLinkTexts(cell *goquery.Selection) []string {
	var texts []string
	cell.Find("a").Each(func(_ int, a *goquery.Selection) {
		if t := strings.TrimSpace(a.Text()); t != "" {
			texts = append(texts, t)
		}
	})
	return texts
}

func cellFirstHref(cell *goquery.Selection) string {
	href, _ := cell.Find("a").First().Attr("href")
	return href
}

// FetchTournamentDetail retrieves and parses a tournament's information
// page. Detail pages for completed events don't change, so the long-lived
// cache is used.
func (client *Client) FetchTournamentDetail(ctx context.Context,
	code string) (*TournamentDetail, error) {

	url := fmt.Sprintf("%v/tournament_information.phtml?event=%v",
		client.baseURL, code)
	body, err := client.fetchWithRetry(ctx, client.httpClient30day, url, nil)
	if err != nil {
		return nil, err
	}

	return ParseTournamentDetail(body, code)
}
