/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fide

import (
	"errors"
	"testing"
)

const detailsFixture = `<html><body>
<table class="details_table">
<tr><td class="info_table_l">Event code</td><td>368261</td></tr>
<tr><td class="info_table_l">Tournament Name</td><td>World Cup 2023</td></tr>
<tr><td class="info_table_l">City</td><td>Baku</td></tr>
<tr><td class="info_table_l">Country</td><td>AZE</td></tr>
<tr><td class="info_table_l">Number of players</td><td>206</td></tr>
<tr><td class="info_table_l">System</td><td>Knock-Out</td></tr>
<tr><td class="info_table_l">Start Date</td><td>2023.07.29</td></tr>
<tr><td class="info_table_l">End Date</td><td>2023.08.25</td></tr>
<tr><td class="info_table_l">Time Control</td><td>Standard</td></tr>
<tr><td class="info_table_l">Chief Arbiter</td><td><a href="/profile/1">Smith, John</a><a href="/profile/2">Doe, Jane</a></td></tr>
<tr><td class="info_table_l">Orig.Report</td><td><a href="/report_orig.phtml?event=368261">download</a></td></tr>
</table>
</body></html>`

func TestParseTournamentDetail(t *testing.T) {
	detail, err := ParseTournamentDetail([]byte(detailsFixture), "368261")
	if err != nil {
		t.Fatalf("ParseTournamentDetail returned error: %v", err)
	}

	if detail.EventCode != "368261" {
		t.Errorf("expected event code 368261, got %v", detail.EventCode)
	}
	if detail.Name != "World Cup 2023" {
		t.Errorf("expected World Cup 2023, got %v", detail.Name)
	}
	if detail.City != "Baku" || detail.Country != "AZE" {
		t.Errorf("unexpected location: %v %v", detail.City, detail.Country)
	}
	if detail.NumPlayers != "206" {
		t.Errorf("expected 206 players, got %v", detail.NumPlayers)
	}
	if detail.System != "Knock-Out" {
		t.Errorf("expected Knock-Out, got %v", detail.System)
	}
	if detail.StartDate != "2023.07.29" || detail.EndDate != "2023.08.25" {
		t.Errorf("unexpected dates: %v %v", detail.StartDate,
			detail.EndDate)
	}
	if len(detail.ChiefArbiter) != 2 ||
		detail.ChiefArbiter[0] != "Smith, John" {
		t.Errorf("unexpected arbiters: %+v", detail.ChiefArbiter)
	}
	if detail.OrigReportHref != "/report_orig.phtml?event=368261" {
		t.Errorf("unexpected report href: %v", detail.OrigReportHref)
	}

	bounds := detail.Bounds()
	if bounds.Start.IsZero() || bounds.End.IsZero() {
		t.Errorf("expected both bounds set, got %+v", bounds)
	}
}

func TestParseTournamentDetailNoTable(t *testing.T) {
	_, err := ParseTournamentDetail([]byte("<html><body></body></html>"),
		"999")
	if !errors.Is(err, ErrNoTable) {
		t.Fatalf("expected ErrNoTable, got %v", err)
	}
}
