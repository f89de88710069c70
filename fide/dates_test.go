/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fide

import (
	"testing"
	"time"
)

func TestParseRoundAndDate(t *testing.T) {
	for _, tc := range []struct {
		in        string
		wantRound int
		wantDate  string
	}{
		{"1   25/11/22", 1, "25/11/22"},
		{"3 24/11/05", 3, "24/11/05"},
		{"12 24/01/31", 12, "24/01/31"},
		{"5", 5, ""},
		{"7  ", 7, ""},
		{"", 0, ""},
		{"round", 0, ""},
	} {
		round, date := parseRoundAndDate(tc.in)
		if round != tc.wantRound || date != tc.wantDate {
			t.Errorf("parseRoundAndDate(%q): expected (%d, %q), got (%d, %q)",
				tc.in, tc.wantRound, tc.wantDate, round, date)
		}
	}
}

func TestRoundDateToISO(t *testing.T) {
	for _, tc := range []struct {
		in    string
		order DateOrder
		want  string
	}{
		{"24/11/05", OrderYearFirst, "2024-11-05"},
		{"05/11/24", OrderDayFirst, "2024-11-05"},
		{"99/12/31", OrderYearFirst, "1999-12-31"},
		{"49/01/01", OrderYearFirst, "2049-01-01"},
		{"50/01/01", OrderYearFirst, "1950-01-01"},
		{"24/13/05", OrderYearFirst, ""},
		{"24/11/31", OrderYearFirst, ""}, // Nov has 30 days
		{"24/11", OrderYearFirst, ""},
		{"", OrderYearFirst, ""},
	} {
		if got := RoundDateToISO(tc.in, tc.order); got != tc.want {
			t.Errorf("RoundDateToISO(%q, %v): expected %q, got %q", tc.in,
				tc.order, tc.want, got)
		}
	}
}

func TestInferDateOrderDefaultsYearFirst(t *testing.T) {
	// no dates at all
	if got := InferDateOrder(nil, DateBounds{}); got != OrderYearFirst {
		t.Errorf("expected yy/mm/dd default, got %v", got)
	}
	// a single ambiguous date scores zero span either way; year-first wins
	// the tie
	got := InferDateOrder([]string{"24/11/05"}, DateBounds{})
	if got != OrderYearFirst {
		t.Errorf("expected yy/mm/dd on tie, got %v", got)
	}
}

func TestInferDateOrderUsesSpan(t *testing.T) {
	// read day-first these span 3 days in Nov 2024; read year-first they
	// would be Mar/Apr of 2005-2007
	dates := []string{"05/11/24", "06/11/24", "07/11/24"}
	// wide bounds that don't constrain either reading
	if got := InferDateOrder(dates, DateBounds{}); got != OrderDayFirst {
		t.Errorf("expected dd/mm/yy from span minimization, got %v", got)
	}
}

func TestInferDateOrderBounded(t *testing.T) {
	bounds := DateBounds{
		Start: time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC),
	}
	dates := []string{"24/11/01", "24/11/15", "24/11/30"}
	order := InferDateOrder(dates, bounds)
	if order != OrderYearFirst {
		t.Fatalf("expected yy/mm/dd, got %v", order)
	}
	for _, d := range dates {
		iso := RoundDateToISO(d, order)
		if iso < "2024-11-01" || iso > "2024-11-30" {
			t.Errorf("date %v resolved to %v, outside tournament window",
				d, iso)
		}
	}
}

func TestInferDateOrderBoundsPenalty(t *testing.T) {
	// a single date is a span tie between orderings; only the bounds
	// penalty can break it, overriding the year-first default
	bounds := DateBounds{
		Start: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	// year-first reading would be 2001-12-24, far outside the window
	dates := []string{"01/12/24"}
	if got := InferDateOrder(dates, bounds); got != OrderDayFirst {
		t.Errorf("expected dd/mm/yy from bounds penalty, got %v", got)
	}
}

func TestParseDetailsDate(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"2024.12.30", "2024-12-30"},
		{"2024-12-30", "2024-12-30"},
		{"30.12.2024", "2024-12-30"},
		{"2024.1.5", "2024-01-05"},
		{"2024.13.01", ""},
		{"garbage", ""},
		{"", ""},
	} {
		if got := ParseDetailsDate(tc.in); got != tc.want {
			t.Errorf("ParseDetailsDate(%q): expected %q, got %q", tc.in,
				tc.want, got)
		}
	}
}

func TestDetailBoundsConversion(t *testing.T) {
	detail := &TournamentDetail{
		StartDate: "2024.11.01",
		EndDate:   "2024.11.30",
	}
	bounds := detail.Bounds()
	if bounds.Start != time.Date(2024, time.November, 1, 0, 0, 0, 0,
		time.UTC) {
		t.Errorf("unexpected start bound: %v", bounds.Start)
	}
	if bounds.End != time.Date(2024, time.November, 30, 0, 0, 0, 0,
		time.UTC) {
		t.Errorf("unexpected end bound: %v", bounds.End)
	}

	empty := &TournamentDetail{}
	bounds = empty.Bounds()
	if !bounds.Start.IsZero() || !bounds.End.IsZero() {
		t.Errorf("expected zero bounds, got %+v", bounds)
	}
}
