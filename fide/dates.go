/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fide

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateOrder is the field ordering of the two-digit round dates in a report
// (e.g. "24/11/05"). fide is not consistent about it across events, so the
// ordering is inferred once per tournament; see InferDateOrder.
type DateOrder int

const (
	OrderYearFirst DateOrder = iota // yy/mm/dd
	OrderDayFirst                   // dd/mm/yy
)

func (order DateOrder) String() string {
	if order == OrderDayFirst {
		return "dd/mm/yy"
	}
	return "yy/mm/dd"
}

// DateBounds is a tournament's start/end window per its information page.
// Zero values mean the bound is unknown.
type DateBounds struct {
	Start time.Time
	End   time.Time
}

var (
	roundWithDateRegex = regexp.MustCompile(`^(\d+)\s+(\d{2}/\d{2}/\d{2,4})`)
	roundOnlyRegex     = regexp.MustCompile(`^(\d+)`)
	slashDateRegex     = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}`)

	detailsDateYMDRegex = regexp.MustCompile(`^(\d{4})[.-](\d{1,2})[.-](\d{1,2})`)
	detailsDateDMYRegex = regexp.MustCompile(`^(\d{1,2})[.](\d{1,2})[.](\d{4})`)
)

// parseRoundAndDate splits a round cell like "3 24/11/05" into its round
// number and raw date string. Round is 0 when the cell doesn't lead with a
// number; date may be empty.
func parseRoundAndDate(text string) (int, string) {
	text = strings.TrimSpace(text)

	if m := roundWithDateRegex.FindStringSubmatch(text); m != nil {
		round, _ := strconv.Atoi(m[1])
		return round, m[2]
	}
	if m := roundOnlyRegex.FindStringSubmatch(text); m != nil {
		round, _ := strconv.Atoi(m[1])
		return round, ""
	}

	return 0, ""
}

// toFullYear expands a 2 digit year with a 1950 pivot; fide has rating data
// going back to the early 1970s but nothing before that.
func toFullYear(yy int) int {
	if yy < 50 {
		return 2000 + yy
	}
	return 1900 + yy
}

// roundDateTime parses a raw slash date under the given field ordering.
// Returns false when the fields don't form a real calendar date.
func roundDateTime(dateStr string, order DateOrder) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(dateStr), "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	var year, month, day int
	if order == OrderDayFirst {
		day, month, year = nums[0], nums[1], nums[2]
	} else {
		year, month, day = nums[0], nums[1], nums[2]
	}
	if year < 100 {
		year = toFullYear(year)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. Nov 31 -> Dec 1); reject those
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}

	return t, true
}

// InferDateOrder picks the field ordering that best fits all of a
// tournament's round dates at once. Each candidate ordering is scored by the
// span in days of the parsed dates plus a heavy penalty (1000 per day) for
// falling outside the tournament's known start/end window; lowest score
// wins, with yy/mm/dd winning ties since that is what fide emits for the
// large majority of events.
func InferDateOrder(dateStrs []string, bounds DateBounds) DateOrder {
	valid := make([]string, 0, len(dateStrs))
	for _, s := range dateStrs {
		if slashDateRegex.MatchString(strings.TrimSpace(s)) {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return OrderYearFirst
	}

	best := OrderYearFirst
	bestScore := math.MaxInt

	for _, order := range []DateOrder{OrderYearFirst, OrderDayFirst} {
		var minT, maxT time.Time
		parsedAny := false
		for _, s := range valid {
			t, ok := roundDateTime(s, order)
			if !ok {
				continue
			}
			if !parsedAny || t.Before(minT) {
				minT = t
			}
			if !parsedAny || t.After(maxT) {
				maxT = t
			}
			parsedAny = true
		}
		if !parsedAny {
			continue
		}

		score := daysBetween(minT, maxT)
		if !bounds.Start.IsZero() && minT.Before(bounds.Start) {
			score += 1000 * daysBetween(minT, bounds.Start)
		}
		if !bounds.End.IsZero() && maxT.After(bounds.End) {
			score += 1000 * daysBetween(bounds.End, maxT)
		}

		if score < bestScore {
			bestScore = score
			best = order
		}
	}

	return best
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// RoundDateToISO renders a raw round date as YYYY-MM-DD under the given
// ordering, or "" when it can't be parsed.
func RoundDateToISO(dateStr string, order DateOrder) string {
	t, ok := roundDateTime(dateStr, order)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}

// ParseDetailsDate normalizes a date from a tournament information page
// ("2024.11.01", "2024-11-01", or "01.11.2024") to YYYY-MM-DD. Returns ""
// when the value doesn't match any known form.
func ParseDetailsDate(s string) string {
	s = strings.TrimSpace(s)

	var year, month, day int
	if m := detailsDateYMDRegex.FindStringSubmatch(s); m != nil {
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
	} else if m := detailsDateDMYRegex.FindStringSubmatch(s); m != nil {
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
	} else {
		return ""
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// Bounds converts a detail page's start/end dates into a DateBounds window,
// leaving either side zero when missing or unparseable.
func (detail *TournamentDetail) Bounds() DateBounds {
	var bounds DateBounds
	if iso := ParseDetailsDate(detail.StartDate); iso != "" {
		bounds.Start, _ = time.Parse("2006-01-02", iso)
	}
	if iso := ParseDetailsDate(detail.EndDate); iso != "" {
		bounds.End, _ = time.Parse("2006-01-02", iso)
	}
	return bounds
}
