/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// NormalizeName collapses runs of whitespace in a scraped player name.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// ScoreToString renders a chess score, using ½ for the fractional half point.
func ScoreToString(score float64) string {
	whole := int(score)
	half := score-float64(whole) >= 0.25

	switch {
	case !half:
		return strconv.Itoa(whole)
	case whole == 0:
		return "½"
	default:
		return strconv.Itoa(whole) + "½"
	}
}
