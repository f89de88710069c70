/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"testing"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Esipenko, Andrey", "Esipenko, Andrey"},
		{"  Carlsen,   Magnus ", "Carlsen, Magnus"},
		{"", ""},
		{"\tAbdusattorov,\nNodirbek", "Abdusattorov, Nodirbek"},
	}
	for _, c := range cases {
		if got := NormalizeName(c.in); got != c.want {
			t.Errorf("NormalizeName(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestScoreToString(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.0, "0"},
		{0.5, "½"},
		{1.0, "1"},
		{3.5, "3½"},
		{7.0, "7"},
	}
	for _, c := range cases {
		if got := ScoreToString(c.in); got != c.want {
			t.Errorf("ScoreToString(%v) = %q; want %q", c.in, got, c.want)
		}
	}
}
