/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fide

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ListedPlayer is one entry from the combined rating list (standard, rapid,
// and blitz). Ratings are 0 when the player is unrated in that time
// control; BirthYear is 0 when unknown.
type ListedPlayer struct {
	ID          int64
	Name        string
	Fed         string
	Sex         string
	Title       string
	WTitle      string
	OtherTitles string
	StdRating   int
	RapidRating int
	BlitzRating int
	BirthYear   int
	Flag        string
}

// ParsePlayerListTXT parses the fixed-width TXT variant of the rating list.
// Column positions are 0-based with exclusive end, per the file's header
// line (ID Number, Name, Fed, Sex, Tit, WTit, OTit, FOA, SRtng, SGm, SK,
// RRtng, RGm, Rk, BRtng, BGm, BK, B-day, Flag). The header line and
// malformed rows are skipped rather than treated as errors since fide
// occasionally mixes organizational records into the file.
func ParsePlayerListTXT(content []byte) []ListedPlayer {
	players := make([]ListedPlayer, 0)

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) < 100 {
			continue
		}
		if line[0] < '0' || line[0] > '9' {
			continue
		}

		id, err := strconv.ParseInt(column(line, 0, 15), 10, 64)
		if err != nil {
			continue
		}

		players = append(players, ListedPlayer{
			ID:          id,
			Name:        column(line, 15, 76),
			Fed:         column(line, 76, 79),
			Sex:         column(line, 80, 84),
			Title:       column(line, 84, 89),
			WTitle:      column(line, 89, 94),
			OtherTitles: column(line, 94, 109),
			StdRating:   atoiOrZero(column(line, 113, 119)),
			RapidRating: atoiOrZero(column(line, 126, 132)),
			BlitzRating: atoiOrZero(column(line, 139, 145)),
			BirthYear:   atoiOrZero(column(line, 152, 156)),
			Flag:        column(line, 156, 162),
		})
	}

	return players
}

func column(line string, start int, end int) string {
	if start >= len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return strings.TrimSpace(line[start:end])
}

type xmlPlayerList struct {
	Players []xmlPlayer `xml:"player"`
}

type xmlPlayer struct {
	FideID      int64  `xml:"fideid"`
	Name        string `xml:"name"`
	Country     string `xml:"country"`
	Sex         string `xml:"sex"`
	Title       string `xml:"title"`
	WTitle      string `xml:"w_title"`
	OtherTitles string `xml:"o_title"`
	Rating      int    `xml:"rating"`
	RapidRating int    `xml:"rapid_rating"`
	BlitzRating int    `xml:"blitz_rating"`
	Birthday    int    `xml:"birthday"`
	Flag        string `xml:"flag"`
}

// ParsePlayerListXML parses the XML variant of the rating list
// (players_list_xml). Both variants carry the same columns; the XML one is
// larger but unambiguous about field boundaries.
func ParsePlayerListXML(content []byte) ([]ListedPlayer, error) {
	var list xmlPlayerList
	if err := xml.Unmarshal(content, &list); err != nil {
		return nil, fmt.Errorf("failed to parse player list XML: %w", err)
	}

	players := make([]ListedPlayer, 0, len(list.Players))
	for _, p := range list.Players {
		if p.FideID == 0 {
			continue
		}
		players = append(players, ListedPlayer{
			ID:          p.FideID,
			Name:        strings.TrimSpace(p.Name),
			Fed:         strings.TrimSpace(p.Country),
			Sex:         strings.TrimSpace(p.Sex),
			Title:       strings.TrimSpace(p.Title),
			WTitle:      strings.TrimSpace(p.WTitle),
			OtherTitles: strings.TrimSpace(p.OtherTitles),
			StdRating:   p.Rating,
			RapidRating: p.RapidRating,
			BlitzRating: p.BlitzRating,
			BirthYear:   p.Birthday,
			Flag:        strings.TrimSpace(p.Flag),
		})
	}

	return players, nil
}

// FetchPlayerList downloads the combined rating list zip and parses the TXT
// file inside it. The list is republished monthly; the short-lived cache
// keeps re-runs within a day from re-downloading the ~70MB archive.
func (client *Client) FetchPlayerList(ctx context.Context) ([]ListedPlayer,
	error) {

	url := fmt.Sprintf("%v/download/players_list.zip", client.baseURL)
	body, err := client.fetchWithRetry(ctx, client.httpClient1day, url, nil)
	if err != nil {
		return nil, err
	}

	content, err := extractZipEntry(body, ".txt")
	if err != nil {
		return nil, fmt.Errorf("unable to extract player list: %w", err)
	}

	return ParsePlayerListTXT(content), nil
}

// extractZipEntry returns the contents of the first archive member with the
// given suffix, falling back to the first member when none match.
func extractZipEntry(zipBytes []byte, suffix string) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(zipBytes),
		int64(len(zipBytes)))
	if err != nil {
		return nil, err
	}
	if len(reader.File) == 0 {
		return nil, fmt.Errorf("archive is empty")
	}

	entry := reader.File[0]
	for _, f := range reader.File {
		if strings.HasSuffix(strings.ToLower(f.Name), suffix) {
			entry = f
			break
		}
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}
