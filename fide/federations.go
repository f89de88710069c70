/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fide

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Federation is one national chess federation as listed in fide's country
// selector.
type Federation struct {
	Code string // e.g. "USA"
	Name string // e.g. "United States of America"
}

var ErrNoFederationSelector = errors.New("country selector not found")

// ParseFederations extracts the federation list from the rated_tournaments
// page's country dropdown, skipping the "all" placeholder.
func ParseFederations(data []byte) ([]Federation, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNoFederationSelector
	}

	sel := doc.Find("select#select_country").First()
	if sel.Length() == 0 {
		return nil, ErrNoFederationSelector
	}

	federations := make([]Federation, 0)
	sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
		value, ok := opt.Attr("value")
		if !ok || value == "" || strings.EqualFold(value, "all") {
			return
		}
		federations = append(federations, Federation{
			Code: value,
			Name: strings.TrimSpace(opt.Text()),
		})
	})

	return federations, nil
}

// GetFederations retrieves the list of all fide member federations.
func (client *Client) GetFederations(ctx context.Context) ([]Federation,
	error) {

	url := fmt.Sprintf("%v/rated_tournaments.phtml", client.baseURL)
	body, err := client.fetchWithRetry(ctx, client.httpClient30day, url, nil)
	if err != nil {
		return nil, err
	}

	return ParseFederations(body)
}
