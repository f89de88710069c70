/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package httpcache

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/mikeb26/fide-ratings-scraper/internal"
)

func TestCachedHttpClient(t *testing.T) {
	ctx := context.Background()
	client := NewCachedHttpClient(ctx, 5*time.Minute)

	if client == http.DefaultClient {
		t.Skip("Skipping test because http client is uncached")
	}
	const url = "https://ratings.fide.com/rated_tournaments.phtml"

	for i := 0; i < 3; i++ {
		req, err := http.NewRequest("GET", url, nil)
		if err != nil {
			t.Fatalf("unable to build request: %v", err)
		}
		req.Header.Set("User-Agent", internal.UserAgent)
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("unable to fetch %v: %v", url, err)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Errorf("failed to read response body: %v", err)
		}
		if len(data) == 0 {
			t.Errorf("empty data")
		}
		if i > 0 && resp.Header.Get("X-From-Cache") != "1" {
			t.Errorf("object not cached on fetch %d", i)
		}
		resp.Body.Close()
	}
}
