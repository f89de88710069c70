/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fide

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mikeb26/fide-ratings-scraper/internal"
	"github.com/mikeb26/fide-ratings-scraper/internal/httpcache"
)

const DefaultBaseURL = "https://ratings.fide.com"

const (
	fetchAttempts    = 3
	fetchBackoffBase = 100 * time.Millisecond
)

type Client struct {
	httpClient30day *http.Client
	httpClient1day  *http.Client

	baseURL string
}

func NewClient(ctx context.Context) *Client {
	ret := &Client{
		httpClient30day: httpcache.NewCachedHttpClient(ctx, 30*24*time.Hour),
		baseURL:         DefaultBaseURL,
	}
	if ret.httpClient30day != http.DefaultClient {
		ret.httpClient1day = httpcache.NewCachedHttpClient(ctx, 24*time.Hour)
	} else {
		ret.httpClient1day = http.DefaultClient
	}

	return ret
}

// fetchWithRetry issues a GET against url, retrying transient failures with
// exponential backoff (100ms, 200ms, 400ms). Structural failures such as
// 404s are returned immediately.
func (client *Client) fetchWithRetry(ctx context.Context,
	httpClient *http.Client, url string,
	extraHeaders map[string]string) ([]byte, error) {

	var lastErr error
	for attempt := 0; attempt < fetchAttempts; attempt++ {
		if attempt > 0 {
			backoff := fetchBackoffBase << (attempt - 1)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, err := client.fetchOnce(ctx, httpClient, url, extraHeaders)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryableFetchErr(err) {
			break
		}
	}

	return nil, fmt.Errorf("unable to fetch %v: %w", url, lastErr)
}

func (client *Client) fetchOnce(ctx context.Context,
	httpClient *http.Client, url string,
	extraHeaders map[string]string) ([]byte, error) {

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	return io.ReadAll(resp.Body)
}

// FetchTournamentReport retrieves and parses the calculation report for one
// tournament. Report pages are immutable once published so the long-lived
// cache is used.
func (client *Client) FetchTournamentReport(ctx context.Context,
	code string) ([]PlayerRecord, error) {

	url := fmt.Sprintf("%v/tournament_src_report.phtml?code=%v", client.baseURL,
		code)
	body, err := client.fetchWithRetry(ctx, client.httpClient30day, url, nil)
	if err != nil {
		return nil, err
	}

	return ParseReport(body, code)
}
