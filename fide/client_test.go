/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fide

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(baseURL string) *Client {
	return &Client{
		httpClient30day: http.DefaultClient,
		httpClient1day:  http.DefaultClient,
		baseURL:         baseURL,
	}
}

func TestFetchWithRetryRecovers(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte("ok"))
		}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	body, err := client.fetchWithRetry(context.Background(),
		http.DefaultClient, srv.URL, nil)
	if err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if string(body) != "ok" {
		t.Errorf("unexpected body: %q", body)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestFetchWithRetryStopsOn404(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusNotFound)
		}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.fetchWithRetry(context.Background(),
		http.DefaultClient, srv.URL, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	var serr *StatusError
	if !errors.As(err, &serr) || serr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 StatusError, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected no retries on 404, got %d attempts", attempts)
	}
}

func TestRetryableFetchErr(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want bool
	}{
		{nil, false},
		{&StatusError{StatusCode: 500}, true},
		{&StatusError{StatusCode: 429}, true},
		{&StatusError{StatusCode: 404}, false},
		{&ParseError{Code: "1", Err: ErrNoTable}, false},
		{fmt.Errorf("read: connection reset by peer"), true},
		{fmt.Errorf("unexpected EOF"), true},
		{fmt.Errorf("write: broken pipe"), true},
		{fmt.Errorf("invalid character '<'"), false},
	} {
		if got := retryableFetchErr(tc.err); got != tc.want {
			t.Errorf("retryableFetchErr(%v): expected %v, got %v", tc.err,
				tc.want, got)
		}
	}
}

func TestFetchTournamentReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/tournament_src_report.phtml" {
				http.NotFound(w, r)
				return
			}
			if r.URL.Query().Get("code") != "407960" {
				http.NotFound(w, r)
				return
			}
			w.Write([]byte(reportFixture))
		}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	players, err := client.FetchTournamentReport(context.Background(),
		"407960")
	if err != nil {
		t.Fatalf("FetchTournamentReport returned error: %v", err)
	}
	if len(players) != 3 {
		t.Errorf("expected 3 players, got %d", len(players))
	}
}
