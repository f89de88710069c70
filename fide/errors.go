/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fide

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Structural parse failures. These indicate the page did not match the
// expected template (or the event genuinely has no published report) rather
// than a transient fetch problem, so callers should not retry them; a burst
// of ErrNoTable across many events usually means fide changed their page
// layout and the parser needs re-inspection.
var (
	ErrNoTable   = errors.New("no data found")
	ErrNoPlayers = errors.New("no players found")
)

// ParseError wraps a structural parse failure with the event it occurred on.
type ParseError struct {
	Code string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Code == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("tournament %v: %v", e.Code, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-200 response from ratings.fide.com.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %v", e.StatusCode, e.URL)
}

// fide drops connections under load in a handful of distinguishable ways;
// all of them clear up on retry
var retryableErrPatterns = []string{
	"eof",
	"connection reset",
	"connection aborted",
	"broken pipe",
	"remote end closed",
	"remotedisconnected",
}

// retryableFetchErr reports whether err is transient (timeouts, dropped
// connections, server-side 5xx) as opposed to structural (parse errors,
// 404s), and therefore worth retrying.
func retryableFetchErr(err error) bool {
	if err == nil {
		return false
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		return false
	}
	var serr *StatusError
	if errors.As(err, &serr) {
		return serr.StatusCode >= 500 || serr.StatusCode == 429
	}
	var nerr net.Error
	if errors.As(err, &nerr) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	for _, pat := range retryableErrPatterns {
		if strings.Contains(errStr, pat) {
			return true
		}
	}
	return false
}
