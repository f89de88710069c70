/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	// ratings.fide.com serves an empty shell page to clients it does not
	// recognize as browsers, hence the browser-like agent string
	UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	WebCacheBucket       = "bopmatic-fide-ratings-scraper-prod-webcache"
	WebCacheBucketEnvVar = "FIDESCRAPE_CACHE_BUCKET"

	GameStoreDSNEnvVar = "FIDESCRAPE_PG_DSN"
)
