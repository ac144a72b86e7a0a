// Package scrape retrieves puzzle metadata from the adventofcode.com site.
//
// Two operations are exposed:
//
//   - PuzzleName(ctx, day): anonymous; parses the day's description page
//     for its "--- Day N: NAME ---" title.
//   - PuzzleInput(ctx, day): authenticated; downloads the personal puzzle
//     input using the session cookie stored in the secrets file.
//
// The Scraper guards against scraping days that have not been published yet
// (puzzles unlock on December days of the target year) through an
// injectable clock, and maps transport failures onto a small sentinel-error
// taxonomy so callers can distinguish login problems from plain scrape
// failures.
//
// Errors:
//
//   - ErrLoginEmpty     secrets file missing or empty.
//   - ErrLoginFormat    secrets file has more than one line.
//   - ErrLoginRejected  the site rejected the stored session (HTTP 500).
//   - ErrScrape         any other non-200 response or unparsable page.
//   - ErrFutureDay      the target day is a future date.
package scrape
