package scrape

import "errors"

// Sentinel errors for scrape operations.
var (
	// ErrLoginEmpty indicates the secrets file is empty or does not exist.
	ErrLoginEmpty = errors.New("scrape: secrets file is empty or does not exist")
	// ErrLoginFormat indicates the secrets file content is not as expected.
	ErrLoginFormat = errors.New("scrape: secrets file must contain exactly one line")
	// ErrLoginRejected indicates the stored session ID was rejected by the site.
	ErrLoginRejected = errors.New("scrape: session ID rejected by the website")
	// ErrScrape indicates a generic download or parse failure.
	ErrScrape = errors.New("scrape: could not retrieve the requested page")
	// ErrFutureDay indicates the target day has not been published yet.
	ErrFutureDay = errors.New("scrape: target day is a future date")
)

// LoginHelp explains how to retrieve and store the session cookie required
// by the authenticated operations. CLI surfaces print it alongside any
// login-related error.
const LoginHelp = `Some scrape operations need to log into the Advent of Code website, and
read a session ID string from a secrets file (see paths.Manager.SecretsFile).

To find your current session ID, log in to the website and inspect its
cookies with your browser (on Firefox: right-click any page > Inspect >
Storage > Cookies > session). Copy the session value (a long string of
numbers and letters) and paste it into the secrets file.

The secrets file must contain ONLY the session value, on a single line,
without any prefix or quoting added by the browser when copying.`
