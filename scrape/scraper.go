package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/JaviLunes/AdventCodeTools/paths"
)

// Scraper downloads and parses pages from the Advent of Code website.
type Scraper struct {
	// Paths derives target URLs and the secrets file location.
	Paths *paths.Manager

	// Client performs the HTTP requests; defaults to http.DefaultClient.
	Client *http.Client

	// BaseURL overrides the site root (scheme://host), for tests against
	// a local server. Empty means the real site.
	BaseURL string

	// Now is the clock used for the future-day guard; defaults to time.Now.
	Now func() time.Time
}

// titleRx extracts the puzzle name from a day page title for a given day.
func titleRx(day int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^--- Day %d: (.+) ---$`, day))
}

// PuzzleName extracts the name of the target day's puzzle from its
// description page. No login is required.
func (s *Scraper) PuzzleName(ctx context.Context, day int) (string, error) {
	url, err := s.puzzleURL(day)
	if err != nil {
		return "", err
	}
	if err = s.checkValidDay(day); err != nil {
		return "", err
	}

	body, err := s.fetch(ctx, url, "")
	if err != nil {
		return "", err
	}

	title, err := dayTitle(body)
	if err != nil {
		return "", err
	}
	match := titleRx(day).FindStringSubmatch(title)
	if match == nil {
		return "", fmt.Errorf("%w: page title %q does not name day %d", ErrScrape, title, day)
	}

	return match[1], nil
}

// PuzzleInput downloads the lines of the target day's personal puzzle
// input. Requires a valid session cookie in the secrets file.
func (s *Scraper) PuzzleInput(ctx context.Context, day int) ([]string, error) {
	url, err := s.inputURL(day)
	if err != nil {
		return nil, err
	}
	session, err := s.readSession()
	if err != nil {
		return nil, err
	}
	if err = s.checkValidDay(day); err != nil {
		return nil, err
	}

	body, err := s.fetch(ctx, url, session)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.ReplaceAll(string(body), "\r\n", "\n"), "\n")
	// The site terminates the input with a newline; drop the empty tail.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines, nil
}

// puzzleURL resolves the day page URL, honoring the BaseURL override.
func (s *Scraper) puzzleURL(day int) (string, error) {
	if s.BaseURL != "" {
		if err := checkDayURL(s.Paths, day); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s/%d/day/%d", s.BaseURL, s.Paths.Year, day), nil
	}

	return s.Paths.PuzzleURL(day)
}

// inputURL resolves the input download URL, honoring the BaseURL override.
func (s *Scraper) inputURL(day int) (string, error) {
	base, err := s.puzzleURL(day)
	if err != nil {
		return "", err
	}

	return base + "/input", nil
}

// checkDayURL validates the day range without building the real site URL.
func checkDayURL(m *paths.Manager, day int) error {
	_, err := m.PuzzleURL(day)

	return err
}

// checkValidDay verifies that the target day is not a future date: puzzles
// unlock on December days of the calendar's year.
func (s *Scraper) checkValidDay(day int) error {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	target := time.Date(s.Paths.Year, time.December, day, 0, 0, 0, 0, time.UTC)
	if target.After(now()) {
		return fmt.Errorf("%w: %s", ErrFutureDay, target.Format("2006/01/02"))
	}

	return nil
}

// readSession extracts the session cookie value from the secrets file.
func (s *Scraper) readSession() (string, error) {
	raw, err := os.ReadFile(s.Paths.SecretsFile())
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrLoginEmpty, s.Paths.SecretsFile())
	}
	content := strings.TrimRight(string(raw), "\n")
	if content == "" {
		return "", fmt.Errorf("%w: %s", ErrLoginEmpty, s.Paths.SecretsFile())
	}
	if strings.Contains(content, "\n") {
		return "", fmt.Errorf("%w: %s", ErrLoginFormat, s.Paths.SecretsFile())
	}

	return content, nil
}

// fetch downloads one URL, attaching the session cookie when provided, and
// maps status codes onto the sentinel taxonomy.
func (s *Scraper) fetch(ctx context.Context, url, session string) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScrape, err)
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: session})
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScrape, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// The site answers a bad session with a 500.
	if resp.StatusCode == http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: %s", ErrLoginRejected, url)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrScrape, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScrape, err)
	}

	return body, nil
}

// dayTitle parses a day description page and returns the text of the first
// <h2> inside the <article class="day-desc"> element.
func dayTitle(page []byte) (string, error) {
	root, err := html.Parse(strings.NewReader(string(page)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrScrape, err)
	}

	article := findNode(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "article" && hasClass(n, "day-desc")
	})
	if article == nil {
		return "", fmt.Errorf("%w: no day-desc article found", ErrScrape)
	}

	h2 := findNode(article, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "h2"
	})
	if h2 == nil {
		return "", fmt.Errorf("%w: no title heading found", ErrScrape)
	}

	return strings.TrimSpace(nodeText(h2)), nil
}

// findNode walks the tree depth-first and returns the first node matching
// the predicate, or nil.
func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}

	return nil
}

// hasClass reports whether an element node carries the given CSS class.
func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}

	return false
}

// nodeText concatenates all text content under a node.
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}

	return b.String()
}
