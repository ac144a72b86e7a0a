package calendar

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/JaviLunes/AdventCodeTools/paths"
)

// heading marks the README section holding the calendar table.
const heading = "### Puzzle calendar:"

// linkRx matches a Markdown hyperlink cell and captures its text.
var linkRx = regexp.MustCompile(`^\[(.+)]\(.+\)$`)

// Calendar is the in-memory puzzle table bound to one project's README.
type Calendar struct {
	paths *paths.Manager
	rows  [paths.MaxDay]Row
}

// New creates an empty Calendar with every cell blank.
func New(m *paths.Manager) *Calendar {
	c := &Calendar{paths: m}
	for i := range c.rows {
		c.rows[i] = Row{
			Day:       i + 1,
			Puzzle:    Blank,
			Stars:     Blank,
			Solution1: Blank,
			Solution2: Blank,
			Time:      Blank,
		}
	}

	return c
}

// Load reads the project README and parses its calendar table.
// Returns ErrNoCalendar when the heading or table is absent.
func Load(m *paths.Manager) (*Calendar, error) {
	raw, err := os.ReadFile(m.ReadmeFile())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCalendar, err)
	}
	lines := strings.Split(string(raw), "\n")

	start, err := tableStart(lines)
	if err != nil {
		return nil, err
	}

	c := New(m)
	// Skip the header and separator rows; parse one row per day.
	for i := 0; i < paths.MaxDay; i++ {
		idx := start + 2 + i
		if idx >= len(lines) {
			return nil, fmt.Errorf("%w: table truncated at day %d", ErrBadRow, i+1)
		}
		row, err := parseRow(lines[idx])
		if err != nil {
			return nil, err
		}
		if row.Day != i+1 {
			return nil, fmt.Errorf("%w: expected day %d, got %d", ErrBadRow, i+1, row.Day)
		}
		c.rows[i] = row
	}

	return c, nil
}

// tableStart locates the first table line after the calendar heading.
func tableStart(lines []string) (int, error) {
	section := false
	for n, line := range lines {
		if strings.TrimRight(line, "\r") == heading {
			section = true
			continue
		}
		if section && strings.HasPrefix(line, "| ") {
			return n, nil
		}
	}

	return 0, ErrNoCalendar
}

// parseRow splits one pipe-table line into a Row, stripping hyperlinks
// and bold emphasis from each cell.
func parseRow(line string) (Row, error) {
	trimmed := strings.TrimRight(line, "\r")
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	cells := strings.Split(trimmed, "|")
	if len(cells) != 6 {
		return Row{}, fmt.Errorf("%w: %q", ErrBadRow, line)
	}
	for i, cell := range cells {
		cells[i] = cleanCell(cell)
	}

	day, err := strconv.Atoi(cells[0])
	if err != nil {
		return Row{}, fmt.Errorf("%w: bad day cell in %q", ErrBadRow, line)
	}

	return Row{
		Day:       day,
		Puzzle:    cells[1],
		Stars:     cells[2],
		Solution1: cells[3],
		Solution2: cells[4],
		Time:      cells[5],
	}, nil
}

// cleanCell trims a raw cell and strips link markup, emphasis and empty
// values down to the canonical form.
func cleanCell(cell string) string {
	out := strings.TrimSpace(cell)
	if m := linkRx.FindStringSubmatch(out); m != nil {
		out = m[1]
	}
	out = strings.ReplaceAll(out, "**", "")
	if out == "" {
		out = Blank
	}

	return out
}

// Rows returns a copy of all day rows, in day order.
func (c *Calendar) Rows() []Row {
	out := make([]Row, len(c.rows))
	copy(out, c.rows[:])

	return out
}

// Row returns the entry for one day.
func (c *Calendar) Row(day int) (Row, error) {
	if day < 1 || day > paths.MaxDay {
		return Row{}, fmt.Errorf("%w: got %d", ErrDayRange, day)
	}

	return c.rows[day-1], nil
}

// PuzzleName formats the display name of one day's puzzle, e.g.
// "Day 3: Rucksack Reorganization".
func (c *Calendar) PuzzleName(day int) (string, error) {
	row, err := c.Row(day)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Day %d: %s", day, row.Puzzle), nil
}

// UpdateDay fills one day's solutions, timing and star markers.
// Empty solution values keep the cell blank.
func (c *Calendar) UpdateDay(day int, s1, s2 string, elapsed time.Duration) error {
	if day < 1 || day > paths.MaxDay {
		return fmt.Errorf("%w: got %d", ErrDayRange, day)
	}
	row := &c.rows[day-1]

	row.Solution1 = orBlank(s1)
	row.Solution2 = orBlank(s2)
	if s1 != "" || s2 != "" {
		row.Time = FormatTiming(elapsed)
	} else {
		row.Time = Blank
	}
	switch {
	case s1 != "" && s2 != "":
		row.Stars = Star + Star
	case s1 != "" || s2 != "":
		row.Stars = Star
	default:
		row.Stars = Blank
	}

	return nil
}

// orBlank maps an empty value to the placeholder cell.
func orBlank(v string) string {
	if v == "" {
		return Blank
	}

	return v
}

// FillNames asks the source for the name of every day whose puzzle cell is
// still blank. Days the source cannot name (unpublished, offline) are left
// blank; only the lookups that succeed are stored.
func (c *Calendar) FillNames(ctx context.Context, src NameSource) {
	for i := range c.rows {
		if c.rows[i].Puzzle != Blank {
			continue
		}
		name, err := src.PuzzleName(ctx, i+1)
		if err != nil {
			continue
		}
		c.rows[i].Puzzle = name
	}
}

// Render emits the calendar as Markdown table lines: header, separator,
// one hyperlinked row per day, and a bold totals row.
func (c *Calendar) Render() []string {
	lines := make([]string, 0, paths.MaxDay+3)
	lines = append(lines,
		"| **Day** | **Puzzle** | **Stars** | **Solution 1** | **Solution 2** | **Time** |",
		"|:-------:|:-----------|:---------:|:--------------:|:--------------:|:--------:|",
	)

	totalStars := 0
	var totalTime time.Duration
	for i := range c.rows {
		row := &c.rows[i]
		totalStars += strings.Count(row.Stars, Star)
		if d, err := ParseTiming(row.Time); err == nil {
			totalTime += d
		}
		lines = append(lines, c.renderRow(row))
	}

	lines = append(lines, fmt.Sprintf(
		"| **Totals** | - | **%d**%s | - | - | **%s** |",
		totalStars, Star, FormatTiming(totalTime)))

	return lines
}

// renderRow formats one day row, linking the day and puzzle cells to the
// puzzle page and, once solved, the remaining cells to the solution source.
func (c *Calendar) renderRow(row *Row) string {
	day := strconv.Itoa(row.Day)
	puzzle := row.Puzzle
	stars, s1, s2, timing := row.Stars, row.Solution1, row.Solution2, row.Time

	if puzzleURL, err := c.paths.PuzzleURL(row.Day); err == nil {
		day = fmt.Sprintf("[%s](%s)", day, puzzleURL)
		puzzle = fmt.Sprintf("[%s](%s)", puzzle, puzzleURL)
	}
	if row.Solved() {
		if solutionURL, err := c.paths.SolutionURL(row.Day); err == nil {
			stars = fmt.Sprintf("[%s](%s)", stars, solutionURL)
			s1 = fmt.Sprintf("[%s](%s)", s1, solutionURL)
			s2 = fmt.Sprintf("[%s](%s)", s2, solutionURL)
			timing = fmt.Sprintf("[%s](%s)", timing, solutionURL)
		}
	}

	return fmt.Sprintf("| %s | %s | %s | %s | %s | %s |", day, puzzle, stars, s1, s2, timing)
}

// Write splices the rendered table back into the README, replacing the
// previous table under the calendar heading.
func (c *Calendar) Write() error {
	raw, err := os.ReadFile(c.paths.ReadmeFile())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoCalendar, err)
	}
	lines := strings.Split(string(raw), "\n")

	start, err := tableStart(lines)
	if err != nil {
		return err
	}

	// The stored table spans header + separator + 25 days + totals.
	end := start + paths.MaxDay + 3
	if end > len(lines) {
		end = len(lines)
	}

	var out []string
	out = append(out, lines[:start]...)
	out = append(out, c.Render()...)
	out = append(out, lines[end:]...)

	return os.WriteFile(c.paths.ReadmeFile(), []byte(strings.Join(out, "\n")), 0o644)
}
