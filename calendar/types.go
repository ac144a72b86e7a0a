// Package calendar defines the row model, collaborator contracts and
// sentinel errors for the README puzzle table.
package calendar

import (
	"context"
	"errors"
)

// Sentinel errors for calendar operations.
var (
	// ErrNoCalendar indicates the README holds no puzzle calendar table.
	ErrNoCalendar = errors.New("calendar: no puzzle calendar table found in README")
	// ErrBadRow indicates a table row that cannot be parsed.
	ErrBadRow = errors.New("calendar: malformed calendar row")
	// ErrDayRange indicates a day outside 1..25.
	ErrDayRange = errors.New("calendar: day must be between 1 and 25")
	// ErrBadTiming indicates a timing cell that cannot be parsed.
	ErrBadTiming = errors.New("calendar: malformed timing value")
)

// Blank is the placeholder cell for missing values.
const Blank = "-"

// Star is the Markdown emoji marking one solved puzzle half.
const Star = ":star:"

// Row is one day's entry in the puzzle calendar.
type Row struct {
	Day       int
	Puzzle    string // puzzle name, Blank when unknown
	Stars     string // Blank, Star or Star+Star
	Solution1 string
	Solution2 string
	Time      string // formatted timing, Blank when unsolved
}

// Solved reports whether at least one half of the day is solved.
func (r *Row) Solved() bool {
	return r.Solution1 != Blank || r.Solution2 != Blank
}

// NameSource provides puzzle names for days whose name is still unknown.
// scrape.Scraper satisfies it.
type NameSource interface {
	PuzzleName(ctx context.Context, day int) (string, error)
}
