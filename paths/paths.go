package paths

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Sentinel errors for path derivation.
var (
	// ErrDayRange indicates a day outside 1..25.
	ErrDayRange = errors.New("paths: day must be between 1 and 25")
)

// MaxDay is the last puzzle day of an advent calendar.
const MaxDay = 25

// Manager derives every project location from a year and a base directory.
// The zero value is not usable; both fields must be set.
type Manager struct {
	// Year of the advent calendar, e.g. 2022.
	Year int
	// BaseDir is the directory holding the yearly project directories.
	BaseDir string
}

// checkDay validates the 1..25 day range.
func checkDay(day int) error {
	if day < 1 || day > MaxDay {
		return fmt.Errorf("%w: got %d", ErrDayRange, day)
	}

	return nil
}

// ProjectDir is the root directory of the yearly puzzle project.
func (m *Manager) ProjectDir() string {
	return filepath.Join(m.BaseDir, fmt.Sprintf("AdventCode%d", m.Year))
}

// ReadmeFile is the README holding the puzzle calendar table.
func (m *Manager) ReadmeFile() string {
	return filepath.Join(m.ProjectDir(), "README.md")
}

// SecretsFile stores the adventofcode.com session cookie, one line, no
// prefix or quoting.
func (m *Manager) SecretsFile() string {
	return filepath.Join(m.ProjectDir(), ".advent_session")
}

// DayDir is the directory holding one day's input, solution and tests.
func (m *Manager) DayDir(day int) (string, error) {
	if err := checkDay(day); err != nil {
		return "", err
	}

	return filepath.Join(m.ProjectDir(), fmt.Sprintf("day_%d", day)), nil
}

// InputFile is the day's puzzle input.
func (m *Manager) InputFile(day int) (string, error) {
	dir, err := m.DayDir(day)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "puzzle_input.txt"), nil
}

// SolutionFile is the day's solution source.
func (m *Manager) SolutionFile(day int) (string, error) {
	dir, err := m.DayDir(day)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "solution.go"), nil
}

// TestsFile is the day's solution test.
func (m *Manager) TestsFile(day int) (string, error) {
	dir, err := m.DayDir(day)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "solution_test.go"), nil
}

// SolutionPackage is the Go package name of the day's solution.
func (m *Manager) SolutionPackage(day int) (string, error) {
	if err := checkDay(day); err != nil {
		return "", err
	}

	return fmt.Sprintf("day_%d", day), nil
}

// PuzzleURL points at the day's puzzle description on adventofcode.com.
func (m *Manager) PuzzleURL(day int) (string, error) {
	if err := checkDay(day); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://adventofcode.com/%d/day/%d", m.Year, day), nil
}

// InputURL points at the day's puzzle input download.
func (m *Manager) InputURL(day int) (string, error) {
	base, err := m.PuzzleURL(day)
	if err != nil {
		return "", err
	}

	return base + "/input", nil
}

// SolutionURL points at the day's solution source in the GitHub repository.
func (m *Manager) SolutionURL(day int) (string, error) {
	if err := checkDay(day); err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"https://github.com/JaviLunes/AdventCode%d/tree/master/day_%d/solution.go",
		m.Year, day), nil
}
