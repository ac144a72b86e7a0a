package solve

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/JaviLunes/AdventCodeTools/calendar"
	"github.com/JaviLunes/AdventCodeTools/paths"
)

// Sentinel errors for solving operations.
var (
	// ErrDuplicateDay indicates a solver already registered for that day.
	ErrDuplicateDay = errors.New("solve: solver already registered for day")
	// ErrNoInput indicates the day's puzzle input file cannot be read.
	ErrNoInput = errors.New("solve: puzzle input not available")
)

// Func computes both half-solutions of one day's puzzle from its input
// lines. An empty return value marks that half as unsolved.
type Func func(lines []string) (s1, s2 string)

// Registry maps days to their solver functions.
type Registry struct {
	funcs map[int]Func
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[int]Func)}
}

// Register binds a solver to a day. Returns paths.ErrDayRange for days
// outside the calendar and ErrDuplicateDay on rebinding.
func (r *Registry) Register(day int, fn Func) error {
	if day < 1 || day > paths.MaxDay {
		return fmt.Errorf("%w: got %d", paths.ErrDayRange, day)
	}
	if _, exists := r.funcs[day]; exists {
		return fmt.Errorf("%w %d", ErrDuplicateDay, day)
	}
	r.funcs[day] = fn

	return nil
}

// Lookup returns the solver bound to a day, if any.
func (r *Registry) Lookup(day int) (Func, bool) {
	fn, ok := r.funcs[day]

	return fn, ok
}

// ReadInput reads a puzzle input file into lines, dropping the trailing
// newline of each line.
func ReadInput(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoInput, err)
	}
	lines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines, nil
}

// Result is the outcome of solving one day.
type Result struct {
	Day                  int
	Solution1, Solution2 string
	Elapsed              time.Duration
	// Solved reports whether a solver was registered for the day.
	Solved bool
}

// Solver coordinates the registry, the input files and the calendar.
type Solver struct {
	Paths    *paths.Manager
	Calendar *calendar.Calendar
	Registry *Registry

	// Out receives the printed reports; defaults to os.Stdout.
	Out io.Writer
}

// out resolves the report destination.
func (s *Solver) out() io.Writer {
	if s.Out != nil {
		return s.Out
	}

	return os.Stdout
}

// SolveDay runs the day's registered solver against its input file and
// measures the wall-clock time of the computation. A day without a
// registered solver returns an unsolved Result and no error.
func (s *Solver) SolveDay(day int) (Result, error) {
	fn, ok := s.Registry.Lookup(day)
	if !ok {
		return Result{Day: day}, nil
	}

	inputPath, err := s.Paths.InputFile(day)
	if err != nil {
		return Result{}, err
	}
	lines, err := ReadInput(inputPath)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	s1, s2 := fn(lines)

	return Result{
		Day:       day,
		Solution1: s1,
		Solution2: s2,
		Elapsed:   time.Since(start),
		Solved:    true,
	}, nil
}

// PrintDay writes the solutions and execution time for one day.
func (s *Solver) PrintDay(day int) error {
	name, err := s.Calendar.PuzzleName(day)
	if err != nil {
		return err
	}
	res, err := s.SolveDay(day)
	if err != nil {
		return err
	}

	w := s.out()
	_, _ = fmt.Fprintln(w, name)
	if res.Solution1 == "" {
		_, _ = fmt.Fprintln(w, "    The first puzzle remains unsolved!")
	} else {
		_, _ = fmt.Fprintf(w, "    The first solution is %s.\n", res.Solution1)
	}
	if res.Solution2 == "" {
		_, _ = fmt.Fprintln(w, "    The second puzzle remains unsolved!")
	} else {
		_, _ = fmt.Fprintf(w, "    The second solution is %s.\n", res.Solution2)
	}
	if res.Solution1 != "" || res.Solution2 != "" {
		_, _ = fmt.Fprintf(w, "    This took %s.\n", calendar.FormatTiming(res.Elapsed))
	}

	return nil
}

// PrintAll writes the report for every calendar day.
func (s *Solver) PrintAll() error {
	for day := 1; day <= paths.MaxDay; day++ {
		if err := s.PrintDay(day); err != nil {
			return err
		}
	}

	return nil
}

// RegisterDay solves one day and persists its results into the README
// calendar.
func (s *Solver) RegisterDay(day int) error {
	res, err := s.SolveDay(day)
	if err != nil {
		return err
	}
	if err = s.Calendar.UpdateDay(day, res.Solution1, res.Solution2, res.Elapsed); err != nil {
		return err
	}

	return s.Calendar.Write()
}

// RegisterAll solves every day with a registered solver and persists all
// results in a single README rewrite.
func (s *Solver) RegisterAll() error {
	for day := 1; day <= paths.MaxDay; day++ {
		res, err := s.SolveDay(day)
		if err != nil {
			return err
		}
		if !res.Solved {
			continue
		}
		if err = s.Calendar.UpdateDay(day, res.Solution1, res.Solution2, res.Elapsed); err != nil {
			return err
		}
	}

	return s.Calendar.Write()
}
