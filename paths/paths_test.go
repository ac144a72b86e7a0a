package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JaviLunes/AdventCodeTools/paths"
)

func manager() *paths.Manager {
	return &paths.Manager{Year: 2022, BaseDir: filepath.Join("/", "projects")}
}

// TestManager_ProjectLayout checks every derived location for one day.
func TestManager_ProjectLayout(t *testing.T) {
	m := manager()
	sep := string(filepath.Separator)
	root := sep + filepath.Join("projects", "AdventCode2022")

	require.Equal(t, root, m.ProjectDir())
	require.Equal(t, filepath.Join(root, "README.md"), m.ReadmeFile())
	require.Equal(t, filepath.Join(root, ".advent_session"), m.SecretsFile())

	dir, err := m.DayDir(7)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "day_7"), dir)

	input, err := m.InputFile(7)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "day_7", "puzzle_input.txt"), input)

	solution, err := m.SolutionFile(7)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "day_7", "solution.go"), solution)

	tests, err := m.TestsFile(7)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "day_7", "solution_test.go"), tests)

	pkg, err := m.SolutionPackage(7)
	require.NoError(t, err)
	require.Equal(t, "day_7", pkg)
}

// TestManager_URLs checks site and repository URL derivation.
func TestManager_URLs(t *testing.T) {
	m := manager()

	puzzle, err := m.PuzzleURL(3)
	require.NoError(t, err)
	require.Equal(t, "https://adventofcode.com/2022/day/3", puzzle)

	input, err := m.InputURL(3)
	require.NoError(t, err)
	require.Equal(t, "https://adventofcode.com/2022/day/3/input", input)

	solution, err := m.SolutionURL(3)
	require.NoError(t, err)
	require.Equal(t,
		"https://github.com/JaviLunes/AdventCode2022/tree/master/day_3/solution.go",
		solution)
}

// TestManager_DayRange rejects days outside the calendar.
func TestManager_DayRange(t *testing.T) {
	m := manager()
	for _, day := range []int{0, -3, 26} {
		_, err := m.DayDir(day)
		require.ErrorIs(t, err, paths.ErrDayRange)
		_, err = m.PuzzleURL(day)
		require.ErrorIs(t, err, paths.ErrDayRange)
	}
}
