package build_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JaviLunes/AdventCodeTools/build"
	"github.com/JaviLunes/AdventCodeTools/paths"
)

// stubNames resolves a fixed set of puzzle titles.
type stubNames map[int]string

func (s stubNames) PuzzleName(_ context.Context, day int) (string, error) {
	name, ok := s[day]
	if !ok {
		return "", errors.New("not published")
	}

	return name, nil
}

func manager(t *testing.T) *paths.Manager {
	t.Helper()

	return &paths.Manager{Year: 2022, BaseDir: t.TempDir()}
}

// TestBuildDay scaffolds the full day directory.
func TestBuildDay(t *testing.T) {
	m := manager(t)
	b := &build.Builder{Paths: m, Names: stubNames{4: "Camp Cleanup"}}

	require.NoError(t, b.BuildDay(context.Background(), 4))

	inputPath, err := m.InputFile(4)
	require.NoError(t, err)
	input, err := os.ReadFile(inputPath)
	require.NoError(t, err)
	require.Empty(t, input)

	solutionPath, err := m.SolutionFile(4)
	require.NoError(t, err)
	solution, err := os.ReadFile(solutionPath)
	require.NoError(t, err)
	require.Contains(t, string(solution), "package day_4")
	require.Contains(t, string(solution), "Camp Cleanup")
	require.Contains(t, string(solution), "func Solve(lines []string)")

	testsPath, err := m.TestsFile(4)
	require.NoError(t, err)
	tests, err := os.ReadFile(testsPath)
	require.NoError(t, err)
	require.Contains(t, string(tests), "func TestSolveDay4(t *testing.T)")
}

// TestBuildDay_NoTitle scaffolds untitled days without a name line.
func TestBuildDay_NoTitle(t *testing.T) {
	m := manager(t)
	b := &build.Builder{Paths: m, Names: stubNames{}}

	require.NoError(t, b.BuildDay(context.Background(), 12))

	solutionPath, err := m.SolutionFile(12)
	require.NoError(t, err)
	solution, err := os.ReadFile(solutionPath)
	require.NoError(t, err)
	require.Contains(t, string(solution), "day 12 puzzle.")
}

// TestBuildDay_NeverOverwrites keeps files already present on disk.
func TestBuildDay_NeverOverwrites(t *testing.T) {
	m := manager(t)
	b := &build.Builder{Paths: m}

	require.NoError(t, b.BuildDay(context.Background(), 1))

	solutionPath, err := m.SolutionFile(1)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(solutionPath, []byte("handwritten"), 0o644))
	inputPath, err := m.InputFile(1)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(inputPath, []byte("downloaded\n"), 0o644))

	require.NoError(t, b.BuildDay(context.Background(), 1))

	solution, err := os.ReadFile(solutionPath)
	require.NoError(t, err)
	require.Equal(t, "handwritten", string(solution))
	input, err := os.ReadFile(inputPath)
	require.NoError(t, err)
	require.Equal(t, "downloaded\n", string(input))
}

// TestBuildDay_Range rejects days outside the calendar.
func TestBuildDay_Range(t *testing.T) {
	b := &build.Builder{Paths: manager(t)}

	require.ErrorIs(t, b.BuildDay(context.Background(), 0), paths.ErrDayRange)
	require.ErrorIs(t, b.BuildDay(context.Background(), 26), paths.ErrDayRange)
}

// TestBuildAll scaffolds every calendar day.
func TestBuildAll(t *testing.T) {
	m := manager(t)
	b := &build.Builder{Paths: m}

	require.NoError(t, b.BuildAll(context.Background()))

	for day := 1; day <= paths.MaxDay; day++ {
		solutionPath, err := m.SolutionFile(day)
		require.NoError(t, err)
		require.FileExists(t, solutionPath)
	}
}
