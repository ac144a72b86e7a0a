package build

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"os"
	"text/template"

	"github.com/JaviLunes/AdventCodeTools/calendar"
	"github.com/JaviLunes/AdventCodeTools/paths"
)

// ErrTemplate indicates an embedded template failed to render.
var ErrTemplate = errors.New("build: template rendering failed")

//go:embed templates/*.tmpl
var templateFS embed.FS

// dayData feeds the embedded templates for one puzzle day.
type dayData struct {
	Year       int
	Day        int
	Package    string
	PuzzleName string
}

// Builder scaffolds the day directories of one project year.
type Builder struct {
	Paths *paths.Manager

	// Names, when set, resolves puzzle titles for the solution headers.
	// Days it cannot name are scaffolded without a title.
	Names calendar.NameSource
}

// BuildDay creates the "day_N" directory with an empty puzzle input, a
// solution skeleton and its test file. Existing files are left untouched.
func (b *Builder) BuildDay(ctx context.Context, day int) error {
	dayDir, err := b.Paths.DayDir(day)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(dayDir, 0o755); err != nil {
		return err
	}

	data, err := b.dayData(ctx, day)
	if err != nil {
		return err
	}

	inputPath, err := b.Paths.InputFile(day)
	if err != nil {
		return err
	}
	if err = writeNew(inputPath, nil); err != nil {
		return err
	}

	solutionPath, err := b.Paths.SolutionFile(day)
	if err != nil {
		return err
	}
	if err = b.render(solutionPath, "solution.go.tmpl", data); err != nil {
		return err
	}

	testsPath, err := b.Paths.TestsFile(day)
	if err != nil {
		return err
	}

	return b.render(testsPath, "solution_test.go.tmpl", data)
}

// BuildAll scaffolds every day of the calendar.
func (b *Builder) BuildAll(ctx context.Context) error {
	for day := 1; day <= paths.MaxDay; day++ {
		if err := b.BuildDay(ctx, day); err != nil {
			return err
		}
	}

	return nil
}

// dayData assembles the template payload for one day.
func (b *Builder) dayData(ctx context.Context, day int) (dayData, error) {
	pkg, err := b.Paths.SolutionPackage(day)
	if err != nil {
		return dayData{}, err
	}
	data := dayData{Year: b.Paths.Year, Day: day, Package: pkg}
	if b.Names != nil {
		// Unpublished or unreachable puzzles scaffold without a title.
		if name, nameErr := b.Names.PuzzleName(ctx, day); nameErr == nil {
			data.PuzzleName = name
		}
	}

	return data, nil
}

// render executes one embedded template into a new file, skipping paths
// that already exist.
func (b *Builder) render(path, name string, data dayData) error {
	tmpl, err := template.ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("%w: %v", ErrTemplate, err)
	}

	return writeNew(path, buf.Bytes())
}

// writeNew creates a file only if it does not exist yet.
func writeNew(path string, content []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(content)

	return err
}
