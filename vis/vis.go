package vis

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sentinel errors for mosaic rendering.
var (
	// ErrNoCells indicates Render was called without any cells.
	ErrNoCells = errors.New("vis: no cells to plot")
	// ErrOptionViolation indicates an invalid functional option value.
	ErrOptionViolation = errors.New("vis: invalid option")
)

// colorCycle seeds generated palettes with distinguishable terminal
// colors.
var colorCycle = []string{"39", "212", "42", "214", "196", "226", "99", "250"}

// Cell places one value on the mosaic. Annotated cells are listed under
// the rendered grid.
type Cell struct {
	X, Y       int
	Value      rune
	Annotation string
}

// PaletteFromValues builds a style palette cycling through the default
// colors, one per distinct value in first-seen order.
func PaletteFromValues(values ...rune) map[rune]lipgloss.Style {
	palette := make(map[rune]lipgloss.Style, len(values))
	for _, v := range values {
		if _, seen := palette[v]; seen {
			continue
		}
		color := colorCycle[len(palette)%len(colorCycle)]
		palette[v] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}

	return palette
}

// Options bundles the configurable rendering knobs.
type Options struct {
	// Palette styles each cell value. Values without an entry render
	// unstyled.
	Palette map[rune]lipgloss.Style
	// Blank fills coordinates that no cell covers.
	Blank rune
	// Title, when set, is printed in bold above the mosaic.
	Title string
	// Axes labels every row with its y coordinate and appends the x
	// range under the mosaic.
	Axes bool

	err error
}

// DefaultOptions renders untitled, unstyled mosaics padded with dots.
func DefaultOptions() Options {
	return Options{Blank: '.'}
}

// Option mutates Options.
type Option func(*Options)

// WithPalette sets the value styling palette.
func WithPalette(palette map[rune]lipgloss.Style) Option {
	return func(o *Options) { o.Palette = palette }
}

// WithBlank sets the padding rune. The zero rune is rejected.
func WithBlank(blank rune) Option {
	return func(o *Options) {
		if blank == 0 {
			o.err = fmt.Errorf("%w: blank rune must be printable", ErrOptionViolation)
			return
		}
		o.Blank = blank
	}
}

// WithTitle sets the mosaic heading.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithAxes turns on coordinate labeling.
func WithAxes() Option {
	return func(o *Options) { o.Axes = true }
}

// Plotter renders cells into terminal mosaics.
type Plotter struct {
	opts Options
}

// New builds a Plotter, applying any functional options.
func New(opts ...Option) (*Plotter, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Plotter{opts: o}, nil
}

// Render lays the cells out on their bounding box and returns the
// mosaic, one text line per row. Later cells overwrite earlier ones on
// the same coordinate.
func (p *Plotter) Render(cells []Cell) (string, error) {
	if len(cells) == 0 {
		return "", ErrNoCells
	}

	minX, minY, maxX, maxY := bounds(cells)
	width, height := maxX-minX+1, maxY-minY+1
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = p.opts.Blank
		}
	}
	for _, cell := range cells {
		grid[cell.Y-minY][cell.X-minX] = cell.Value
	}

	var sb strings.Builder
	if p.opts.Title != "" {
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render(p.opts.Title))
		sb.WriteByte('\n')
	}
	yWidth := max(len(fmt.Sprint(minY)), len(fmt.Sprint(maxY)))
	for i, row := range grid {
		if p.opts.Axes {
			sb.WriteString(fmt.Sprintf("%*d ", yWidth, minY+i))
		}
		sb.WriteString(p.renderRow(row))
		sb.WriteByte('\n')
	}
	if p.opts.Axes {
		sb.WriteString(fmt.Sprintf("x: %d..%d\n", minX, maxX))
	}
	for _, note := range annotations(cells) {
		sb.WriteString(note)
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// renderRow styles one mosaic row, batching equal-valued runs so each
// run pays for a single style application.
func (p *Plotter) renderRow(row []rune) string {
	var sb strings.Builder
	for i := 0; i < len(row); {
		j := i
		for j < len(row) && row[j] == row[i] {
			j++
		}
		run := string(row[i:j])
		if style, ok := p.opts.Palette[row[i]]; ok {
			run = style.Render(run)
		}
		sb.WriteString(run)
		i = j
	}

	return sb.String()
}

// bounds computes the covering box of all cells.
func bounds(cells []Cell) (minX, minY, maxX, maxY int) {
	minX, minY = cells[0].X, cells[0].Y
	maxX, maxY = minX, minY
	for _, cell := range cells[1:] {
		minX, maxX = min(minX, cell.X), max(maxX, cell.X)
		minY, maxY = min(minY, cell.Y), max(maxY, cell.Y)
	}

	return minX, minY, maxX, maxY
}

// annotations lists the annotated cells in reading order.
func annotations(cells []Cell) []string {
	noted := make([]Cell, 0, len(cells))
	for _, cell := range cells {
		if cell.Annotation != "" {
			noted = append(noted, cell)
		}
	}
	sort.Slice(noted, func(i, j int) bool {
		if noted[i].Y != noted[j].Y {
			return noted[i].Y < noted[j].Y
		}
		return noted[i].X < noted[j].X
	})

	notes := make([]string, len(noted))
	for i, cell := range noted {
		notes[i] = fmt.Sprintf("(%d,%d) %c: %s", cell.X, cell.Y, cell.Value, cell.Annotation)
	}

	return notes
}
