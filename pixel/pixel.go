package pixel

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for pixel decoding.
var (
	// ErrBadImage indicates the image rows break the letter grid.
	ErrBadImage = errors.New("pixel: malformed pixel image")
	// ErrUnknownGlyph indicates a letter absent from the font sheet.
	ErrUnknownGlyph = errors.New("pixel: glyph not present in the font sheet")
	// ErrOptionViolation indicates an invalid functional option value.
	ErrOptionViolation = errors.New("pixel: invalid option")
)

// Letter geometry of the banner font. Each letter slot holds a 4x6 glyph
// plus one blank separator column.
const (
	glyphWidth  = 4
	glyphHeight = 6
	slotWidth   = glyphWidth + 1
)

//go:embed data/pixel_characters.txt
var fontSheet string

// fontMap keys every known glyph bitmask to its character.
var fontMap = loadFont()

// loadFont parses the embedded sheet of "## X" headers followed by six
// glyph rows each.
func loadFont() map[string]rune {
	lines := strings.Split(strings.TrimRight(fontSheet, "\n"), "\n")
	font := make(map[string]rune, len(lines)/(glyphHeight+1))
	for i := 0; i+glyphHeight < len(lines); i += glyphHeight + 1 {
		name := strings.TrimPrefix(lines[i], "## ")
		font[glyphKey(lines[i+1:i+1+glyphHeight], '#')] = []rune(name)[0]
	}

	return font
}

// glyphKey flattens glyph rows into an on/off bitmask string.
func glyphKey(rows []string, on rune) string {
	var sb strings.Builder
	sb.Grow(glyphWidth * glyphHeight)
	for _, row := range rows {
		for _, r := range row {
			if r == on {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}

	return sb.String()
}

// Options bundles the configurable pixel marks.
type Options struct {
	// On and Off are the runes drawing lit and dark pixels.
	On, Off rune

	err error
}

// DefaultOptions uses the "#"/"." marks most puzzles print with.
func DefaultOptions() Options {
	return Options{On: '#', Off: '.'}
}

// Option mutates Options.
type Option func(*Options)

// WithMarks sets the runes drawing lit and dark pixels. Identical marks
// are rejected.
func WithMarks(on, off rune) Option {
	return func(o *Options) {
		if on == off {
			o.err = fmt.Errorf("%w: on and off marks must differ", ErrOptionViolation)
			return
		}
		o.On, o.Off = on, off
	}
}

// Parser converts banners of pixel letters into text.
type Parser struct {
	on, off rune
}

// New builds a Parser, applying any functional options.
func New(opts ...Option) (*Parser, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Parser{on: o.On, off: o.Off}, nil
}

// Decode reads a banner of pixel letters into the word it spells. The
// image must be six rows high and a whole number of letter slots wide,
// with every fifth column blank.
func (p *Parser) Decode(lines []string) (string, error) {
	rows, letters, err := p.validate(lines)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(letters)
	for slot := 0; slot < letters; slot++ {
		glyph := make([]string, glyphHeight)
		for i, row := range rows {
			glyph[i] = string(row[slot*slotWidth : slot*slotWidth+glyphWidth])
		}
		char, ok := fontMap[glyphKey(glyph, p.on)]
		if !ok {
			return "", fmt.Errorf("%w: letter slot %d", ErrUnknownGlyph, slot)
		}
		sb.WriteRune(char)
	}

	return sb.String(), nil
}

// validate checks the banner geometry and returns its rune rows and
// letter count.
func (p *Parser) validate(lines []string) ([][]rune, int, error) {
	if len(lines) != glyphHeight {
		return nil, 0, fmt.Errorf("%w: expected %d rows, got %d", ErrBadImage, glyphHeight, len(lines))
	}
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}

	width := len(rows[0])
	if width == 0 || width%slotWidth != 0 {
		return nil, 0, fmt.Errorf("%w: width %d is not a whole number of letter slots", ErrBadImage, width)
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, 0, fmt.Errorf("%w: row %d width %d, expected %d", ErrBadImage, i, len(row), width)
		}
		for j, r := range row {
			if r != p.on && r != p.off {
				return nil, 0, fmt.Errorf("%w: unexpected pixel %q at row %d column %d", ErrBadImage, r, i, j)
			}
			if (j+1)%slotWidth == 0 && r != p.off {
				return nil, 0, fmt.Errorf("%w: separator column %d is not blank", ErrBadImage, j)
			}
		}
	}

	return rows, width / slotWidth, nil
}
